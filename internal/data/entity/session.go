package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an admin login session. There is a single fixed admin credential
// pair, so holding a valid (unexpired, unrevoked) session token is what makes
// a request an admin request.
type Session struct {
	BaseSimple
	Token     uuid.UUID  `db:"token"`
	UserAgent *string    `db:"user_agent"`
	IPAddress *string    `db:"ip_address"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
