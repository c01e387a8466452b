package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminSession is a server-issued login for the single admin credential.
type AdminSession struct {
	BaseSimple
	Token     uuid.UUID  `db:"token"`
	UserAgent *string    `db:"user_agent"`
	IPAddress *string    `db:"ip_address"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
