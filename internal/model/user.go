package model

import (
	"time"

	"github.com/google/uuid"
)

// Plan tier constants. Gating is advisory only — nothing in the API
// enforces quotas, the session just carries the tier.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// User represents one account. PasswordHash and GoogleID are both
// nullable but at least one is set after creation: password signups
// set the hash, Google signups set the provider id, and a password
// account that later signs in with Google ends up with both.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"` // stored lower-cased
	PasswordHash *string   `gorm:"type:varchar(255)" json:"-"`
	GoogleID     *string   `gorm:"type:varchar(255);index" json:"-"`
	ProfileImage *string   `gorm:"type:text" json:"profile_image"`

	Plan          string     `gorm:"type:varchar(10);not null;default:'free'" json:"plan"`
	PlanExpiresAt *time.Time `json:"plan_expires_at"`

	// Usage counters, informational only.
	InvoiceCount       int `gorm:"not null;default:0" json:"invoice_count"`
	WhatsappSendsCount int `gorm:"not null;default:0" json:"whatsapp_sends_count"`

	// A non-null ResetToken always has a future ResetTokenExpiry; both
	// are cleared in the same update that replaces the password hash.
	ResetToken       *string    `gorm:"type:varchar(128);index" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
