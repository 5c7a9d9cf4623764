package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice status constants. There is no automatic transition logic;
// an invoice stays "draft" until something external moves it.
const (
	StatusDraft   = "draft"
	StatusSent    = "sent"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

// InvoiceItem is one billable row. Amount is persisted at creation
// time as quantity × unit price and never recomputed afterwards.
// Position preserves the input order of the rows.
type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	Position    int             `gorm:"not null" json:"-"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unitPrice"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"amount"`
}

// Invoice is the persisted, immutable-after-creation document. Totals
// are computed server-side at creation and stored; reads never
// recompute them. Discount is a flat currency amount defaulting to 0.
type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InvoiceNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"invoiceNumber"`
	Date          time.Time `gorm:"not null" json:"date"`
	DueDate       time.Time `gorm:"not null" json:"dueDate"` // may precede Date, accepted as given

	BusinessName    string `gorm:"type:varchar(255);not null" json:"businessName"`
	BusinessAddress string `gorm:"type:text;not null" json:"businessAddress"`
	BusinessPhone   string `gorm:"type:varchar(50)" json:"businessPhone,omitempty"`
	BusinessEmail   string `gorm:"type:varchar(255)" json:"businessEmail,omitempty"`
	BusinessLogo    string `gorm:"type:text" json:"businessLogo,omitempty"` // base64 data URL

	ClientName    string `gorm:"type:varchar(255);not null" json:"clientName"`
	ClientAddress string `gorm:"type:text;not null" json:"clientAddress"`
	ClientPhone   string `gorm:"type:varchar(50)" json:"clientPhone,omitempty"`
	ClientEmail   string `gorm:"type:varchar(255)" json:"clientEmail,omitempty"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`

	Subtotal  decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"subtotal"`
	TaxRate   decimal.Decimal `gorm:"type:decimal(7,4);not null;default:0" json:"taxRate"` // percent, 0..100
	TaxAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"taxAmount"`
	Discount  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"discount"`
	Total     decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total"` // may be negative, not clamped

	Status string `gorm:"type:varchar(10);not null;default:'draft'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes,omitempty"` // line breaks preserved

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
