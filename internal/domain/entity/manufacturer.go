package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Application statuses shared by manufacturers and customers. Transitions are
// one-way: once a record reaches StatusApproved there is no path back.
const (
	StatusSubmitted   = "Application Submitted"
	StatusUnderReview = "Under Review"
	StatusPending     = "Pending"
	StatusApproved    = "Approved"
)

// Membership tiers. Attribute only: no behaviour is gated on the tier.
const (
	MembershipBasic    = "Basic"
	MembershipModerate = "Moderate"
	MembershipAdvanced = "Advanced"
)

// Manufacturer represents a supplier applying to (or trading on) the
// marketplace. Entities are stored as JSON, so the tags define the persisted
// layout as well as the API shape.
type Manufacturer struct {
	ID                 string    `json:"id"`
	Company            string    `json:"company"`
	Country            string    `json:"country"`
	RegistrationNumber string    `json:"registrationNumber"`
	Contact            string    `json:"contact"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	NCAGE              string    `json:"ncage"` // NATO Commercial and Government Entity code
	Membership         string    `json:"membership"`
	Profile            string    `json:"profile"`
	Products           []Product `json:"products"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Product is a catalogue item owned by exactly one manufacturer; its lifetime
// is the manufacturer's lifetime. The list is append-only from the
// manufacturer's side.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Qty      int             `json:"qty"`
	LeadDays int             `json:"lead"` // lead time in days
	Price    decimal.Decimal `json:"price"`
}
