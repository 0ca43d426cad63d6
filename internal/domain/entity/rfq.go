package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RFQ statuses. A request starts at RFQStatusNew; later stages are set by the
// quoting workflow.
const (
	RFQStatusNew             = "New"
	RFQStatusQuoteWaiting    = "Quote Waiting"
	RFQStatusAwaitingPayment = "Awaiting Payment"
)

// RFQ is a customer-initiated request for pricing and availability on a part.
// CustomerID is a weak reference: lookup only, the RFQ does not own the
// customer record.
type RFQ struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	Part       string    `json:"part"`
	Qty        int       `json:"qty"`
	Delivery   string    `json:"delivery"`
	Notes      string    `json:"notes"`
	Status     string    `json:"status"`
	Quotes     []Quote   `json:"quotes"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Quote is a manufacturer's answer to an RFQ.
type Quote struct {
	ID             string          `json:"id"`
	ManufacturerID string          `json:"manufacturerId"`
	Price          decimal.Decimal `json:"price"`
	LeadDays       int             `json:"lead"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"createdAt"`
}
