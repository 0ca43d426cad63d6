package dto

import "encoding/json"

// CreateRFQRequest is the RFQ submission form. Status and Quotes are accepted
// but ignored: a new RFQ always starts at "New" with no quotes, whatever the
// payload claims.
type CreateRFQRequest struct {
	CustomerID string          `json:"customerId"`
	Part       string          `json:"part"`
	Qty        string          `json:"qty"`
	Delivery   string          `json:"delivery"`
	Notes      string          `json:"notes"`
	Status     string          `json:"status"`
	Quotes     json.RawMessage `json:"quotes"`
}
