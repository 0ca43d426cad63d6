package dto

import "github.com/eurocore-global/supplyhub-api/internal/domain/entity"

// DashboardResponse is the role-scoped dashboard payload. Only the fields for
// the session's role are populated: a manufacturer sees its own record, a
// customer its record plus its RFQs, an admin all three collections.
type DashboardResponse struct {
	Role          string                 `json:"role"`
	Name          string                 `json:"name"`
	Manufacturer  *entity.Manufacturer   `json:"manufacturer,omitempty"`
	Customer      *entity.Customer       `json:"customer,omitempty"`
	RFQs          []*entity.RFQ          `json:"rfqs,omitempty"`
	Manufacturers []*entity.Manufacturer `json:"manufacturers,omitempty"`
	Customers     []*entity.Customer     `json:"customers,omitempty"`
}
