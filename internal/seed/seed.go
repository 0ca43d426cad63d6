// Package seed loads the demo dataset so a fresh install has something to
// show on every dashboard. Ids are fixed, matching the demo login flows.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
	"github.com/eurocore-global/supplyhub-api/internal/domain/repository"
)

// Empty reports whether all three collections are empty.
func Empty(
	manufacturers repository.ManufacturerRepository,
	customers repository.CustomerRepository,
	rfqs repository.RFQRepository,
) (bool, error) {
	ms, err := manufacturers.List()
	if err != nil {
		return false, err
	}
	cs, err := customers.List()
	if err != nil {
		return false, err
	}
	rs, err := rfqs.List()
	if err != nil {
		return false, err
	}
	return len(ms) == 0 && len(cs) == 0 && len(rs) == 0, nil
}

// Apply inserts the demo records. Call only on an empty store; Create
// prepends, so the slices below are written in reverse display order.
func Apply(
	manufacturers repository.ManufacturerRepository,
	customers repository.CustomerRepository,
	rfqs repository.RFQRepository,
) error {
	now := time.Now()

	demoManufacturers := []*entity.Manufacturer{
		{
			ID:         "m2",
			Company:    "EuroTech Supplies",
			Country:    "Germany",
			Contact:    "Jonas Weber",
			Email:      "sales@eurotech.example",
			Membership: entity.MembershipBasic,
			Products:   []entity.Product{},
			Status:     entity.StatusUnderReview,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:         "m1",
			Company:    "Nordic Defence Components",
			Country:    "Finland",
			NCAGE:      "A1B2C",
			Contact:    "Aino Korhonen",
			Email:      "contact@nordicdefence.example",
			Membership: entity.MembershipAdvanced,
			Profile:    "Precision components for unmanned systems.",
			Products: []entity.Product{
				{ID: "p1", Name: "Drone Motor", Qty: 500, LeadDays: 21, Price: decimal.NewFromInt(240)},
				{ID: "p2", Name: "Optical Sensor", Qty: 120, LeadDays: 45, Price: decimal.NewFromInt(1850)},
			},
			Status:    entity.StatusApproved,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, m := range demoManufacturers {
		if err := manufacturers.Create(m); err != nil {
			return err
		}
	}

	demoCustomers := []*entity.Customer{
		{
			ID:        "c2",
			Company:   "Defence Solutions Ltd",
			Country:   "Estonia",
			Contact:   "Maarja Tamm",
			Email:     "ops@defencesolutions.example",
			Status:    entity.StatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "c1",
			Company:   "ArmaTech",
			Country:   "Ukraine",
			Contact:   "Oleh Shevchenko",
			Email:     "procurement@armatech.example",
			Status:    entity.StatusApproved,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, c := range demoCustomers {
		if err := customers.Create(c); err != nil {
			return err
		}
	}

	demoRFQs := []*entity.RFQ{
		{
			ID:         "r2",
			CustomerID: "c2",
			Part:       "Optical Sensor",
			Qty:        25,
			Status:     entity.RFQStatusAwaitingPayment,
			Quotes:     []entity.Quote{},
			CreatedAt:  now,
		},
		{
			ID:         "r1",
			CustomerID: "c1",
			Part:       "Drone Motor",
			Qty:        50,
			Status:     entity.RFQStatusQuoteWaiting,
			Quotes:     []entity.Quote{},
			CreatedAt:  now,
		},
	}
	for _, r := range demoRFQs {
		if err := rfqs.Create(r); err != nil {
			return err
		}
	}

	return nil
}
