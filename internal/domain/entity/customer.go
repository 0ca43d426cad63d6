package entity

import "time"

// Customer represents a buying organisation. Same one-way status lifecycle as
// Manufacturer.
type Customer struct {
	ID                 string    `json:"id"`
	Company            string    `json:"company"`
	Country            string    `json:"country"`
	RegistrationNumber string    `json:"registrationNumber"`
	Contact            string    `json:"contact"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
