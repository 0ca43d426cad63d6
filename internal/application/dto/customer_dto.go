package dto

// RegisterCustomerRequest is the customer application form.
type RegisterCustomerRequest struct {
	Company            string `json:"company"`
	Country            string `json:"country"`
	RegistrationNumber string `json:"registrationNumber"`
	Contact            string `json:"contact"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
}
