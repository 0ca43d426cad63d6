package dto

// RegisterManufacturerRequest is the manufacturer application form. Company,
// country and email are required; everything else is free text.
type RegisterManufacturerRequest struct {
	Company            string `json:"company"`
	Country            string `json:"country"`
	RegistrationNumber string `json:"registrationNumber"`
	Contact            string `json:"contact"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	NCAGE              string `json:"ncage"`
	Membership         string `json:"membership"` // empty defaults to Basic
	Profile            string `json:"profile"`
}

// UpdateManufacturerProfileRequest shallow-merges the set fields into the
// record. ID and status are not patchable.
type UpdateManufacturerProfileRequest struct {
	Company            *string `json:"company"`
	Country            *string `json:"country"`
	RegistrationNumber *string `json:"registrationNumber"`
	Contact            *string `json:"contact"`
	Email              *string `json:"email"`
	Phone              *string `json:"phone"`
	NCAGE              *string `json:"ncage"`
	Membership         *string `json:"membership"`
	Profile            *string `json:"profile"`
}

// AddProductRequest carries form text; qty, lead and price are coerced and
// validated at the use case boundary rather than stored as strings.
type AddProductRequest struct {
	Name  string `json:"name"`
	Qty   string `json:"qty"`
	Lead  string `json:"lead"`
	Price string `json:"price"`
}
