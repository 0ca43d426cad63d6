package dto

// LoginRequest selects a role. Email resolves the identity for manufacturer
// and customer logins; admin needs none.
type LoginRequest struct {
	Role  string `json:"role"`
	Email string `json:"email"`
}

// ContactRequest is the contact form. It is acknowledged and logged, never
// transmitted anywhere.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
