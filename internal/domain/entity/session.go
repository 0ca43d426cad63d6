package entity

// Roles a session can carry.
const (
	RoleAdmin        = "admin"
	RoleManufacturer = "manufacturer"
	RoleCustomer     = "customer"
)

// Session is the current signed-in identity. There are no credentials: the
// session layer is a role-selection stub, not an authentication system.
// ID is empty for admin; Name is a denormalised copy of the company name
// taken at login time.
type Session struct {
	Role string `json:"role"`
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}
