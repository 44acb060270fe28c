package entities

// CustomerInfo is the contact block printed on exported quotation documents.
// Name and Email are mandatory before an export may proceed; Phone is
// optional. Validation tags are enforced by the export use case.
type CustomerInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty" validate:"omitempty"`
}

// IsEmpty reports whether no contact field has been filled in, which lets the
// export flow fall back to the stored customer info for the session.
func (c CustomerInfo) IsEmpty() bool {
	return c.Name == "" && c.Email == "" && c.Phone == ""
}
