package entity

import "strings"

type Guest struct {
	GuestID string  `db:"guest_id"`
	Name    string  `db:"name"`
	Email   *string `db:"email"`
	Phone   *string `db:"phone"`
}

// ContactInfo renders the guest's reachable contacts, or "no contacts" when
// neither email nor phone is registered.
func (g *Guest) ContactInfo() string {
	var parts []string
	if g.Email != nil && *g.Email != "" {
		parts = append(parts, "email: "+*g.Email)
	}
	if g.Phone != nil && *g.Phone != "" {
		parts = append(parts, "phone: "+*g.Phone)
	}
	if len(parts) == 0 {
		return "no contacts"
	}
	return strings.Join(parts, ", ")
}

// EmailAddress returns the email or "" when absent.
func (g *Guest) EmailAddress() string {
	if g.Email == nil {
		return ""
	}
	return *g.Email
}

// PhoneNumber returns the phone or "" when absent.
func (g *Guest) PhoneNumber() string {
	if g.Phone == nil {
		return ""
	}
	return *g.Phone
}
