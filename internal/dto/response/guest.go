package response

import (
	"hotel-booking/internal/data/entity"
)

type GuestResponse struct {
	GuestID     string  `json:"guest_id"`
	Name        string  `json:"name"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	ContactInfo string  `json:"contact_info"`
}

func GuestToResponse(guest *entity.Guest) GuestResponse {
	return GuestResponse{
		GuestID:     guest.GuestID,
		Name:        guest.Name,
		Email:       guest.Email,
		Phone:       guest.Phone,
		ContactInfo: guest.ContactInfo(),
	}
}
