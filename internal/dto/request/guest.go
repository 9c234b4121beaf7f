package request

type RegisterGuestRequest struct {
	GuestID string  `json:"guest_id" validate:"required"`
	Name    string  `json:"name" validate:"required"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=5"`
}
