package request

type RecordPaymentRequest struct {
	BookingID string  `json:"booking_id" validate:"required,uuid4"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,oneof=card cash transfer"`
}
