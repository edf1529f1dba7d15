package payment

// CardInput carries the raw form values; normalization happens
// server-side before validation.
type CardInput struct {
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	Cvc        string `json:"cvc"`
	HolderName string `json:"holder_name"`
}

// PaymentRequest represents a payment submission
type PaymentRequest struct {
	Method string    `json:"method" binding:"required,oneof=card upi netbanking"`
	Card   CardInput `json:"card"`
}
