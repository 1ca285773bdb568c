package domain

// PaymentIntent is the handshake that lets the hosted payment widget capture
// a card payment for the account's cart.
type PaymentIntent struct {
	ID           string `json:"id,omitempty"`
	ClientSecret string `json:"clientSecret"`
}

// Checkout summarises a checkout in progress.
type Checkout struct {
	Intent PaymentIntent
	Lines  []CartLine
	Total  float64
}

// FinalizeRequest is the body sent after the widget captured the payment.
type FinalizeRequest struct {
	UserID          int64  `json:"userId"`
	PaymentIntentID string `json:"paymentIntentId"`
	AddressID       int64  `json:"addressId"`
}
