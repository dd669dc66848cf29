package sslcommerz

// SessionRequest carries the customer and amount fields for a hosted
// payment session. Merchant credentials are added by the client.
type SessionRequest struct {
	TrxID         string
	Amount        float64
	Currency      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ProductName   string
	SuccessURL    string
	FailURL       string
	CancelURL     string
}

// SessionResponse is the subset of the gateway's session API response the
// backend consumes.
type SessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}
