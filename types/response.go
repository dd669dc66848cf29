package types

// ApiResponse is the uniform JSON envelope for non-list endpoints. Token is
// only set on /jwt responses; Data carries the affected resource.
type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
