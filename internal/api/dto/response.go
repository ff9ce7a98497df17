package dto

// Response is the envelope returned by every endpoint.
type Response struct {
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
}
