package dto

// ErrorResponse is the body of every failed API call. Code is one of the
// numeric codes returned by errs.ErrorCode.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}
