package dto

// DurationArithmeticRequest represents the API request for combining two durations
type DurationArithmeticRequest struct {
	A                string `json:"a" binding:"required"`
	B                string `json:"b" binding:"required"`
	WithMilliseconds bool   `json:"withMilliseconds"`
}

// DurationQuery binds the query string of the duration normalize endpoint
type DurationQuery struct {
	Value            string `form:"value" binding:"required"`
	WithMilliseconds bool   `form:"ms"`
}

// DurationResponse represents a duration returned by the API
type DurationResponse struct {
	Duration          string `json:"duration"`
	TotalMilliseconds int64  `json:"totalMilliseconds"`
	TotalSeconds      int64  `json:"totalSeconds"`
}
