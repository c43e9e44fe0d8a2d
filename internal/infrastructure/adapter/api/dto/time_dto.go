package dto

// TimeArithmeticRequest represents the API request for moving a time of day by a duration
type TimeArithmeticRequest struct {
	Time             string `json:"time" binding:"required"`
	Duration         string `json:"duration" binding:"required"`
	WithMilliseconds bool   `json:"withMilliseconds"`
}

// CompareRequest represents the API request for ordering two values of the same type
type CompareRequest struct {
	A string `json:"a" binding:"required"`
	B string `json:"b" binding:"required"`
}

// CompareResponse carries the ordering of a against b as -1, 0 or +1
type CompareResponse struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Result int    `json:"result"`
}

// TimeQuery binds the query string of the time read endpoints
type TimeQuery struct {
	Value            string `form:"value"`
	WithMilliseconds bool   `form:"ms"`
}

// TimeResponse represents a time of day returned by the API
type TimeResponse struct {
	Time         string `json:"time"`
	Hours        uint8  `json:"hours"`
	Minutes      uint8  `json:"minutes"`
	Seconds      uint8  `json:"seconds"`
	Milliseconds int16  `json:"milliseconds"`
}
