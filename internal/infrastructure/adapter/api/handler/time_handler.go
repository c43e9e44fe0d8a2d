package handler

import (
	"net/http"

	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TimeHandler handles time-of-day HTTP requests
type TimeHandler struct {
	calculator usecase.Calculator
	logger     coreport.Logger
}

// NewTimeHandler creates a new time handler instance
func NewTimeHandler(
	calculator usecase.Calculator,
	logger coreport.Logger,
) *TimeHandler {
	return &TimeHandler{
		calculator: calculator,
		logger:     logger,
	}
}

// Now handles the GET /v1/time/now endpoint
func (h *TimeHandler) Now(c *gin.Context) {
	var query dto.TimeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toTimeResponse(h.calculator.Now(query.WithMilliseconds)))
}

// Normalize handles the GET /v1/time/normalize endpoint
func (h *TimeHandler) Normalize(c *gin.Context) {
	var query dto.TimeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}
	if query.Value == "" {
		respondError(c, h.logger, errs.ErrInvalidRequest)
		return
	}

	result, err := h.calculator.NormalizeTime(query.Value, query.WithMilliseconds)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toTimeResponse(result))
}

// Plus handles the POST /v1/time/plus endpoint
func (h *TimeHandler) Plus(c *gin.Context) {
	h.shift(c, h.calculator.PlusTime)
}

// Minus handles the POST /v1/time/minus endpoint
func (h *TimeHandler) Minus(c *gin.Context) {
	h.shift(c, h.calculator.MinusTime)
}

func (h *TimeHandler) shift(c *gin.Context, op func(string, string, bool) (*usecase.TimeResult, error)) {
	var req dto.TimeArithmeticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	result, err := op(req.Time, req.Duration, req.WithMilliseconds)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toTimeResponse(result))
}

// Compare handles the POST /v1/time/compare endpoint
func (h *TimeHandler) Compare(c *gin.Context) {
	var req dto.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	order, err := h.calculator.CompareTimes(req.A, req.B)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompareResponse{A: req.A, B: req.B, Result: order})
}
