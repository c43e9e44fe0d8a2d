package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DurationHandler handles duration HTTP requests
type DurationHandler struct {
	calculator usecase.Calculator
	logger     coreport.Logger
}

// NewDurationHandler creates a new duration handler instance
func NewDurationHandler(
	calculator usecase.Calculator,
	logger coreport.Logger,
) *DurationHandler {
	return &DurationHandler{
		calculator: calculator,
		logger:     logger,
	}
}

// Normalize handles the GET /v1/duration/normalize endpoint
func (h *DurationHandler) Normalize(c *gin.Context) {
	var query dto.DurationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	result, err := h.calculator.NormalizeDuration(query.Value, query.WithMilliseconds)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toDurationResponse(result))
}

// Add handles the POST /v1/duration/add endpoint
func (h *DurationHandler) Add(c *gin.Context) {
	h.combine(c, h.calculator.AddDurations)
}

// Subtract handles the POST /v1/duration/subtract endpoint
func (h *DurationHandler) Subtract(c *gin.Context) {
	h.combine(c, h.calculator.SubtractDurations)
}

func (h *DurationHandler) combine(c *gin.Context, op func(string, string, bool) (*usecase.DurationResult, error)) {
	var req dto.DurationArithmeticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	result, err := op(req.A, req.B, req.WithMilliseconds)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toDurationResponse(result))
}

// Compare handles the POST /v1/duration/compare endpoint
func (h *DurationHandler) Compare(c *gin.Context) {
	var req dto.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	order, err := h.calculator.CompareDurations(req.A, req.B)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompareResponse{A: req.A, B: req.B, Result: order})
}
