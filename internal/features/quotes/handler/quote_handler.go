package handler

import (
	"errors"
	"net/http"

	"quote-engine/internal/core/logger"
	"quote-engine/internal/features/quotes/domain"
	"quote-engine/internal/features/quotes/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// QuoteHandler handles HTTP requests for quotes.
type QuoteHandler struct {
	service ports.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// CreateQuoteRequest represents the request body for pricing a shipment.
type CreateQuoteRequest struct {
	// Mode is "Hotshot" (default) or "Air".
	Mode      string           `json:"mode" example:"Air"`
	OriginZip string           `json:"origin_zip" example:"85001"`
	DestZip   string           `json:"dest_zip" example:"10001"`
	Weight    *decimal.Decimal `json:"weight" swaggertype:"number" example:"120"`
	// DimWeight overrides the weight derived from the dimensions.
	DimWeight    *decimal.Decimal `json:"dim_weight,omitempty" swaggertype:"number"`
	Length       decimal.Decimal  `json:"length" swaggertype:"number"`
	Width        decimal.Decimal  `json:"width" swaggertype:"number"`
	Height       decimal.Decimal  `json:"height" swaggertype:"number"`
	Pieces       *int             `json:"pieces,omitempty" example:"1"`
	Accessorials []string         `json:"accessorials"`
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// Errors lists every invalid field of a rejected request.
	Errors []string `json:"errors,omitempty"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

func (r CreateQuoteRequest) toDomain() domain.QuoteRequest {
	return domain.QuoteRequest{
		Mode:         domain.Mode(r.Mode),
		OriginZip:    r.OriginZip,
		DestZip:      r.DestZip,
		ActualWeight: r.Weight,
		DimWeight:    r.DimWeight,
		Length:       r.Length,
		Width:        r.Width,
		Height:       r.Height,
		Pieces:       r.Pieces,
		Accessorials: r.Accessorials,
	}
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

// CreateQuote handles POST /quotes.
// @Summary Price a shipment
// @Description Prices a Hotshot or Air shipment against the current rate tables.
// @Description Air lanes that cannot be resolved return 422 with the quote and its error message.
// @Tags Quotes
// @Accept json
// @Produce json
// @Param quote body CreateQuoteRequest true "Shipment details"
// @Success 200 {object} domain.QuoteResult
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} domain.QuoteResult
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *fiber.Ctx) error {
	var req CreateQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	result, err := h.service.CreateQuote(c.UserContext(), req.toDomain())
	if err != nil {
		return h.handleError(c, err)
	}

	if result.Error != "" {
		return c.Status(http.StatusUnprocessableEntity).JSON(result)
	}

	return c.Status(http.StatusOK).JSON(result)
}

func (h *QuoteHandler) handleError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid quote request",
			Errors:  domain.ValidationMessages(err),
			RayID:   rayID(c),
		})
	case errors.Is(err, domain.ErrTableMissing):
		logger.Get().Warn("Quote rejected, rate tables not loaded", zap.Error(err))
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	case errors.Is(err, domain.ErrDistanceUnavailable):
		logger.Get().Warn("Quote rejected, distance lookup failed", zap.Error(err))
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	default:
		logger.Get().Error("Failed to create quote", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}
}
