package handler

import (
	"net/http"
	"time"

	"quote-engine/internal/core/logger"
	"quote-engine/internal/features/rates/domain"
	"quote-engine/internal/features/rates/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Mode table requirements as reported by the status endpoint.
var modeRequirements = map[string][]domain.Table{
	"Air":     {domain.TableZipZone, domain.TableCostZone, domain.TableAirCostZone},
	"Hotshot": {domain.TableHotshotRate},
}

// RatesHandler handles HTTP requests for the rate catalog.
type RatesHandler struct {
	service ports.CatalogService
}

// NewRatesHandler creates a new RatesHandler.
func NewRatesHandler(service ports.CatalogService) *RatesHandler {
	return &RatesHandler{
		service: service,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// StatusResponse describes the loaded rate snapshot.
type StatusResponse struct {
	Loaded   bool                  `json:"loaded"`
	LoadedAt *time.Time            `json:"loaded_at,omitempty"`
	Counts   map[domain.Table]int  `json:"counts"`
	Missing  []domain.Table        `json:"missing"`
	Modes    map[string]ModeStatus `json:"modes"`
}

// ModeStatus reports whether a transport mode can be priced.
type ModeStatus struct {
	Available bool           `json:"available"`
	Missing   []domain.Table `json:"missing"`
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

// ListAccessorials handles GET /accessorials.
// @Summary List accessorial charges
// @Description Returns the selectable accessorial charges in catalog order.
// @Tags Rates
// @Produce json
// @Success 200 {array} domain.Accessorial
// @Router /accessorials [get]
func (h *RatesHandler) ListAccessorials(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Current().Accessorials())
}

// GetStatus handles GET /rates/status.
// @Summary Rate table status
// @Description Reports when rate tables were last loaded and which tables are missing per mode.
// @Tags Rates
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /rates/status [get]
func (h *RatesHandler) GetStatus(c *fiber.Ctx) error {
	status := h.service.Status()
	current := h.service.Current()

	resp := StatusResponse{
		Loaded:  status.Loaded,
		Counts:  status.Counts,
		Missing: status.Missing,
		Modes:   make(map[string]ModeStatus, len(modeRequirements)),
	}
	if status.Loaded {
		resp.LoadedAt = &status.LoadedAt
	}
	for mode, required := range modeRequirements {
		missing := current.MissingTables(required...)
		if missing == nil {
			missing = []domain.Table{}
		}
		resp.Modes[mode] = ModeStatus{Available: len(missing) == 0, Missing: missing}
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// Reload handles POST /rates/reload.
// @Summary Reload rate tables
// @Description Re-reads every rate table and swaps in the new snapshot. The previous snapshot stays active on failure.
// @Tags Rates
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 502 {object} ErrorResponse
// @Router /rates/reload [post]
func (h *RatesHandler) Reload(c *fiber.Ctx) error {
	if err := h.service.Reload(c.UserContext()); err != nil {
		logger.Get().Error("Failed to reload rate tables", zap.Error(err))
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return h.GetStatus(c)
}
