package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Warrick-api/internal/application/reports"
)

// DashboardHandler maneja el panel principal.
type DashboardHandler struct {
	uc *reports.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reports.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del panel
// @Description  Ingresos, conteos y el listado de facturas filtrado por la búsqueda global.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Búsqueda global"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
