package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/application/reports"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/settlement"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SettlementHandler liquidación por periodo y sus exportaciones.
type SettlementHandler struct {
	uc *reports.SettlementUseCase
}

// NewSettlementHandler construye el handler.
func NewSettlementHandler(uc *reports.SettlementUseCase) *SettlementHandler {
	return &SettlementHandler{uc: uc}
}

// Get godoc
// @Summary      Liquidación del periodo
// @Description  Staff recibe solo el resumen; el desglose por producto es exclusivo de Admin.
// @Tags         settlement
// @Security     Bearer
// @Produce      json
// @Param        range  query  string  false  "1h, 24h, 7D, 15D, 1M, 3M, 6M, 1Y, 5Y, Lifetime o Custom"
// @Param        start  query  string  false  "YYYY-MM-DD (solo Custom)"
// @Param        end    query  string  false  "YYYY-MM-DD (solo Custom)"
// @Success      200  {object}  dto.SettlementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/settlement [get]
func (h *SettlementHandler) Get(c *fiber.Ctx) error {
	f, err := h.filter(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Report(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	if !strings.EqualFold(GetRole(c), entity.RoleAdmin) {
		out.Products = nil
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Liquidación en PDF
// @Tags         settlement
// @Security     Bearer
// @Produce      application/pdf
// @Param        range  query  string  false  "1h, 24h, 7D, 15D, 1M, 3M, 6M, 1Y, 5Y, Lifetime o Custom"
// @Param        start  query  string  false  "YYYY-MM-DD"
// @Param        end    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Router       /api/settlement/pdf [get]
func (h *SettlementHandler) PDF(c *fiber.Ctx) error {
	f, err := h.filter(c)
	if err != nil {
		return writeError(c, err)
	}
	body, name, err := h.uc.ExportPDF(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, contentTypePDF, name, body)
}

// XLSX godoc
// @Summary      Liquidación en Excel
// @Tags         settlement
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        range  query  string  false  "1h, 24h, 7D, 15D, 1M, 3M, 6M, 1Y, 5Y, Lifetime o Custom"
// @Param        start  query  string  false  "YYYY-MM-DD"
// @Param        end    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Router       /api/settlement/xlsx [get]
func (h *SettlementHandler) XLSX(c *fiber.Ctx) error {
	f, err := h.filter(c)
	if err != nil {
		return writeError(c, err)
	}
	body, name, err := h.uc.ExportXLSX(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, contentTypeXLSX, name, body)
}

// filter lee range/start/end de la query.
func (h *SettlementHandler) filter(c *fiber.Ctx) (settlement.RangeFilter, error) {
	return reports.ParseQuery(dto.SettlementQuery{
		Range: c.Query("range"),
		Start: c.Query("start"),
		End:   c.Query("end"),
	})
}
