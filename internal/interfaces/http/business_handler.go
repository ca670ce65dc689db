package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/application/usecase"
)

// BusinessHandler perfil del negocio y preferencias de la consola.
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Get godoc
// @Summary      Perfil del negocio
// @Tags         business
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessResponse
// @Router       /api/business [get]
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar perfil del negocio
// @Tags         business
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BusinessRequest  true  "Perfil"
// @Success      200   {object}  dto.BusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/business [put]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	var in dto.BusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetPreferences godoc
// @Summary      Preferencias de la consola
// @Tags         business
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PreferencesDTO
// @Router       /api/preferences [get]
func (h *BusinessHandler) GetPreferences(c *fiber.Ctx) error {
	out, err := h.uc.GetPreferences(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdatePreferences godoc
// @Summary      Guardar preferencias (modo oscuro)
// @Tags         business
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreferencesDTO  true  "Preferencias"
// @Success      200   {object}  dto.PreferencesDTO
// @Router       /api/preferences [put]
func (h *BusinessHandler) UpdatePreferences(c *fiber.Ctx) error {
	var in dto.PreferencesDTO
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetDarkMode(c.UserContext(), in.DarkMode)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
