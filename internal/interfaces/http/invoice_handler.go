package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Warrick-api/internal/application/billing"
	"github.com/jhoicas/Warrick-api/internal/application/dto"
)

// InvoiceHandler maneja facturas, el borrador y sus documentos.
type InvoiceHandler struct {
	uc      *billing.InvoiceUseCase
	share   *billing.ShareUseCase
	docs    *billing.DocumentUseCase
	baseURL string
}

// NewInvoiceHandler construye el handler. baseURL es la raíz pública usada en los
// enlaces compartidos; vacía omite el enlace.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, share *billing.ShareUseCase, docs *billing.DocumentUseCase, baseURL string) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, share: share, docs: docs, baseURL: strings.TrimRight(baseURL, "/")}
}

// Create godoc
// @Summary      Emitir factura
// @Description  Asigna el siguiente número, resuelve o registra el cliente por móvil y descarta el borrador.
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceRequest  true  "Factura"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar facturas (más recientes primero)
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Búsqueda por número, cliente o móvil"
// @Success      200  {array}  dto.InvoiceResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener factura
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewInvoiceResponse(*inv))
}

// Update godoc
// @Summary      Editar factura
// @Description  Conserva el número y la copia del negocio.
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la factura"
// @Param        body  body  dto.InvoiceRequest  true  "Factura"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

type statusRequest struct {
	Status string `json:"status"`
}

// SetStatus godoc
// @Summary      Cambiar estado (Paid, Unpaid, Draft)
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la factura"
// @Param        body  body  statusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/status [patch]
func (h *InvoiceHandler) SetStatus(c *fiber.Ctx) error {
	var in statusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar factura
// @Tags         invoices
// @Security     Bearer
// @Param        id       path   string  true  "ID de la factura"
// @Param        confirm  query  bool    true  "Confirmación explícita"
// @Success      204
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), confirmed(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Factura en PDF
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	body, name, err := h.docs.InvoicePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, contentTypePDF, name, body)
}

// XML godoc
// @Summary      Factura en XML (UBL 2.1)
// @Tags         invoices
// @Security     Bearer
// @Produce      application/xml
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Router       /api/invoices/{id}/xml [get]
func (h *InvoiceHandler) XML(c *fiber.Ctx) error {
	body, name, err := h.docs.InvoiceXML(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, fiber.MIMEApplicationXMLCharsetUTF8, name, body)
}

// Share godoc
// @Summary      Resumen para compartir
// @Description  Texto, enlace y respaldo wa.me o mailto según el contacto del cliente.
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.ShareResponse
// @Router       /api/invoices/{id}/share [get]
func (h *InvoiceHandler) Share(c *fiber.Ctx) error {
	id := c.Params("id")
	link := ""
	if h.baseURL != "" {
		link = h.baseURL + "/api/invoices/" + id + "/pdf"
	}
	out, err := h.share.Build(c.UserContext(), id, link)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetDraft godoc
// @Summary      Borrador en curso
// @Description  Sin borrador guardado devuelve uno nuevo con los valores por defecto.
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InvoiceResponse
// @Router       /api/invoices/draft [get]
func (h *InvoiceHandler) GetDraft(c *fiber.Ctx) error {
	out, err := h.uc.GetDraft(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SaveDraft godoc
// @Summary      Guardar borrador
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceRequest  true  "Borrador"
// @Success      200   {object}  dto.InvoiceResponse
// @Router       /api/invoices/draft [put]
func (h *InvoiceHandler) SaveDraft(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SaveDraft(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DiscardDraft godoc
// @Summary      Descartar borrador
// @Tags         invoices
// @Security     Bearer
// @Success      204
// @Router       /api/invoices/draft [delete]
func (h *InvoiceHandler) DiscardDraft(c *fiber.Ctx) error {
	if err := h.uc.DiscardDraft(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
