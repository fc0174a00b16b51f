package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/application/sales"
	"github.com/jhoicas/direcional-api/internal/domain"
)

// SaleService ciclo de vida de ventas.
type SaleService interface {
	Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*dto.SaleResponse, error)
	List(ctx context.Context, offset, limit int) ([]*dto.SaleResponse, error)
}

// ReceiptService genera el comprobante PDF de una venta.
type ReceiptService interface {
	Generate(ctx context.Context, saleID string) ([]byte, string, error)
}

var (
	_ SaleService    = (*sales.SaleUseCase)(nil)
	_ ReceiptService = (*sales.ReceiptUseCase)(nil)
)

// SaleHandler maneja las peticiones HTTP de ventas (protegido).
type SaleHandler struct {
	uc       SaleService
	receipts ReceiptService
}

// NewSaleHandler construye el handler. receipts puede ser nil (sin comprobante).
func NewSaleHandler(uc SaleService, receipts ReceiptService) *SaleHandler {
	return &SaleHandler{uc: uc, receipts: receipts}
}

// Create godoc
// @Summary      Registrar venta
// @Description  La unidad debe estar AVAILABLE o RESERVED; pasa a SOLD y la reserva activa se desactiva.
// @Tags         sales
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "client_id, unit_id, sale_value, down_payment"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/sales?offset=0&limit=100
func (h *SaleHandler) List(c *fiber.Ctx) error {
	page := pageQuery(c)
	list, err := h.uc.List(c.UserContext(), page.Offset, page.Limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/sales/:id
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, domain.EntitySale)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/sales/:id (la unidad vuelve a AVAILABLE)
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, domain.EntitySale)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Comprobante PDF de la venta
// @Tags         sales
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200   {file}    binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	if h.receipts == nil {
		return fiber.ErrNotFound
	}
	id, err := idParam(c, domain.EntitySale)
	if err != nil {
		return writeError(c, err)
	}
	pdf, filename, err := h.receipts.Generate(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
