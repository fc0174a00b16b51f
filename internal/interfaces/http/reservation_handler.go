package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/application/sales"
	"github.com/jhoicas/direcional-api/internal/domain"
)

// ReservationService ciclo de vida de reservas.
type ReservationService interface {
	Create(ctx context.Context, in dto.CreateReservationRequest) (*dto.ReservationResponse, error)
	Cancel(ctx context.Context, id string) (*dto.ReservationResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*dto.ReservationResponse, error)
	List(ctx context.Context, offset, limit int) ([]*dto.ReservationResponse, error)
}

var _ ReservationService = (*sales.ReservationUseCase)(nil)

// ReservationHandler maneja las peticiones HTTP de reservas (protegido).
type ReservationHandler struct {
	uc  ReservationService
	now func() time.Time
}

// NewReservationHandler construye el handler.
func NewReservationHandler(uc ReservationService) *ReservationHandler {
	return &ReservationHandler{uc: uc, now: time.Now}
}

// Create godoc
// @Summary      Reservar unidad
// @Description  La unidad debe estar AVAILABLE y sin reserva activa; pasa a RESERVED.
// @Tags         reservations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReservationRequest  true  "client_id, unit_id, expires_at"
// @Success      201   {object}  dto.ReservationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reservations [post]
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if !in.ExpiresAt.After(h.now()) {
		return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "expires_at debe ser futuro")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/reservations?offset=0&limit=100
func (h *ReservationHandler) List(c *fiber.Ctx) error {
	page := pageQuery(c)
	list, err := h.uc.List(c.UserContext(), page.Offset, page.Limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/reservations/:id
func (h *ReservationHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, domain.EntityReservation)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar reserva
// @Description  Desactiva la reserva y libera la unidad si seguía RESERVED. Idempotente.
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200   {object}  dto.ReservationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *fiber.Ctx) error {
	id, err := idParam(c, domain.EntityReservation)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Cancel(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/reservations/:id
func (h *ReservationHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, domain.EntityReservation)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
