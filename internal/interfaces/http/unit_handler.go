package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/application/sales"
	"github.com/jhoicas/direcional-api/internal/application/usecase"
	"github.com/jhoicas/direcional-api/internal/domain"
)

// UnitService catálogo de unidades.
type UnitService interface {
	Create(ctx context.Context, in dto.CreateUnitRequest) (*dto.UnitResponse, error)
	GetByID(ctx context.Context, id string) (*dto.UnitResponse, error)
	List(ctx context.Context, status string, page dto.PageRequest) ([]*dto.UnitResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error)
	Delete(ctx context.Context, id string) error
}

// AvailabilityChecker consulta de disponibilidad de una unidad.
type AvailabilityChecker interface {
	Check(ctx context.Context, unitID string) (*dto.UnitAvailabilityResponse, error)
}

var (
	_ UnitService         = (*usecase.UnitUseCase)(nil)
	_ AvailabilityChecker = (*sales.AvailabilityQuery)(nil)
)

// UnitHandler maneja las peticiones HTTP de unidades (protegido).
type UnitHandler struct {
	uc           UnitService
	availability AvailabilityChecker
}

// NewUnitHandler construye el handler.
func NewUnitHandler(uc UnitService, availability AvailabilityChecker) *UnitHandler {
	return &UnitHandler{uc: uc, availability: availability}
}

// Create godoc
// @Summary      Catalogar unidad (nace AVAILABLE)
// @Tags         units
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUnitRequest  true  "number, block, floor, rooms, area, price"
// @Success      201   {object}  dto.UnitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/units [post]
func (h *UnitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUnitRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	unit, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(unit)
}

// List godoc
// @Summary      Listar unidades
// @Tags         units
// @Security     BearerAuth
// @Produce      json
// @Param        status  query  string  false  "AVAILABLE, RESERVED o SOLD"
// @Param        offset  query  int     false  "offset"
// @Param        limit   query  int     false  "limit (máx. 100)"
// @Success      200   {array}   dto.UnitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/units [get]
func (h *UnitHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), c.Query("status"), pageQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/units/:id
func (h *UnitHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, domain.EntityUnit)
	if err != nil {
		return writeError(c, err)
	}
	unit, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(unit)
}

// Update PUT /api/units/:id (no modifica el status)
func (h *UnitHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, domain.EntityUnit)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateUnitRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	unit, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(unit)
}

// Delete DELETE /api/units/:id (solo unidades AVAILABLE)
func (h *UnitHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, domain.EntityUnit)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Availability godoc
// @Summary      Disponibilidad de la unidad
// @Tags         units
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  string  true  "ID de la unidad"
// @Success      200   {object}  dto.UnitAvailabilityResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/units/{id}/availability [get]
func (h *UnitHandler) Availability(c *fiber.Ctx) error {
	id, err := idParam(c, domain.EntityUnit)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.availability.Check(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
