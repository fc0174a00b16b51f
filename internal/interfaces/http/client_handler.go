package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/application/sales"
	"github.com/jhoicas/direcional-api/internal/application/usecase"
	"github.com/jhoicas/direcional-api/internal/domain"
)

// ClientService CRUD de clientes.
type ClientService interface {
	Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ClientResponse, error)
	List(ctx context.Context, page dto.PageRequest) ([]*dto.ClientResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, id string) error
}

// ClientReservationLister historial de reservas de un cliente.
type ClientReservationLister interface {
	ListByClient(ctx context.Context, clientID string, offset, limit int) ([]*dto.ReservationResponse, error)
}

// ClientSaleLister historial de ventas de un cliente.
type ClientSaleLister interface {
	ListByClient(ctx context.Context, clientID string, offset, limit int) ([]*dto.SaleResponse, error)
}

var (
	_ ClientService           = (*usecase.ClientUseCase)(nil)
	_ ClientReservationLister = (*sales.ReservationUseCase)(nil)
	_ ClientSaleLister        = (*sales.SaleUseCase)(nil)
)

// ClientHandler maneja las peticiones HTTP de clientes (protegido).
type ClientHandler struct {
	uc           ClientService
	reservations ClientReservationLister
	sales        ClientSaleLister
}

// NewClientHandler construye el handler.
func NewClientHandler(uc ClientService, reservations ClientReservationLister, sales ClientSaleLister) *ClientHandler {
	return &ClientHandler{uc: uc, reservations: reservations, sales: sales}
}

// Create godoc
// @Summary      Registrar cliente
// @Tags         clients
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "name, national_id, email, phone"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	client, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// List GET /api/clients?offset=0&limit=100
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), pageQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/clients/:id
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, domain.EntityClient)
	if err != nil {
		return writeError(c, err)
	}
	client, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(client)
}

// Update godoc
// @Summary      Actualizar datos de contacto del cliente
// @Tags         clients
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del cliente"
// @Param        body  body  dto.UpdateClientRequest  true  "name, email, phone"
// @Success      200   {object}  dto.ClientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, domain.EntityClient)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateClientRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	client, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(client)
}

// Delete DELETE /api/clients/:id (409 si tiene reservas o ventas)
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, domain.EntityClient)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reservations GET /api/clients/:id/reservations
func (h *ClientHandler) Reservations(c *fiber.Ctx) error {
	id, err := idParam(c, domain.EntityClient)
	if err != nil {
		return writeError(c, err)
	}
	if _, err := h.uc.GetByID(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	page := pageQuery(c)
	list, err := h.reservations.ListByClient(c.UserContext(), id, page.Offset, page.Limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Sales GET /api/clients/:id/sales
func (h *ClientHandler) Sales(c *fiber.Ctx) error {
	id, err := idParam(c, domain.EntityClient)
	if err != nil {
		return writeError(c, err)
	}
	if _, err := h.uc.GetByID(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	page := pageQuery(c)
	list, err := h.sales.ListByClient(c.UserContext(), id, page.Offset, page.Limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}
