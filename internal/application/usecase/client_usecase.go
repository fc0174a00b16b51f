package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/domain"
	"github.com/jhoicas/direcional-api/internal/domain/entity"
	"github.com/jhoicas/direcional-api/internal/domain/repository"
)

const (
	msgNationalIDExists = "national ID already exists"
	msgClientReferenced = "client has reservations or sales"
)

// ClientUseCase casos de uso CRUD para clientes. El CPF es inmutable.
type ClientUseCase struct {
	repo         repository.ClientRepository
	reservations repository.ReservationRepository
	sales        repository.SaleRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(
	repo repository.ClientRepository,
	reservations repository.ReservationRepository,
	sales repository.SaleRepository,
) *ClientUseCase {
	return &ClientUseCase{repo: repo, reservations: reservations, sales: sales}
}

// Create registra un cliente. Conflict si el CPF ya existe.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	nationalID := strings.TrimSpace(in.NationalID)
	existing, err := uc.repo.FindByNationalID(ctx, nationalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict(domain.EntityClient, msgNationalIDExists)
	}
	now := time.Now().UTC()
	client := &entity.Client{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(in.Name),
		NationalID: nationalID,
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:      strings.TrimSpace(in.Phone),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes con paginación.
func (uc *ClientUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ClientResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update actualiza los datos de contacto.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		client.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Phone != nil {
		client.Phone = strings.TrimSpace(*in.Phone)
	}
	client.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente sin reservas ni ventas. Conflict si tiene historial.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	reservations, err := uc.reservations.ListByClientID(ctx, id, 0, 1)
	if err != nil {
		return err
	}
	sales, err := uc.sales.ListByClientID(ctx, id, 0, 1)
	if err != nil {
		return err
	}
	if len(reservations) > 0 || len(sales) > 0 {
		return domain.Conflict(domain.EntityClient, msgClientReferenced)
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFound(domain.EntityClient)
	}
	return nil
}

func (uc *ClientUseCase) find(ctx context.Context, id string) (*entity.Client, error) {
	client, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NotFound(domain.EntityClient)
	}
	return client, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		NationalID: c.NationalID,
		Email:      c.Email,
		Phone:      c.Phone,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
