package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/direcional-api/internal/domain"
	"github.com/jhoicas/direcional-api/internal/domain/entity"
	"github.com/jhoicas/direcional-api/internal/domain/repository"
)

// ReceiptData datos necesarios para el comprobante de una venta.
type ReceiptData struct {
	Sale   *entity.Sale
	Client *entity.Client
	Unit   *entity.Unit
}

// ReceiptPDFGenerator genera el comprobante de venta en PDF.
type ReceiptPDFGenerator interface {
	GenerateSaleReceipt(ctx context.Context, data ReceiptData) ([]byte, error)
}

// ReceiptUseCase arma el comprobante PDF de una venta.
type ReceiptUseCase struct {
	sales     repository.SaleRepository
	clients   repository.ClientRepository
	units     repository.UnitRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso de comprobantes.
func NewReceiptUseCase(
	sales repository.SaleRepository,
	clients repository.ClientRepository,
	units repository.UnitRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{sales: sales, clients: clients, units: units, generator: generator}
}

// Generate devuelve los bytes del PDF y un nombre de archivo sugerido.
func (uc *ReceiptUseCase) Generate(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := uc.sales.FindByID(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	if sale == nil {
		return nil, "", domain.NotFound(domain.EntitySale)
	}
	client, err := uc.clients.FindByID(ctx, sale.ClientID)
	if err != nil {
		return nil, "", err
	}
	if client == nil {
		return nil, "", domain.NotFound(domain.EntityClient)
	}
	unit, err := uc.units.FindByID(ctx, sale.UnitID)
	if err != nil {
		return nil, "", err
	}
	if unit == nil {
		return nil, "", domain.NotFound(domain.EntityUnit)
	}
	pdf, err := uc.generator.GenerateSaleReceipt(ctx, ReceiptData{Sale: sale, Client: client, Unit: unit})
	if err != nil {
		return nil, "", fmt.Errorf("sales: generar comprobante: %w", err)
	}
	return pdf, "venda-" + unit.Number + ".pdf", nil
}
