package sales

import (
	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/domain/entity"
)

func toReservationResponse(r *entity.Reservation) *dto.ReservationResponse {
	return &dto.ReservationResponse{
		ID:         r.ID,
		ClientID:   r.ClientID,
		UnitID:     r.UnitID,
		ReservedAt: r.ReservedAt,
		ExpiresAt:  r.ExpiresAt,
		Active:     r.Active,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toReservationList(list []*entity.Reservation) []*dto.ReservationResponse {
	out := make([]*dto.ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toReservationResponse(r))
	}
	return out
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          s.ID,
		ClientID:    s.ClientID,
		UnitID:      s.UnitID,
		SaleValue:   s.SaleValue,
		DownPayment: s.DownPayment,
		SoldAt:      s.SoldAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSaleList(list []*entity.Sale) []*dto.SaleResponse {
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out
}

func normalizePage(offset, limit int) (int, int) {
	p := dto.PageRequest{Offset: offset, Limit: limit}
	p.DefaultPage()
	return p.Offset, p.Limit
}
