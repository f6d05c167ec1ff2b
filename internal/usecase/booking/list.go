package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) All(ctx context.Context, f domain.Filter) ([]domain.Booking, error) {
	f.UserID = nil
	return uc.repo.List(ctx, f)
}

func (uc *ListBookings) Mine(ctx context.Context, userID uint, status string) ([]domain.Booking, error) {
	return uc.repo.List(ctx, domain.Filter{UserID: &userID, Status: status})
}

func (uc *ListBookings) Get(ctx context.Context, actor domain.Actor, id uint) (*domain.Booking, error) {
	b, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeView(b, actor); err != nil {
		return nil, err
	}
	return b, nil
}
