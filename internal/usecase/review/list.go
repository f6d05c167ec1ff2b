package review

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/review"
)

type ListReviews struct {
	repo domain.Repository
}

func NewListReviews(repo domain.Repository) *ListReviews {
	return &ListReviews{repo: repo}
}

func (uc *ListReviews) All(ctx context.Context, f domain.Filter) ([]domain.Review, error) {
	if f.Limit < 0 {
		f.Limit = 0
	}
	return uc.repo.List(ctx, f)
}

// Top returns the most recent highly rated reviews.
func (uc *ListReviews) Top(ctx context.Context) ([]domain.Review, error) {
	return uc.repo.Top(ctx, domain.TopMinRating, domain.TopLimit)
}

func (uc *ListReviews) ForBarber(ctx context.Context, barberID uint) (*domain.BarberReviews, error) {
	reviews, err := uc.repo.ForBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}
	agg, err := uc.repo.Aggregate(ctx, barberID)
	if err != nil {
		return nil, err
	}
	return &domain.BarberReviews{
		Reviews:       reviews,
		AverageRating: agg.Rating(),
		TotalReviews:  agg.Count,
	}, nil
}

func (uc *ListReviews) HasReview(ctx context.Context, bookingID uint) (bool, error) {
	return uc.repo.ExistsForBooking(ctx, bookingID)
}
