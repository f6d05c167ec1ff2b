package review

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/review"
)

type DeleteReview struct {
	repo domain.Repository
}

func NewDeleteReview(repo domain.Repository) *DeleteReview {
	return &DeleteReview{repo: repo}
}

func (uc *DeleteReview) Execute(ctx context.Context, id uint) error {
	existing, err := uc.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	return uc.repo.WithinTx(ctx, func(tx domain.TxRepository) error {
		if err := tx.Delete(ctx, id); err != nil {
			return err
		}
		return refreshBarber(ctx, tx, existing.BarberID)
	})
}
