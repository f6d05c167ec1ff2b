package repository

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/dbx"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/review"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type ReviewSQLRepository struct {
	db *dbx.DB
}

func NewReviewSQLRepository(db *dbx.DB) *ReviewSQLRepository {
	return &ReviewSQLRepository{db: db}
}

const reviewSelect = `
	SELECT r.*, b.name AS barber_name, b.image AS barber_image
	FROM reviews r
	LEFT JOIN barbers b ON r.barber_id = b.id`

func (r *ReviewSQLRepository) BarberName(ctx context.Context, barberID uint) (string, bool, error) {
	row, found, err := r.db.Get(ctx, "SELECT name FROM barbers WHERE id = ?", barberID)
	if err != nil || !found {
		return "", found, err
	}
	return row.String("name"), true, nil
}

func (r *ReviewSQLRepository) Get(ctx context.Context, id uint) (*review.Review, error) {
	row, found, err := r.db.Get(ctx, reviewSelect+" WHERE r.id = ?", id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, review.ErrNotFound
	}
	rv := scanReview(row)
	return &rv, nil
}

func (r *ReviewSQLRepository) List(ctx context.Context, f review.Filter) ([]review.Review, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(reviewSelect)
	if f.BarberID != 0 {
		sb.WriteString(" WHERE r.barber_id = ?")
		args = append(args, f.BarberID)
	}
	sb.WriteString(" ORDER BY r.created_at DESC, r.id DESC")
	if f.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, f.Limit)
	}
	return r.query(ctx, sb.String(), args...)
}

func (r *ReviewSQLRepository) Top(ctx context.Context, minRating, limit int) ([]review.Review, error) {
	return r.query(ctx,
		reviewSelect+" WHERE r.rating >= ? ORDER BY r.created_at DESC, r.id DESC LIMIT ?",
		minRating, limit,
	)
}

func (r *ReviewSQLRepository) ForBarber(ctx context.Context, barberID uint) ([]review.Review, error) {
	return r.query(ctx,
		reviewSelect+" WHERE r.barber_id = ? ORDER BY r.created_at DESC, r.id DESC",
		barberID,
	)
}

func (r *ReviewSQLRepository) Aggregate(ctx context.Context, barberID uint) (review.Aggregate, error) {
	return aggregate(ctx, r.db, barberID)
}

func (r *ReviewSQLRepository) ExistsForBooking(ctx context.Context, bookingID uint) (bool, error) {
	return reviewExists(ctx, r.db, bookingID)
}

func (r *ReviewSQLRepository) query(ctx context.Context, query string, args ...any) ([]review.Review, error) {
	rows, err := r.db.All(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	out := make([]review.Review, 0, len(rows))
	for _, row := range rows {
		out = append(out, scanReview(row))
	}
	return out, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *ReviewSQLRepository) WithinTx(ctx context.Context, fn func(tx review.TxRepository) error) error {
	return r.db.Tx(ctx, func(q dbx.Querier) error {
		return fn(&reviewTx{q: q})
	})
}

type reviewTx struct {
	q dbx.Querier
}

func (t *reviewTx) ExistsForBooking(ctx context.Context, bookingID uint) (bool, error) {
	return reviewExists(ctx, t.q, bookingID)
}

func (t *reviewTx) Insert(ctx context.Context, in review.CreateInput, at time.Time) (uint, error) {
	res, err := t.q.Run(ctx, `
		INSERT INTO reviews (booking_id, barber_id, user_id, customer_name, rating, comment, services, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		nullableID(in.BookingID),
		in.BarberID,
		nullableID(in.UserID),
		in.CustomerName,
		in.Rating,
		in.Comment,
		models.DelimitedList(in.Services).String(),
		at,
	)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return 0, review.ErrAlreadyReviewed
		}
		return 0, err
	}
	return uint(res.LastID), nil
}

func (t *reviewTx) Delete(ctx context.Context, id uint) error {
	res, err := t.q.Run(ctx, "DELETE FROM reviews WHERE id = ?", id)
	if err != nil {
		return err
	}
	if res.Changes == 0 {
		return review.ErrNotFound
	}
	return nil
}

func (t *reviewTx) Aggregate(ctx context.Context, barberID uint) (review.Aggregate, error) {
	return aggregate(ctx, t.q, barberID)
}

func (t *reviewTx) SetBarberRating(ctx context.Context, barberID uint, rating float64, count int64) error {
	_, err := t.q.Run(ctx,
		"UPDATE barbers SET rating = ?, reviews_count = ? WHERE id = ?",
		rating, count, barberID,
	)
	return err
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func aggregate(ctx context.Context, q dbx.Querier, barberID uint) (review.Aggregate, error) {
	row, _, err := q.Get(ctx,
		"SELECT COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count FROM reviews WHERE barber_id = ?",
		barberID,
	)
	if err != nil {
		return review.Aggregate{}, err
	}
	return review.Aggregate{Average: row.Float64("average"), Count: row.Int64("count")}, nil
}

func reviewExists(ctx context.Context, q dbx.Querier, bookingID uint) (bool, error) {
	_, found, err := q.Get(ctx, "SELECT id FROM reviews WHERE booking_id = ?", bookingID)
	return found, err
}

func scanReview(row dbx.Row) review.Review {
	rv := review.Review{
		ID:           row.Uint("id"),
		BookingID:    row.NullUint("booking_id"),
		BarberID:     row.Uint("barber_id"),
		UserID:       row.NullUint("user_id"),
		CustomerName: row.String("customer_name"),
		Rating:       row.Int("rating"),
		Comment:      row.String("comment"),
		Services:     models.ParseDelimited(row.String("services")),
		CreatedAt:    row.Time("created_at"),
		BarberName:   row.String("barber_name"),
		BarberImage:  row.String("barber_image"),
	}
	if rv.BarberName != "" {
		rv.Barber = &review.BarberRef{ID: rv.BarberID, Name: rv.BarberName, Image: rv.BarberImage}
	}
	return rv
}

var _ review.Repository = (*ReviewSQLRepository)(nil)
