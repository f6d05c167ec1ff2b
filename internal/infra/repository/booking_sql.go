package repository

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/dbx"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
)

type BookingSQLRepository struct {
	db *dbx.DB
}

func NewBookingSQLRepository(db *dbx.DB) *BookingSQLRepository {
	return &BookingSQLRepository{db: db}
}

const bookingSelect = `
	SELECT b.*, br.name AS barber_name, br.image AS barber_image
	FROM bookings b
	LEFT JOIN barbers br ON b.barber_id = br.id`

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *BookingSQLRepository) GetBarberName(ctx context.Context, barberID uint) (string, bool, error) {
	row, found, err := r.db.Get(ctx, "SELECT name FROM barbers WHERE id = ?", barberID)
	if err != nil || !found {
		return "", found, err
	}
	return row.String("name"), true, nil
}

func (r *BookingSQLRepository) ServiceCatalog(ctx context.Context, ids []uint) (map[uint]domain.ServiceItem, error) {
	out := make(map[uint]domain.ServiceItem, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.All(ctx,
		"SELECT id, name, price FROM services WHERE id IN ("+placeholders(len(ids))+")",
		uintArgs(ids)...,
	)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		item := domain.ServiceItem{ID: row.Uint("id"), Name: row.String("name"), Price: row.Int("price")}
		out[item.ID] = item
	}
	return out, nil
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *BookingSQLRepository) WithinTx(ctx context.Context, fn func(tx domain.TxRepository) error) error {
	return r.db.Tx(ctx, func(q dbx.Querier) error {
		return fn(&bookingTx{q: q})
	})
}

type bookingTx struct {
	q dbx.Querier
}

func (t *bookingTx) SlotTaken(ctx context.Context, barberID uint, date, clock string) (bool, error) {
	_, found, err := t.q.Get(ctx, `
		SELECT id FROM bookings
		WHERE barber_id = ? AND booking_date = ? AND booking_time = ?
		AND status IN ('pending', 'confirmed')`,
		barberID, date, clock,
	)
	return found, err
}

func (t *bookingTx) Insert(ctx context.Context, in domain.CreateInput, at time.Time) (uint, error) {
	res, err := t.q.Run(ctx, `
		INSERT INTO bookings (
			user_id, barber_id, booking_date, booking_time, status,
			total_price, total_duration, customer_name, customer_email,
			customer_phone, notes, payment_method, payment_status,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nullableID(in.UserID),
		in.BarberID,
		in.Date,
		in.Time,
		string(domain.InitialStatus()),
		in.TotalPrice,
		in.TotalDuration,
		in.Customer.Name,
		in.Customer.Email,
		in.Customer.Phone,
		in.Notes,
		in.PaymentMethod,
		domain.DefaultPaymentStatus,
		at,
		at,
	)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return 0, domain.ErrSlotTaken
		}
		return 0, err
	}
	return uint(res.LastID), nil
}

func (t *bookingTx) InsertServices(ctx context.Context, bookingID uint, items []domain.ServiceItem) error {
	for _, s := range items {
		if _, err := t.q.Run(ctx, `
			INSERT INTO booking_services (booking_id, service_id, service_name, service_price)
			VALUES (?, ?, ?, ?)`,
			bookingID, s.ID, s.Name, s.Price,
		); err != nil {
			return err
		}
	}
	return nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *BookingSQLRepository) Get(ctx context.Context, id uint) (*domain.Booking, error) {
	row, found, err := r.db.Get(ctx, bookingSelect+" WHERE b.id = ?", id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}

	b := scanBooking(row)
	if err := r.attachServices(ctx, []*domain.Booking{&b}); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingSQLRepository) List(ctx context.Context, f domain.Filter) ([]domain.Booking, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(bookingSelect)
	sb.WriteString(" WHERE 1=1")

	if f.UserID != nil {
		sb.WriteString(" AND b.user_id = ?")
		args = append(args, *f.UserID)
	}
	if f.Status != "" && f.Status != "all" {
		sb.WriteString(" AND b.status = ?")
		args = append(args, f.Status)
	}
	if f.Date != "" {
		sb.WriteString(" AND b.booking_date = ?")
		args = append(args, f.Date)
	}
	if f.BarberID != 0 {
		sb.WriteString(" AND b.barber_id = ?")
		args = append(args, f.BarberID)
	}
	sb.WriteString(" ORDER BY b.created_at DESC, b.id DESC")

	rows, err := r.db.All(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, len(rows))
	ptrs := make([]*domain.Booking, len(rows))
	for i, row := range rows {
		out[i] = scanBooking(row)
		ptrs[i] = &out[i]
	}
	if err := r.attachServices(ctx, ptrs); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingSQLRepository) ActiveSlots(ctx context.Context, barberID uint, date string) ([]string, error) {
	rows, err := r.db.All(ctx, `
		SELECT booking_time FROM bookings
		WHERE barber_id = ? AND booking_date = ? AND status IN ('pending', 'confirmed')
		ORDER BY booking_time ASC`,
		barberID, date,
	)
	if err != nil {
		return nil, err
	}

	slots := make([]string, 0, len(rows))
	for _, row := range rows {
		slots = append(slots, row.String("booking_time"))
	}
	return slots, nil
}

// attachServices loads line-items for all bookings in one query.
func (r *BookingSQLRepository) attachServices(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]uint, len(bookings))
	byID := make(map[uint]*domain.Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		byID[b.ID] = b
	}

	rows, err := r.db.All(ctx, `
		SELECT booking_id, service_id, service_name, service_price
		FROM booking_services
		WHERE booking_id IN (`+placeholders(len(ids))+`)
		ORDER BY id ASC`,
		uintArgs(ids)...,
	)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if b, ok := byID[row.Uint("booking_id")]; ok {
			b.Services = append(b.Services, domain.ServiceItem{
				ID:    row.Uint("service_id"),
				Name:  row.String("service_name"),
				Price: row.Int("service_price"),
			})
		}
	}
	return nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *BookingSQLRepository) UpdateStatus(ctx context.Context, id uint, status domain.Status, at time.Time) error {
	res, err := r.db.Run(ctx,
		"UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?",
		string(status), at, id,
	)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return domain.ErrSlotTaken
		}
		return err
	}
	if res.Changes == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingSQLRepository) Cancel(ctx context.Context, id uint, at time.Time) error {
	res, err := r.db.Run(ctx,
		"UPDATE bookings SET status = ?, updated_at = ? WHERE id = ? AND status <> ?",
		string(domain.StatusCancelled), at, id, string(domain.StatusCompleted),
	)
	if err != nil {
		return err
	}
	if res.Changes > 0 {
		return nil
	}

	_, found, err := r.db.Get(ctx, "SELECT id FROM bookings WHERE id = ?", id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return domain.ErrCancelCompleted
}

// --------------------------------------------------
// Stats
// --------------------------------------------------

func (r *BookingSQLRepository) Summary(ctx context.Context, today string) (domain.Summary, error) {
	row, _, err := r.db.Get(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN booking_date = ? THEN 1 ELSE 0 END), 0) AS today_bookings,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_bookings,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN total_price ELSE 0 END), 0) AS total_revenue,
			COUNT(*) AS total_bookings,
			COALESCE(SUM(CASE WHEN booking_date = ? AND status = 'completed' THEN 1 ELSE 0 END), 0) AS completed_today
		FROM bookings`,
		today, today,
	)
	if err != nil {
		return domain.Summary{}, err
	}

	return domain.Summary{
		TodayBookings:   row.Int64("today_bookings"),
		PendingBookings: row.Int64("pending_bookings"),
		TotalRevenue:    row.Int64("total_revenue"),
		TotalBookings:   row.Int64("total_bookings"),
		CompletedToday:  row.Int64("completed_today"),
	}, nil
}

func (r *BookingSQLRepository) Daily(ctx context.Context, from, to string) ([]domain.DayStat, error) {
	rows, err := r.db.All(ctx, `
		SELECT booking_date AS date, COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS revenue
		FROM bookings
		WHERE booking_date >= ? AND booking_date <= ?
		GROUP BY booking_date
		ORDER BY booking_date ASC`,
		from, to,
	)
	if err != nil {
		return nil, err
	}

	out := make([]domain.DayStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.DayStat{
			Date:    row.String("date"),
			Count:   row.Int64("count"),
			Revenue: row.Int64("revenue"),
		})
	}
	return out, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func scanBooking(row dbx.Row) domain.Booking {
	b := domain.Booking{
		ID:            row.Uint("id"),
		UserID:        row.NullUint("user_id"),
		BarberID:      row.Uint("barber_id"),
		BookingDate:   row.String("booking_date"),
		BookingTime:   row.String("booking_time"),
		Status:        domain.Status(row.String("status")),
		TotalPrice:    row.Int("total_price"),
		TotalDuration: row.Int("total_duration"),
		CustomerName:  row.String("customer_name"),
		CustomerEmail: row.String("customer_email"),
		CustomerPhone: row.String("customer_phone"),
		Notes:         row.String("notes"),
		PaymentMethod: row.String("payment_method"),
		PaymentStatus: row.String("payment_status"),
		CreatedAt:     row.Time("created_at"),
		UpdatedAt:     row.Time("updated_at"),
		BarberName:    row.String("barber_name"),
		BarberImage:   row.String("barber_image"),
	}
	b.Fill()
	return b
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func uintArgs(ids []uint) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

func nullableID(id *uint) any {
	if id == nil {
		return nil
	}
	return *id
}

// Compile-time check
var _ domain.Repository = (*BookingSQLRepository)(nil)
