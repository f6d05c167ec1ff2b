package review

import (
	"context"
	"errors"
	"testing"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/review"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/testutil"
)

type fixture struct {
	db     testutil.TestDB
	repo   *repository.ReviewSQLRepository
	events *testutil.Recorder
	barber models.Barber
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	tdb := testutil.Open(t)
	return fixture{
		db:     tdb,
		repo:   repository.NewReviewSQLRepository(tdb.X),
		events: &testutil.Recorder{},
		barber: testutil.SeedBarber(t, tdb.Gorm, "Joko"),
	}
}

func (f fixture) reloadBarber(t *testing.T) models.Barber {
	t.Helper()
	var b models.Barber
	if err := f.db.Gorm.First(&b, f.barber.ID).Error; err != nil {
		t.Fatalf("reload barber: %v", err)
	}
	return b
}

func (f fixture) seedBooking(t *testing.T) uint {
	t.Helper()
	b := models.Booking{
		BarberID:    f.barber.ID,
		BookingDate: "2025-01-10",
		BookingTime: "10:00",
		Status:      "completed",
	}
	if err := f.db.Gorm.Create(&b).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return b.ID
}

func TestBarberRatingTracksReviews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	create := NewCreateReview(f.repo, f.events)

	var ids []uint
	for _, rating := range []int{5, 4, 5} {
		rv, err := create.Execute(ctx, domain.CreateInput{BarberID: f.barber.ID, Rating: rating, CustomerName: "Budi"})
		if err != nil {
			t.Fatalf("create rating %d: %v", rating, err)
		}
		ids = append(ids, rv.ID)
	}

	b := f.reloadBarber(t)
	if b.Rating != 4.7 || b.ReviewsCount != 3 {
		t.Fatalf("barber rating = %v (%d), want 4.7 (3)", b.Rating, b.ReviewsCount)
	}

	if err := NewDeleteReview(f.repo).Execute(ctx, ids[0]); err != nil {
		t.Fatalf("delete: %v", err)
	}
	b = f.reloadBarber(t)
	if b.Rating != 4.5 || b.ReviewsCount != 2 {
		t.Fatalf("after delete rating = %v (%d), want 4.5 (2)", b.Rating, b.ReviewsCount)
	}

	for _, id := range ids[1:] {
		if err := NewDeleteReview(f.repo).Execute(ctx, id); err != nil {
			t.Fatalf("delete: %v", err)
		}
	}
	b = f.reloadBarber(t)
	if b.Rating != 0 || b.ReviewsCount != 0 {
		t.Fatalf("after deleting all rating = %v (%d), want 0 (0)", b.Rating, b.ReviewsCount)
	}
}

func TestCreateReviewRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rv, err := NewCreateReview(f.repo, f.events).Execute(ctx, domain.CreateInput{
		BarberID: f.barber.ID,
		Rating:   4,
		Comment:  "Mantap",
		Services: []string{"Haircut", "Shave"},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if rv.CustomerName != "Anonymous" {
		t.Fatalf("customer_name = %q, want Anonymous", rv.CustomerName)
	}
	if len(rv.Services) != 2 || rv.Services[0] != "Haircut" || rv.Services[1] != "Shave" {
		t.Fatalf("services = %v", rv.Services)
	}
	if rv.Barber == nil || rv.Barber.Name != "Joko" {
		t.Fatalf("barber = %+v", rv.Barber)
	}

	if titles := f.events.Titles(); len(titles) != 1 || titles[0] != "Review Baru" {
		t.Fatalf("events = %v", titles)
	}
	if msg := f.events.Events[0].Message; msg != "Anonymous memberikan rating 4 bintang untuk Joko" {
		t.Fatalf("event message = %q", msg)
	}
}

func TestCreateReviewRejectsSecondReviewForBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bookingID := f.seedBooking(t)
	create := NewCreateReview(f.repo, f.events)

	in := domain.CreateInput{BookingID: &bookingID, BarberID: f.barber.ID, Rating: 5}
	if _, err := create.Execute(ctx, in); err != nil {
		t.Fatalf("first review: %v", err)
	}
	if _, err := create.Execute(ctx, in); !errors.Is(err, domain.ErrAlreadyReviewed) {
		t.Fatalf("second review error = %v, want ErrAlreadyReviewed", err)
	}

	has, err := NewListReviews(f.repo).HasReview(ctx, bookingID)
	if err != nil || !has {
		t.Fatalf("HasReview() = %v, %v", has, err)
	}
	if b := f.reloadBarber(t); b.ReviewsCount != 1 {
		t.Fatalf("reviews_count = %d, want 1", b.ReviewsCount)
	}
}

func TestCreateReviewValidation(t *testing.T) {
	f := newFixture(t)
	create := NewCreateReview(f.repo, f.events)

	if _, err := create.Execute(context.Background(), domain.CreateInput{BarberID: f.barber.ID, Rating: 6}); err == nil {
		t.Fatalf("rating 6 accepted")
	}
	if _, err := create.Execute(context.Background(), domain.CreateInput{BarberID: 999, Rating: 5}); !errors.Is(err, domain.ErrNoBarber) {
		t.Fatalf("unknown barber error = %v", err)
	}
	if len(f.events.Events) != 0 {
		t.Fatalf("events published on failure: %v", f.events.Titles())
	}
}

func TestDeleteMissingReview(t *testing.T) {
	f := newFixture(t)
	if err := NewDeleteReview(f.repo).Execute(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Execute() error = %v, want ErrNotFound", err)
	}
}

func TestListings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	other := testutil.SeedBarber(t, f.db.Gorm, "Andi")
	create := NewCreateReview(f.repo, f.events)

	for _, in := range []domain.CreateInput{
		{BarberID: f.barber.ID, Rating: 5},
		{BarberID: f.barber.ID, Rating: 3},
		{BarberID: other.ID, Rating: 4},
		{BarberID: other.ID, Rating: 4},
		{BarberID: other.ID, Rating: 5},
	} {
		if _, err := create.Execute(ctx, in); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list := NewListReviews(f.repo)

	all, err := list.All(ctx, domain.Filter{})
	if err != nil || len(all) != 5 {
		t.Fatalf("All() = %d, %v", len(all), err)
	}

	limited, err := list.All(ctx, domain.Filter{BarberID: other.ID, Limit: 2})
	if err != nil || len(limited) != 2 {
		t.Fatalf("All(barber, limit 2) = %d, %v", len(limited), err)
	}
	for _, rv := range limited {
		if rv.BarberID != other.ID {
			t.Fatalf("filter leaked barber %d", rv.BarberID)
		}
	}

	top, err := list.Top(ctx)
	if err != nil || len(top) != domain.TopLimit {
		t.Fatalf("Top() = %d, %v", len(top), err)
	}
	for _, rv := range top {
		if rv.Rating < domain.TopMinRating || rv.BarberName == "" {
			t.Fatalf("top review = %+v", rv)
		}
	}

	per, err := list.ForBarber(ctx, f.barber.ID)
	if err != nil {
		t.Fatalf("ForBarber() error = %v", err)
	}
	if per.TotalReviews != 2 || per.AverageRating != 4 || len(per.Reviews) != 2 {
		t.Fatalf("ForBarber() = %+v", per)
	}

	empty, err := list.ForBarber(ctx, 999)
	if err != nil || empty.TotalReviews != 0 || empty.AverageRating != 0 || len(empty.Reviews) != 0 {
		t.Fatalf("ForBarber(unknown) = %+v, %v", empty, err)
	}
}
