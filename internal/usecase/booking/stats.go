package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

const statsWindowDays = 7

type BookingStats struct {
	repo     domain.Repository
	timezone string
	now      func() time.Time
}

func NewBookingStats(repo domain.Repository, tz string) *BookingStats {
	return &BookingStats{
		repo:     repo,
		timezone: tz,
		now:      time.Now,
	}
}

// Execute reports counters for "today" in the business timezone and a
// zero-filled series covering today and the six days before it.
func (uc *BookingStats) Execute(ctx context.Context) (*domain.Stats, error) {
	today := uc.now().In(timezone.Location(uc.timezone))
	todayStr := today.Format(domain.DateLayout)

	days := make([]string, statsWindowDays)
	for i := range days {
		days[i] = today.AddDate(0, 0, i-(statsWindowDays-1)).Format(domain.DateLayout)
	}

	summary, err := uc.repo.Summary(ctx, todayStr)
	if err != nil {
		return nil, err
	}

	daily, err := uc.repo.Daily(ctx, days[0], todayStr)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]domain.DayStat, len(daily))
	for _, d := range daily {
		byDate[d.Date] = d
	}

	weekly := make([]domain.DayStat, 0, statsWindowDays)
	for _, day := range days {
		stat, ok := byDate[day]
		if !ok {
			stat = domain.DayStat{Date: day}
		}
		weekly = append(weekly, stat)
	}

	return &domain.Stats{Summary: summary, WeeklyStats: weekly}, nil
}
