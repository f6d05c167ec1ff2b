package testutil

import (
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func SeedBarber(t *testing.T, gdb *gorm.DB, name string) models.Barber {
	t.Helper()
	b := models.Barber{
		Name:          name,
		Role:          models.DefaultBarberRole,
		Image:         "/img/" + name + ".jpg",
		IsAvailable:   true,
		WorkStartTime: models.DefaultWorkStart,
		WorkEndTime:   models.DefaultWorkEnd,
		Specialties:   models.DelimitedList{"Fade"},
	}
	if err := gdb.Create(&b).Error; err != nil {
		t.Fatalf("seed barber: %v", err)
	}
	return b
}

func SeedService(t *testing.T, gdb *gorm.DB, name string, price, duration int) models.Service {
	t.Helper()
	s := models.Service{
		Name:     name,
		Price:    price,
		Duration: duration,
		Category: models.DefaultServiceCategory,
		IsActive: true,
	}
	if err := gdb.Create(&s).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return s
}

func SeedUser(t *testing.T, gdb *gorm.DB, email, role string) models.User {
	t.Helper()
	u := models.User{Name: email, Email: email, Role: role}
	if err := gdb.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}
