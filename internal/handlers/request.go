package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
)

var (
	errInvalidID   = httperr.ErrValidation("invalid_id", "ID tidak valid")
	errInvalidBody = httperr.ErrValidation("invalid_request", "Data tidak valid")
)

func paramID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// queryUint returns 0 when the parameter is missing or malformed.
func queryUint(c *gin.Context, name string) uint {
	n, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return errInvalidBody
	}
	return nil
}

func actorFrom(c *gin.Context) domain.Actor {
	id, _ := middleware.CurrentUserID(c)
	return domain.Actor{UserID: id, Admin: middleware.IsAdmin(c)}
}
