package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
)

func Health(c *gin.Context) {
	httpresp.WithMessage(c, "Barbershop API is running", gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
