package controllers

import (
	"net/http"

	"github.com/Techlead-ANKAN/WeightTracker/services"

	"github.com/gin-gonic/gin"
)

type DevController struct {
	Seed *services.SeedService
}

func NewDevController(seed *services.SeedService) *DevController {
	return &DevController{Seed: seed}
}

// POST /api/dev/seed-foods
// Upserts the built-in food master list; safe to run repeatedly.
func (d *DevController) SeedFoods(c *gin.Context) {
	n, err := d.Seed.SeedFoods(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "seeded": n})
}
