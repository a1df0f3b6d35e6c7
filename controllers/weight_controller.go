package controllers

import (
	"net/http"

	"github.com/Techlead-ANKAN/WeightTracker/services"

	"github.com/gin-gonic/gin"
)

type WeightController struct {
	Svc *services.WeightService
}

func NewWeightController(svc *services.WeightService) *WeightController {
	return &WeightController{Svc: svc}
}

// GET /api/weight
func (h *WeightController) ListWeights(c *gin.Context) {
	logs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// POST /api/weight  {date, weight}
func (h *WeightController) SaveWeight(c *gin.Context) {
	var body struct {
		Date   string   `json:"date"`
		Weight *float64 `json:"weight"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	log, err := h.Svc.Save(c.Request.Context(), body.Date, body.Weight)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}
