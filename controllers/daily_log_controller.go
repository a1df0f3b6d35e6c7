package controllers

import (
	"net/http"

	"github.com/Techlead-ANKAN/WeightTracker/services"

	"github.com/gin-gonic/gin"
)

type DailyLogController struct {
	Svc *services.DailyLogService
}

func NewDailyLogController(svc *services.DailyLogService) *DailyLogController {
	return &DailyLogController{Svc: svc}
}

// GET /api/daily-log/:date
func (h *DailyLogController) GetByDate(c *gin.Context) {
	log, err := h.Svc.GetByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// GET /api/daily-log/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *DailyLogController) GetByRange(c *gin.Context) {
	logs, err := h.Svc.GetByRange(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// POST /api/daily-log  {date, breakfast, lunch, dinner}
func (h *DailyLogController) SaveLog(c *gin.Context) {
	var body struct {
		Date      string   `json:"date"`
		Breakfast []string `json:"breakfast"`
		Lunch     []string `json:"lunch"`
		Dinner    []string `json:"dinner"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	log, err := h.Svc.Save(c.Request.Context(), body.Date, body.Breakfast, body.Lunch, body.Dinner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}
