// Package dashboard aggregates inventory counts and recent activity for the
// landing view.
package dashboard

import (
	"net/http"

	"enstracker/internal/activity"
	"enstracker/internal/inventory"
	"enstracker/pkg/metadata"
	"enstracker/pkg/models"
	"enstracker/pkg/security"

	"github.com/gin-gonic/gin"
)

const recentEntries = 5

type Handler struct {
	inventory *inventory.Repository
	activity  *activity.Log
}

func NewHandler(inv *inventory.Repository, log *activity.Log) *Handler {
	return &Handler{inventory: inv, activity: log}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())
	{
		protectedRoutes.GET("/dashboard", h.Summary)
	}
}

type summary struct {
	TotalAssets    int                    `json:"totalAssets"`
	Available      int                    `json:"available"`
	ByType         map[string]int         `json:"byType"`
	ByStatus       map[string]int         `json:"byStatus"`
	RecentActivity []models.ActivityEntry `json:"recentActivity"`
}

func (h *Handler) Summary(c *gin.Context) {
	assets, err := h.inventory.All()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to read inventory", "details": err.Error()})
		return
	}

	entries, err := h.activity.Recent(recentEntries)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to read activity log", "details": err.Error()})
		return
	}

	s := summary{
		ByType:         map[string]int{},
		ByStatus:       map[string]int{},
		RecentActivity: entries,
	}
	for _, a := range assets {
		s.TotalAssets++
		if a.Status == metadata.StatusAvailable.String() {
			s.Available++
		}
		s.ByType[a.Type]++
		// Free-form statuses bucket under Other; the breakdown stays a
		// fixed, chartable set.
		s.ByStatus[metadata.NewStatus(a.Status).String()]++
	}

	c.JSON(http.StatusOK, s)
}
