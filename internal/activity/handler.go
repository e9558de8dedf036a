package activity

import (
	"errors"
	"net/http"
	"strconv"

	custom_error "enstracker/pkg/errors"
	"enstracker/pkg/security"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	log *Log
}

func NewHandler(log *Log) *Handler {
	return &Handler{log: log}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())
	{
		protectedRoutes.GET("/activity", h.RecentActivity)
	}
}

func (h *Handler) RecentActivity(c *gin.Context) {
	limit := -1
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	entries, err := h.log.Recent(limit)
	if err != nil {
		var corrupt *custom_error.CorruptStateError
		if errors.As(err, &corrupt) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Stored data is corrupt", "details": corrupt.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to read activity log", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
