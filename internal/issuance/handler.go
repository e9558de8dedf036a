package issuance

import (
	"errors"
	"net/http"

	custom_error "enstracker/pkg/errors"
	"enstracker/pkg/security"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())
	{
		protectedRoutes.POST("/issuance", security.RequireWriter(), h.CompleteIssuance)
	}
}

type issuanceRequest struct {
	Tag       string `json:"tag" binding:"required"`
	Recipient string `json:"recipient" binding:"required"`
}

func (h *Handler) CompleteIssuance(c *gin.Context) {
	var req issuanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	asset, err := h.service.Issue(req.Tag, req.Recipient, security.ActorName(c))
	if err != nil {
		var validation *custom_error.ValidationError
		if errors.As(err, &validation) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete issuance", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, asset)
}
