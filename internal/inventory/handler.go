package inventory

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"enstracker/internal/activity"
	"enstracker/internal/query"
	custom_error "enstracker/pkg/errors"
	"enstracker/pkg/metadata"
	"enstracker/pkg/models"
	"enstracker/pkg/security"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo     *Repository
	activity *activity.Log
}

func NewHandler(repo *Repository, activityLog *activity.Log) *Handler {
	return &Handler{repo: repo, activity: activityLog}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())
	{
		protectedRoutes.GET("/assets", h.ListAssets)
		protectedRoutes.GET("/assets/export", h.ExportCSV)
		protectedRoutes.GET("/assets/:tag", h.GetAsset)
		protectedRoutes.POST("/assets", security.RequireWriter(), h.CreateAsset)
		protectedRoutes.PUT("/assets/:tag", security.RequireWriter(), h.UpdateAsset)
		protectedRoutes.DELETE("/assets/:tag", security.RequireWriter(), h.RemoveAsset)
	}
}

// ListAssets runs the query pipeline over the full collection.
func (h *Handler) ListAssets(c *gin.Context) {
	assets, err := h.repo.All()
	if err != nil {
		respondRepoError(c, err)
		return
	}

	q := query.Query{
		Search:       c.Query("search"),
		StatusFilter: c.DefaultQuery("status", metadata.FilterAll),
		Page: query.PageSpec{
			Number: intQuery(c, "page", 1),
			Size:   intQuery(c, "limit", query.DefaultPageSize),
		},
	}

	if field := c.Query("sort"); field != "" {
		q.Sort = &query.SortSpec{
			Field:     field,
			Ascending: c.DefaultQuery("order", "asc") != "desc",
		}
	}

	c.JSON(http.StatusOK, query.Execute(assets, q))
}

func (h *Handler) GetAsset(c *gin.Context) {
	asset, err := h.repo.FindByTag(c.Param("tag"))
	if err != nil {
		respondRepoError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

type createAssetRequest struct {
	Tag    string `json:"tag" binding:"required"`
	Type   string `json:"type"`
	Model  string `json:"model"`
	User   string `json:"user"`
	Status string `json:"status"`
}

func (h *Handler) CreateAsset(c *gin.Context) {
	var req createAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if _, err := h.repo.FindByTag(req.Tag); err == nil {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Asset tag already registered"})
		return
	}

	asset, err := h.repo.Upsert(req.Tag, models.AssetPatch{
		Type:   &req.Type,
		Model:  &req.Model,
		User:   &req.User,
		Status: &req.Status,
	})
	if err != nil {
		respondRepoError(c, err)
		return
	}

	h.logActivity("Asset Update", "Updated "+asset.Tag, c)

	c.JSON(http.StatusCreated, asset)
}

func (h *Handler) UpdateAsset(c *gin.Context) {
	tag := c.Param("tag")

	var patch models.AssetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	asset, err := h.repo.Upsert(tag, patch)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	h.logActivity("Asset Update", "Updated "+asset.Tag, c)

	c.JSON(http.StatusOK, asset)
}

func (h *Handler) RemoveAsset(c *gin.Context) {
	tag := c.Param("tag")

	if err := h.repo.Remove(tag); err != nil {
		respondRepoError(c, err)
		return
	}

	h.logActivity("Asset Removal", "Removed "+tag, c)

	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}

// ExportCSV streams the whole collection as CSV.
func (h *Handler) ExportCSV(c *gin.Context) {
	assets, err := h.repo.All()
	if err != nil {
		respondRepoError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="ENS_Inventory.csv"`)
	if err := WriteCSV(c.Writer, assets); err != nil {
		log.Printf("Failed to stream CSV export: %v", err)
	}
}

func (h *Handler) logActivity(entryType, details string, c *gin.Context) {
	if _, err := h.activity.Append(entryType, details, security.ActorName(c)); err != nil {
		log.Printf("Unable to create activity entry for %q: %v", details, err)
	}
}

func respondRepoError(c *gin.Context, err error) {
	var validation *custom_error.ValidationError
	var notFound *custom_error.NotFoundError
	var corrupt *custom_error.CorruptStateError

	switch {
	case errors.As(err, &validation):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &notFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &corrupt):
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Stored data is corrupt", "details": corrupt.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to access inventory", "details": err.Error()})
	}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return value
}
