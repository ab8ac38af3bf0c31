// File: handlers/restaurant.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogRepo "tablescout/database/repository/catalog"
)

// RestaurantHandler serves the catalog browse and detail endpoints.
type RestaurantHandler struct {
	Catalog catalogRepo.CatalogRepository
	Logger  *zap.Logger
}

func NewRestaurantHandler(catalog catalogRepo.CatalogRepository, logger *zap.Logger) *RestaurantHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RestaurantHandler{Catalog: catalog, Logger: logger}
}

// ListRestaurantsHandler returns the catalog, narrowed and ordered by query
// parameters: search, cuisine, price, amenity (repeatable), sort, featured.
func (h *RestaurantHandler) ListRestaurantsHandler(c *gin.Context) {
	q := catalogRepo.Query{
		Search:       c.Query("search"),
		Cuisines:     splitParam(c.QueryArray("cuisine")),
		PriceRanges:  splitParam(c.QueryArray("price")),
		Amenities:    splitParam(c.QueryArray("amenity")),
		Sort:         c.DefaultQuery("sort", catalogRepo.SortRating),
		FeaturedOnly: c.Query("featured") == "true",
	}

	restaurants, err := h.Catalog.Search(c.Request.Context(), q)
	if err != nil {
		h.Logger.Error("catalog search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// GetRestaurantHandler returns a single catalog entry.
func (h *RestaurantHandler) GetRestaurantHandler(c *gin.Context) {
	id := c.Param("id")
	restaurant, err := h.Catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		h.Logger.Error("catalog lookup failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurant"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// ListReviewsHandler returns the reviews for a catalog entry.
func (h *RestaurantHandler) ListReviewsHandler(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.Catalog.GetByID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}

	reviews, err := h.Catalog.ListReviews(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("review listing failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// splitParam accepts both repeated parameters and comma-separated values.
func splitParam(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
