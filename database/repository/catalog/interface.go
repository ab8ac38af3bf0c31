// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"
	"errors"

	"tablescout/models"
)

// ErrRestaurantNotFound is returned when no catalog entry has the given ID.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// Query narrows and orders a catalog listing. Zero value means "everything,
// sorted by rating".
type Query struct {
	Search       string   // free text over name, cuisine and address
	Cuisines     []string // any-of
	PriceRanges  []string // any-of
	Amenities    []string // all-of
	Sort         string   // "rating", "reviews", "priceAsc" or "priceDesc"
	FeaturedOnly bool
}

// Sort options accepted by Query.Sort.
const (
	SortRating    = "rating"
	SortReviews   = "reviews"
	SortPriceAsc  = "priceAsc"
	SortPriceDesc = "priceDesc"
)

type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	List(ctx context.Context) ([]models.Restaurant, error)
	Search(ctx context.Context, q Query) ([]models.Restaurant, error)
	ListReviews(ctx context.Context, restaurantID string) ([]models.Review, error)
}
