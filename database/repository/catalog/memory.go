// File: database/repository/catalog/memory.go
package catalogRepo

import (
	"context"
	"sort"
	"strings"

	"tablescout/models"
)

// memoryCatalogRepo serves the fixed restaurant catalog from process memory.
// The dataset is reference data: reads hand out copies and there are no
// mutating operations.
type memoryCatalogRepo struct {
	restaurants []models.Restaurant
	reviews     []models.Review
}

// NewMemoryCatalogRepo constructs a catalog repository over the given dataset.
func NewMemoryCatalogRepo(restaurants []models.Restaurant, reviews []models.Review) CatalogRepository {
	return &memoryCatalogRepo{
		restaurants: restaurants,
		reviews:     reviews,
	}
}

// NewSeededCatalogRepo constructs a catalog repository over the built-in
// reference dataset.
func NewSeededCatalogRepo() CatalogRepository {
	return NewMemoryCatalogRepo(SeedRestaurants(), SeedReviews())
}

func (r *memoryCatalogRepo) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	for i := range r.restaurants {
		if r.restaurants[i].ID == id {
			rest := r.restaurants[i]
			return &rest, nil
		}
	}
	return nil, ErrRestaurantNotFound
}

func (r *memoryCatalogRepo) List(ctx context.Context) ([]models.Restaurant, error) {
	out := make([]models.Restaurant, len(r.restaurants))
	copy(out, r.restaurants)
	return out, nil
}

func (r *memoryCatalogRepo) Search(ctx context.Context, q Query) ([]models.Restaurant, error) {
	var out []models.Restaurant
	for _, rest := range r.restaurants {
		if q.FeaturedOnly && !rest.Featured {
			continue
		}
		if q.Search != "" && !matchesSearch(rest, q.Search) {
			continue
		}
		if len(q.Cuisines) > 0 && !containsFold(q.Cuisines, rest.Cuisine) {
			continue
		}
		if len(q.PriceRanges) > 0 && !contains(q.PriceRanges, rest.PriceRange) {
			continue
		}
		if !hasAllAmenities(rest.Amenities, q.Amenities) {
			continue
		}
		out = append(out, rest)
	}

	sortRestaurants(out, q.Sort)
	return out, nil
}

func (r *memoryCatalogRepo) ListReviews(ctx context.Context, restaurantID string) ([]models.Review, error) {
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.RestaurantID == restaurantID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func matchesSearch(rest models.Restaurant, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(rest.Name), q) ||
		strings.Contains(strings.ToLower(rest.Cuisine), q) ||
		strings.Contains(strings.ToLower(rest.Address), q)
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

func hasAllAmenities(have, want []string) bool {
	for _, w := range want {
		if !containsFold(have, w) {
			return false
		}
	}
	return true
}

func sortRestaurants(list []models.Restaurant, by string) {
	switch by {
	case SortReviews:
		sort.SliceStable(list, func(i, j int) bool { return list[i].ReviewCount > list[j].ReviewCount })
	case SortPriceAsc:
		sort.SliceStable(list, func(i, j int) bool { return len(list[i].PriceRange) < len(list[j].PriceRange) })
	case SortPriceDesc:
		sort.SliceStable(list, func(i, j int) bool { return len(list[i].PriceRange) > len(list[j].PriceRange) })
	default:
		// rating is the default ordering
		sort.SliceStable(list, func(i, j int) bool { return list[i].Rating > list[j].Rating })
	}
}
