package catalogRepo

import (
	"context"
	"errors"
	"testing"

	"tablescout/models"
)

func TestGetByID(t *testing.T) {
	repo := NewSeededCatalogRepo()

	rest, err := repo.GetByID(context.Background(), "sakura-sushi")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if rest.Name != "Sakura Sushi" {
		t.Errorf("name = %q, want Sakura Sushi", rest.Name)
	}

	_, err = repo.GetByID(context.Background(), "no-such-place")
	if !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("err = %v, want ErrRestaurantNotFound", err)
	}
}

func TestListReturnsFullCatalog(t *testing.T) {
	repo := NewSeededCatalogRepo()

	all, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("got %d restaurants, want the 6 seeded entries", len(all))
	}
}

func TestSearchFilters(t *testing.T) {
	repo := NewSeededCatalogRepo()
	ctx := context.Background()

	tests := []struct {
		name    string
		query   Query
		wantIDs []string
	}{
		{
			name:    "byName",
			query:   Query{Search: "sakura"},
			wantIDs: []string{"sakura-sushi"},
		},
		{
			name:    "byCuisineCaseInsensitive",
			query:   Query{Cuisines: []string{"italian"}},
			wantIDs: []string{"bella-cucina"},
		},
		{
			name:    "byPriceRange",
			query:   Query{PriceRanges: []string{"$"}},
			wantIDs: []string{"taco-loco"},
		},
		{
			name:  "noMatch",
			query: Query{Search: "zanzibar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.query)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d restaurants, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("result[%d] = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestSearchAmenitiesRequireAll(t *testing.T) {
	repo := NewMemoryCatalogRepo([]models.Restaurant{
		{ID: "a", Amenities: []string{"WiFi", "Parking"}},
		{ID: "b", Amenities: []string{"WiFi"}},
	}, nil)

	got, err := repo.Search(context.Background(), Query{Amenities: []string{"wifi", "parking"}})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("got %v, want only restaurant a", got)
	}
}

func TestSearchSortOrders(t *testing.T) {
	repo := NewMemoryCatalogRepo([]models.Restaurant{
		{ID: "cheap", PriceRange: "$", Rating: 4.0, ReviewCount: 50},
		{ID: "mid", PriceRange: "$$", Rating: 4.8, ReviewCount: 10},
		{ID: "fancy", PriceRange: "$$$$", Rating: 4.5, ReviewCount: 200},
	}, nil)
	ctx := context.Background()

	tests := []struct {
		sort  string
		first string
	}{
		{SortRating, "mid"},
		{SortReviews, "fancy"},
		{SortPriceAsc, "cheap"},
		{SortPriceDesc, "fancy"},
		{"", "mid"}, // rating by default
	}
	for _, tt := range tests {
		got, err := repo.Search(ctx, Query{Sort: tt.sort})
		if err != nil {
			t.Fatalf("Search(sort=%q): %v", tt.sort, err)
		}
		if got[0].ID != tt.first {
			t.Errorf("sort %q put %q first, want %q", tt.sort, got[0].ID, tt.first)
		}
	}
}

func TestSearchFeaturedOnly(t *testing.T) {
	repo := NewSeededCatalogRepo()

	got, err := repo.Search(context.Background(), Query{FeaturedOnly: true})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected featured restaurants in the seed data")
	}
	for _, rest := range got {
		if !rest.Featured {
			t.Errorf("%s is not featured", rest.ID)
		}
	}
}

func TestListReviews(t *testing.T) {
	repo := NewSeededCatalogRepo()

	reviews, err := repo.ListReviews(context.Background(), "bella-cucina")
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	if len(reviews) == 0 {
		t.Fatal("expected seeded reviews for bella-cucina")
	}
	for _, rv := range reviews {
		if rv.RestaurantID != "bella-cucina" {
			t.Errorf("review %s belongs to %s", rv.ID, rv.RestaurantID)
		}
	}
}
