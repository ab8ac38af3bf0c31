// File: database/repository/catalog/seed.go
package catalogRepo

import "tablescout/models"

// SeedRestaurants returns the reference catalog. IDs are stable slugs so that
// seeded reservations and reviews can refer to them.
func SeedRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			ID:          "bella-cucina",
			Name:        "Bella Cucina",
			Cuisine:     "Italian",
			PriceRange:  "$$",
			Rating:      4.7,
			ReviewCount: 342,
			Address:     "123 Main St, New York, NY 10001",
			Phone:       "(212) 555-1234",
			Website:     "https://bellacucina.com",
			Description: "Authentic Italian cuisine in an elegant setting, featuring handmade pasta and wood-fired pizzas.",
			Hours:       "Mon-Thu: 11:30am-10pm, Fri-Sat: 11:30am-11pm, Sun: 12pm-9pm",
			Images: []string{
				"https://images.pexels.com/photos/67468/pexels-photo-67468.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/1307698/pexels-photo-1307698.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/958545/pexels-photo-958545.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Featured:                true,
			Capacity:                80,
			ReservationSlotDuration: 90,
			OpeningTime:             "11:30",
			ClosingTime:             "22:00",
			Amenities:               []string{"Outdoor Seating", "Full Bar", "Wheelchair Accessible", "Vegetarian Options"},
			PopularDishes:           []string{"Truffle Pasta", "Margherita Pizza", "Tiramisu"},
		},
		{
			ID:          "sakura-sushi",
			Name:        "Sakura Sushi",
			Cuisine:     "Japanese",
			PriceRange:  "$$$",
			Rating:      4.9,
			ReviewCount: 521,
			Address:     "456 Park Ave, New York, NY 10022",
			Phone:       "(212) 555-5678",
			Website:     "https://sakurasushi.com",
			Description: "Premium sushi and Japanese specialties using the freshest ingredients flown in daily from Tokyo's fish market.",
			Hours:       "Mon-Sun: 12pm-11pm",
			Images: []string{
				"https://images.pexels.com/photos/2098085/pexels-photo-2098085.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/2098134/pexels-photo-2098134.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/8448323/pexels-photo-8448323.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Featured:                true,
			Capacity:                60,
			ReservationSlotDuration: 120,
			OpeningTime:             "12:00",
			ClosingTime:             "23:00",
			Amenities:               []string{"Sushi Bar", "Private Dining", "Sake Selection", "Vegan Options"},
			PopularDishes:           []string{"Omakase", "Dragon Roll", "Wagyu Tataki"},
		},
		{
			ID:          "le-petit-bistro",
			Name:        "Le Petit Bistro",
			Cuisine:     "French",
			PriceRange:  "$$$",
			Rating:      4.6,
			ReviewCount: 289,
			Address:     "789 Broadway, New York, NY 10003",
			Phone:       "(212) 555-9012",
			Website:     "https://lepetitbistro.com",
			Description: "Classic French bistro fare in a charming, romantic atmosphere reminiscent of Paris.",
			Hours:       "Tue-Sun: 5pm-10:30pm, Closed Mondays",
			Images: []string{
				"https://images.pexels.com/photos/941861/pexels-photo-941861.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/3201922/pexels-photo-3201922.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/2403391/pexels-photo-2403391.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Featured:                false,
			Capacity:                45,
			ReservationSlotDuration: 120,
			OpeningTime:             "17:00",
			ClosingTime:             "22:30",
			Amenities:               []string{"Wine List", "Romantic", "Dessert Menu", "Gluten-Free Options"},
			PopularDishes:           []string{"Coq au Vin", "Beef Bourguignon", "Crème Brûlée"},
		},
		{
			ID:          "taco-loco",
			Name:        "Taco Loco",
			Cuisine:     "Mexican",
			PriceRange:  "$",
			Rating:      4.5,
			ReviewCount: 612,
			Address:     "101 5th Ave, New York, NY 10003",
			Phone:       "(212) 555-3456",
			Website:     "https://tacoloco.com",
			Description: "Vibrant taqueria serving authentic Mexican street food and craft margaritas in a festive environment.",
			Hours:       "Mon-Sun: 11am-12am",
			Images: []string{
				"https://images.pexels.com/photos/2087748/pexels-photo-2087748.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/4958641/pexels-photo-4958641.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/3656498/pexels-photo-3656498.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Featured:                false,
			Capacity:                70,
			ReservationSlotDuration: 60,
			OpeningTime:             "11:00",
			ClosingTime:             "00:00",
			Amenities:               []string{"Happy Hour", "Takeout", "Tequila Selection", "Kid-Friendly"},
			PopularDishes:           []string{"Street Tacos", "Guacamole", "Churros"},
		},
		{
			ID:          "golden-dragon",
			Name:        "Golden Dragon",
			Cuisine:     "Chinese",
			PriceRange:  "$$",
			Rating:      4.4,
			ReviewCount: 378,
			Address:     "202 Canal St, New York, NY 10013",
			Phone:       "(212) 555-7890",
			Website:     "https://goldendragonny.com",
			Description: "Traditional Chinese cuisine with a modern twist, specializing in dim sum and Cantonese specialties.",
			Hours:       "Mon-Sun: 11:30am-10:30pm",
			Images: []string{
				"https://images.pexels.com/photos/5409010/pexels-photo-5409010.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/2347311/pexels-photo-2347311.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/3054690/pexels-photo-3054690.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Featured:                false,
			Capacity:                100,
			ReservationSlotDuration: 90,
			OpeningTime:             "11:30",
			ClosingTime:             "22:30",
			Amenities:               []string{"Dim Sum", "Large Parties", "Banquet Room", "Vegetarian Friendly"},
			PopularDishes:           []string{"Peking Duck", "Dim Sum Platter", "Kung Pao Chicken"},
		},
		{
			ID:          "the-steakhouse",
			Name:        "The Steakhouse",
			Cuisine:     "American",
			PriceRange:  "$$$$",
			Rating:      4.8,
			ReviewCount: 426,
			Address:     "303 West 51st St, New York, NY 10019",
			Phone:       "(212) 555-2345",
			Website:     "https://thesteakhouse.com",
			Description: "Premium steakhouse offering dry-aged USDA prime beef and an extensive wine list in an upscale environment.",
			Hours:       "Mon-Fri: 5pm-11pm, Sat-Sun: 4pm-11:30pm",
			Images: []string{
				"https://images.pexels.com/photos/6267/menu-restaurant-vintage-table.jpg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/1251196/pexels-photo-1251196.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/262978/pexels-photo-262978.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Featured:                true,
			Capacity:                75,
			ReservationSlotDuration: 120,
			OpeningTime:             "17:00",
			ClosingTime:             "23:00",
			Amenities:               []string{"Wine Cellar", "Private Dining", "Valet Parking", "Business Casual"},
			PopularDishes:           []string{"Tomahawk Ribeye", "Lobster Mac & Cheese", "New York Cheesecake"},
		},
	}
}

// SeedReviews returns the reference review data.
func SeedReviews() []models.Review {
	return []models.Review{
		{
			ID:           "rev-1",
			RestaurantID: "bella-cucina",
			UserName:     "John D.",
			Rating:       5,
			Date:         "2023-10-15",
			Content:      "The pasta was to die for! Authentic Italian flavors that transported me straight to Rome. Service was impeccable.",
		},
		{
			ID:           "rev-2",
			RestaurantID: "bella-cucina",
			UserName:     "Sarah M.",
			Rating:       4,
			Date:         "2023-09-22",
			Content:      "Great food and atmosphere. The wood-fired pizza had perfect char. Only complaint is that it got a bit noisy.",
		},
		{
			ID:           "rev-3",
			RestaurantID: "sakura-sushi",
			UserName:     "David L.",
			Rating:       5,
			Date:         "2023-10-05",
			Content:      "The omakase experience was exceptional. Chef Tanaka's attention to detail and quality of fish is unmatched in the city.",
		},
		{
			ID:           "rev-4",
			RestaurantID: "sakura-sushi",
			UserName:     "Michelle T.",
			Rating:       5,
			Date:         "2023-09-30",
			Content:      "Worth every penny! The freshest sushi I've had outside of Japan. Make sure to try the daily specials.",
		},
		{
			ID:           "rev-5",
			RestaurantID: "le-petit-bistro",
			UserName:     "Robert B.",
			Rating:       4,
			Date:         "2023-10-10",
			Content:      "Cozy atmosphere with excellent French cuisine. The coq au vin was rich and flavorful. Wine selection is impressive.",
		},
	}
}
