// Package factories generates synthetic European restaurant catalogs for
// seeding stores and exercising the planner without the real dataset.
package factories

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/chrisdamba/foodroadtrip/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

// City is a seeding anchor: restaurants are scattered around Center.
type City struct {
	Name     string
	Country  string
	Center   models.Location
	Cuisines []string
}

var EuropeanCities = []City{
	{"Paris", "France", models.Location{Lat: 48.8566, Lon: 2.3522}, []string{"French", "European", "Cafe", "Wine Bar"}},
	{"Lyon", "France", models.Location{Lat: 45.7640, Lon: 4.8357}, []string{"French", "European", "Bistro"}},
	{"Rome", "Italy", models.Location{Lat: 41.9028, Lon: 12.4964}, []string{"Italian", "Pizza", "Mediterranean"}},
	{"Milan", "Italy", models.Location{Lat: 45.4642, Lon: 9.1900}, []string{"Italian", "Pizza", "Seafood"}},
	{"Barcelona", "Spain", models.Location{Lat: 41.3874, Lon: 2.1686}, []string{"Spanish", "Tapas", "Mediterranean", "Seafood"}},
	{"Madrid", "Spain", models.Location{Lat: 40.4168, Lon: -3.7038}, []string{"Spanish", "Tapas", "European"}},
	{"Lisbon", "Portugal", models.Location{Lat: 38.7223, Lon: -9.1393}, []string{"Portuguese", "Seafood", "Mediterranean"}},
	{"Berlin", "Germany", models.Location{Lat: 52.5200, Lon: 13.4050}, []string{"German", "European", "Vietnamese", "Street Food"}},
	{"Munich", "Germany", models.Location{Lat: 48.1351, Lon: 11.5820}, []string{"German", "Bavarian", "Pub"}},
	{"Amsterdam", "Netherlands", models.Location{Lat: 52.3676, Lon: 4.9041}, []string{"Dutch", "Cafe", "Indonesian"}},
	{"Vienna", "Austria", models.Location{Lat: 48.2082, Lon: 16.3738}, []string{"Austrian", "Cafe", "European"}},
	{"Prague", "Czech Republic", models.Location{Lat: 50.0755, Lon: 14.4378}, []string{"Czech", "Pub", "European"}},
	{"Athens", "Greece", models.Location{Lat: 37.9838, Lon: 23.7275}, []string{"Greek", "Mediterranean", "Seafood"}},
	{"London", "United Kingdom", models.Location{Lat: 51.5074, Lon: -0.1278}, []string{"British", "Indian", "Pub", "Fast Food"}},
	{"Copenhagen", "Denmark", models.Location{Lat: 55.6761, Lon: 12.5683}, []string{"Danish", "Scandinavian", "Cafe"}},
}

// RestaurantFactory creates restaurants with unique names from a seeded
// random source, so the same seed yields the same catalog apart from ids.
type RestaurantFactory struct {
	fake          faker.Faker
	rng           *rand.Rand
	UrbanRadiusKm float64
	// MissingRatio is the share of restaurants without address, phone or price.
	MissingRatio float64
	nameCache    sync.Map
}

func NewRestaurantFactory(seed int64) *RestaurantFactory {
	return &RestaurantFactory{
		fake:          faker.NewWithSeed(rand.NewSource(seed)),
		rng:           rand.New(rand.NewSource(seed)),
		UrbanRadiusKm: 6,
		MissingRatio:  0.05,
	}
}

func (rf *RestaurantFactory) CreateRestaurant(city City) models.Restaurant {
	latRange := rf.UrbanRadiusKm / 111.0
	lonRange := latRange / math.Cos(city.Center.Lat*math.Pi/180.0)

	lat := city.Center.Lat + (rf.rng.Float64()*2-1)*latRange
	lon := city.Center.Lon + (rf.rng.Float64()*2-1)*lonRange

	r := models.Restaurant{
		ID:           cuid.New(),
		Name:         rf.createUniqueName(rf.fake.Company().Name()),
		City:         city.Name,
		Country:      city.Country,
		Cuisine:      rf.generateCuisines(city),
		Rating:       rf.generateRating(),
		ReviewsCount: rf.generateReviews(),
		PriceRange:   models.PriceTiers[rf.rng.Intn(len(models.PriceTiers))],
		Location:     models.Location{Lat: lat, Lon: lon},
		Address:      fmt.Sprintf("%s, %s", rf.fake.Address().StreetAddress(), city.Name),
		Phone:        rf.fake.Phone().Number(),
	}
	if rf.rng.Float64() < rf.MissingRatio {
		r.Address = ""
	}
	if rf.rng.Float64() < rf.MissingRatio {
		r.Phone = ""
	}
	if rf.rng.Float64() < rf.MissingRatio {
		r.PriceRange = ""
	}
	return r
}

// Generate spreads count restaurants over cities in round-robin order.
// With no cities it uses EuropeanCities.
func (rf *RestaurantFactory) Generate(count int, cities []City) []models.Restaurant {
	if len(cities) == 0 {
		cities = EuropeanCities
	}
	rows := make([]models.Restaurant, 0, count)
	for i := 0; i < count; i++ {
		rows = append(rows, rf.CreateRestaurant(cities[i%len(cities)]))
	}
	return rows
}

// ratings cluster between 3.0 and 5.0 with one decimal, like review sites
func (rf *RestaurantFactory) generateRating() float64 {
	r := 4.2 + rf.rng.NormFloat64()*0.45
	r = math.Max(3.0, math.Min(5.0, r))
	return math.Round(r*10) / 10
}

// review counts are long-tailed: most places have a few hundred, some thousands
func (rf *RestaurantFactory) generateReviews() int {
	return int(rf.rng.ExpFloat64() * 350)
}

// generateCuisines returns a comma-joined list led by one of the city's
// cuisines.
func (rf *RestaurantFactory) generateCuisines(city City) string {
	count := rf.rng.Intn(3) + 1
	picked := make([]string, 0, count)
	seen := make(map[string]bool)
	for len(picked) < count {
		c := city.Cuisines[rf.rng.Intn(len(city.Cuisines))]
		if seen[c] {
			if len(seen) == len(city.Cuisines) {
				break
			}
			continue
		}
		seen[c] = true
		picked = append(picked, c)
	}
	return strings.Join(picked, ", ")
}

func (rf *RestaurantFactory) createUniqueName(base string) string {
	name := base
	counter := 2
	for {
		if _, exists := rf.nameCache.LoadOrStore(name, true); !exists {
			return name
		}
		name = fmt.Sprintf("%s %d", base, counter)
		counter++
	}
}

// FindCity looks up a seeding city by name, case-insensitively.
func FindCity(name string) (City, bool) {
	for _, c := range EuropeanCities {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return City{}, false
}
