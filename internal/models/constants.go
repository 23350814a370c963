package models

const (
	PriceBudget    = "$"
	PriceModerate  = "$$"
	PriceExpensive = "$$$"
	PriceLuxury    = "$$$$"

	MetricReviewCount = "review count"
	MetricRating      = "rating"
	MetricPopularity  = "popularity"
	MetricUniform     = "uniform"

	// UnknownValue fills a missing city, country or cuisine at load time.
	UnknownValue = "unknown"

	AddressPlaceholder = "Address not available"
	PhonePlaceholder   = "N/A"

	WarningNoRestaurants = "no_restaurants"
	WarningShortage      = "shortage"

	TopicItineraryStops     = "itinerary_stops"
	TopicTripSummary        = "trip_summary"
	TopicVisualizationPoint = "visualization_points"
)

// PriceTiers lists the recognised price-range symbols, cheapest first.
var PriceTiers = []string{PriceBudget, PriceModerate, PriceExpensive, PriceLuxury}

// Metrics lists the selectable visualization metrics in display order.
var Metrics = []string{MetricReviewCount, MetricRating, MetricPopularity, MetricUniform}
