package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/chrisdamba/foodroadtrip/internal/models"
	"github.com/lucsky/cuid"
)

// PublishItinerary writes one itinerary_stops event per stop followed by a
// single trip_summary event. It returns the run id shared by all of them.
func PublishItinerary(dest Destination, result *models.SelectionResult, at time.Time) (string, error) {
	if result == nil {
		return "", fmt.Errorf("no itinerary to publish")
	}
	runID := cuid.New()
	ts := at.Unix()

	for _, stop := range result.Stops {
		r := stop.Restaurant
		event := StopEvent{
			Timestamp:     ts,
			EventType:     TopicStops,
			RunID:         runID,
			StopIndex:     int64(stop.Index),
			Day:           int64(stop.Day),
			Name:          r.Name,
			City:          r.City,
			Country:       r.Country,
			Cuisine:       r.Cuisine,
			Rating:        r.Rating,
			ReviewsCount:  int64(r.ReviewsCount),
			PriceRange:    r.PriceRange,
			EstimatedCost: stop.EstimatedCost,
			Latitude:      r.Location.Lat,
			Longitude:     r.Location.Lon,
			Address:       r.DisplayAddress(),
			Phone:         r.DisplayPhone(),
		}
		if err := publish(dest, TopicStops, event); err != nil {
			return runID, err
		}
	}

	days := make([]string, len(result.DaysPerCity))
	for i, cd := range result.DaysPerCity {
		days[i] = cd.String()
	}
	summary := TripSummaryEvent{
		Timestamp:        ts,
		EventType:        TopicSummary,
		RunID:            runID,
		TotalDays:        int64(result.TotalDays),
		Stops:            int64(len(result.Stops)),
		CountriesVisited: int64(result.CountriesVisited),
		AvgRating:        result.AvgRating,
		TotalCost:        result.TotalCost,
		DaysPerCity:      strings.Join(days, ","),
		Warnings:         int64(len(result.Warnings)),
	}
	return runID, publish(dest, TopicSummary, summary)
}

// PublishFrame writes one visualization_points event per frame point.
func PublishFrame(dest Destination, frame models.VisualizationFrame, at time.Time) (string, error) {
	runID := cuid.New()
	ts := at.Unix()
	for _, p := range frame.Points {
		r := p.Restaurant
		event := MagnitudeEvent{
			Timestamp:    ts,
			EventType:    TopicPoints,
			RunID:        runID,
			Metric:       frame.Metric,
			Name:         r.Name,
			City:         r.City,
			Country:      r.Country,
			Cuisine:      r.Cuisine,
			Rating:       r.Rating,
			ReviewsCount: int64(r.ReviewsCount),
			Latitude:     r.Location.Lat,
			Longitude:    r.Location.Lon,
			Magnitude:    p.Magnitude,
			Compressed:   frame.Compressed,
		}
		if err := publish(dest, TopicPoints, event); err != nil {
			return runID, err
		}
	}
	return runID, nil
}

func publish(dest Destination, topic string, event interface{}) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", topic, err)
	}
	if err := dest.WriteMessage(topic, msg); err != nil {
		return fmt.Errorf("failed to write %s event: %w", topic, err)
	}
	return nil
}
