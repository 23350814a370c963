package output

import (
	"fmt"
	"reflect"
)

// Every event starts with the timestamp, eventType and runId columns.

// StopEvent is one itinerary stop.
type StopEvent struct {
	Timestamp     int64    `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType     string   `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	RunID         string   `json:"runId" parquet:"name=runId,type=BYTE_ARRAY,convertedtype=UTF8"`
	StopIndex     int64    `json:"stopIndex" parquet:"name=stopIndex,type=INT64"`
	Day           int64    `json:"day" parquet:"name=day,type=INT64"`
	Name          string   `json:"name" parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	City          string   `json:"city" parquet:"name=city,type=BYTE_ARRAY,convertedtype=UTF8"`
	Country       string   `json:"country" parquet:"name=country,type=BYTE_ARRAY,convertedtype=UTF8"`
	Cuisine       string   `json:"cuisine" parquet:"name=cuisine,type=BYTE_ARRAY,convertedtype=UTF8"`
	Rating        float64  `json:"rating" parquet:"name=rating,type=DOUBLE"`
	ReviewsCount  int64    `json:"reviewsCount" parquet:"name=reviewsCount,type=INT64"`
	PriceRange    string   `json:"priceRange" parquet:"name=priceRange,type=BYTE_ARRAY,convertedtype=UTF8"`
	EstimatedCost *float64 `json:"estimatedCost" parquet:"name=estimatedCost,type=DOUBLE,repetitiontype=OPTIONAL"`
	Latitude      float64  `json:"latitude" parquet:"name=latitude,type=DOUBLE"`
	Longitude     float64  `json:"longitude" parquet:"name=longitude,type=DOUBLE"`
	Address       string   `json:"address" parquet:"name=address,type=BYTE_ARRAY,convertedtype=UTF8"`
	Phone         string   `json:"phone" parquet:"name=phone,type=BYTE_ARRAY,convertedtype=UTF8"`
}

// TripSummaryEvent carries the aggregates of one itinerary.
type TripSummaryEvent struct {
	Timestamp        int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType        string  `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	RunID            string  `json:"runId" parquet:"name=runId,type=BYTE_ARRAY,convertedtype=UTF8"`
	TotalDays        int64   `json:"totalDays" parquet:"name=totalDays,type=INT64"`
	Stops            int64   `json:"stops" parquet:"name=stops,type=INT64"`
	CountriesVisited int64   `json:"countriesVisited" parquet:"name=countriesVisited,type=INT64"`
	AvgRating        float64 `json:"avgRating" parquet:"name=avgRating,type=DOUBLE"`
	TotalCost        float64 `json:"totalCost" parquet:"name=totalCost,type=DOUBLE"`
	DaysPerCity      string  `json:"daysPerCity" parquet:"name=daysPerCity,type=BYTE_ARRAY,convertedtype=UTF8"`
	Warnings         int64   `json:"warnings" parquet:"name=warnings,type=INT64"`
}

// MagnitudeEvent is one record of a visualization frame.
type MagnitudeEvent struct {
	Timestamp    int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType    string  `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	RunID        string  `json:"runId" parquet:"name=runId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Metric       string  `json:"metric" parquet:"name=metric,type=BYTE_ARRAY,convertedtype=UTF8"`
	Name         string  `json:"name" parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	City         string  `json:"city" parquet:"name=city,type=BYTE_ARRAY,convertedtype=UTF8"`
	Country      string  `json:"country" parquet:"name=country,type=BYTE_ARRAY,convertedtype=UTF8"`
	Cuisine      string  `json:"cuisine" parquet:"name=cuisine,type=BYTE_ARRAY,convertedtype=UTF8"`
	Rating       float64 `json:"rating" parquet:"name=rating,type=DOUBLE"`
	ReviewsCount int64   `json:"reviewsCount" parquet:"name=reviewsCount,type=INT64"`
	Latitude     float64 `json:"latitude" parquet:"name=latitude,type=DOUBLE"`
	Longitude    float64 `json:"longitude" parquet:"name=longitude,type=DOUBLE"`
	Magnitude    float64 `json:"magnitude" parquet:"name=magnitude,type=DOUBLE"`
	Compressed   bool    `json:"compressed" parquet:"name=compressed,type=BOOLEAN"`
}

// recordType maps a topic to the struct its messages decode into.
func recordType(topic string) (reflect.Type, error) {
	switch topic {
	case TopicStops:
		return reflect.TypeOf(StopEvent{}), nil
	case TopicSummary:
		return reflect.TypeOf(TripSummaryEvent{}), nil
	case TopicPoints:
		return reflect.TypeOf(MagnitudeEvent{}), nil
	default:
		return nil, fmt.Errorf("unknown event type: %s", topic)
	}
}
