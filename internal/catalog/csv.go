package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/chrisdamba/foodroadtrip/internal/models"
)

// columnAliases maps each field to the header names accepted for it, covering
// both the planner dataset and the TripAdvisor export.
var columnAliases = map[string][]string{
	"id":            {"id", "restaurant_link"},
	"name":          {"name", "restaurant_name"},
	"city":          {"city"},
	"country":       {"country"},
	"cuisine":       {"cuisine", "cuisines"},
	"rating":        {"rating", "avg_rating"},
	"reviews_count": {"reviews_count", "total_reviews_count"},
	"price_range":   {"price_range", "price_level"},
	"latitude":      {"latitude", "lat"},
	"longitude":     {"longitude", "lon", "lng"},
	"address":       {"address"},
	"phone":         {"phone"},
}

var requiredColumns = []string{"name", "rating", "latitude", "longitude"}

// CSVSource reads restaurants from a CSV file with a header row.
type CSVSource struct {
	Path string
}

func (s *CSVSource) Load(ctx context.Context) ([]models.Restaurant, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadCSV(ctx, file)
}

// ReadCSV decodes restaurant rows. Cells that fail to parse become values
// Normalize rejects (NaN coordinates or rating) rather than errors, so one
// bad row never fails the load.
func ReadCSV(ctx context.Context, r io.Reader) ([]models.Restaurant, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols := resolveColumns(header)
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	var rows []models.Restaurant
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cell := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(fields) {
				return ""
			}
			return strings.TrimSpace(fields[i])
		}
		rows = append(rows, models.Restaurant{
			ID:           cell("id"),
			Name:         cell("name"),
			City:         cell("city"),
			Country:      cell("country"),
			Cuisine:      cell("cuisine"),
			Rating:       parseFloat(cell("rating")),
			ReviewsCount: parseCount(cell("reviews_count")),
			PriceRange:   cell("price_range"),
			Location: models.Location{
				Lat: parseFloat(cell("latitude")),
				Lon: parseFloat(cell("longitude")),
			},
			Address: cell("address"),
			Phone:   cell("phone"),
		})
	}
	return rows, nil
}

func resolveColumns(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	cols := make(map[string]int)
	for field, aliases := range columnAliases {
		for _, a := range aliases {
			if i, ok := index[a]; ok {
				cols[field] = i
				break
			}
		}
	}
	return cols
}

func parseFloat(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// parseCount accepts "1234", "1234.0" and "1,234"; anything else counts as 0.
func parseCount(s string) int {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0
	}
	return int(f)
}

// WriteCSV writes restaurants in the planner dataset dialect.
func WriteCSV(w io.Writer, rows []models.Restaurant) error {
	writer := csv.NewWriter(w)
	header := []string{"id", "name", "city", "country", "cuisine", "rating", "reviews_count", "price_range", "latitude", "longitude", "address", "phone"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.ID,
			r.Name,
			r.City,
			r.Country,
			r.Cuisine,
			strconv.FormatFloat(r.Rating, 'f', -1, 64),
			strconv.Itoa(r.ReviewsCount),
			r.PriceRange,
			strconv.FormatFloat(r.Location.Lat, 'f', -1, 64),
			strconv.FormatFloat(r.Location.Lon, 'f', -1, 64),
			r.Address,
			r.Phone,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
