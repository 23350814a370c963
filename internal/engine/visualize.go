package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chrisdamba/foodroadtrip/internal/models"
)

var ErrUnknownMetric = errors.New("unknown visualization metric")

// ParseMetric resolves a metric selector. "review_count" and "review-count"
// are accepted as spellings of "review count".
func ParseMetric(s string) (string, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	if knownMetric(norm) {
		return norm, nil
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownMetric, s, strings.Join(models.Metrics, ", "))
}

// Visualizer computes the per-record magnitudes of the 3D map.
type Visualizer struct {
	Params models.VisualizationConfig
}

// NewVisualizer returns a visualizer with the given constants, falling back
// to the defaults for any left at zero.
func NewVisualizer(params models.VisualizationConfig) *Visualizer {
	def := models.DefaultVisualization()
	if params.RatingMultiplier == 0 {
		params.RatingMultiplier = def.RatingMultiplier
	}
	if params.PopularityDivisor == 0 {
		params.PopularityDivisor = def.PopularityDivisor
	}
	if params.UniformMagnitude == 0 {
		params.UniformMagnitude = def.UniformMagnitude
	}
	if params.OutlierThreshold == 0 {
		params.OutlierThreshold = def.OutlierThreshold
	}
	if params.OutlierDivisor == 0 {
		params.OutlierDivisor = def.OutlierDivisor
	}
	return &Visualizer{Params: params}
}

// Magnitude is the raw, pre-compression magnitude of r under metric.
func (v *Visualizer) Magnitude(r models.Restaurant, metric string) (float64, error) {
	switch metric {
	case models.MetricReviewCount:
		return float64(r.ReviewsCount), nil
	case models.MetricRating:
		return r.Rating * v.Params.RatingMultiplier, nil
	case models.MetricPopularity:
		return r.Rating * float64(r.ReviewsCount) / v.Params.PopularityDivisor, nil
	case models.MetricUniform:
		return v.Params.UniformMagnitude, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
}

// Frame annotates every mappable record with its magnitude. When the largest
// magnitude exceeds the outlier threshold, every magnitude is divided by the
// outlier divisor once.
func (v *Visualizer) Frame(records []models.Restaurant, metric string) (models.VisualizationFrame, error) {
	frame := models.VisualizationFrame{Metric: metric}
	if !knownMetric(metric) {
		return frame, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	var locs []models.Location
	peak := 0.0
	for _, r := range records {
		if !r.Location.Valid() {
			continue
		}
		m, _ := v.Magnitude(r, metric)
		if len(frame.Points) == 0 || m > peak {
			peak = m
		}
		frame.Points = append(frame.Points, models.MagnitudePoint{Restaurant: r, Magnitude: m})
		locs = append(locs, r.Location)
	}

	if len(frame.Points) > 0 && peak > v.Params.OutlierThreshold {
		for i := range frame.Points {
			frame.Points[i].Magnitude /= v.Params.OutlierDivisor
		}
		frame.Compressed = true
	}
	frame.Center, _ = models.Centroid(locs)
	return frame, nil
}

func knownMetric(metric string) bool {
	for _, m := range models.Metrics {
		if m == metric {
			return true
		}
	}
	return false
}
