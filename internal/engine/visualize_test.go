package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/chrisdamba/foodroadtrip/internal/models"
)

func TestParseMetric(t *testing.T) {
	tests := map[string]string{
		"review count": models.MetricReviewCount,
		"Review_Count": models.MetricReviewCount,
		"review-count": models.MetricReviewCount,
		" RATING ":     models.MetricRating,
		"popularity":   models.MetricPopularity,
		"uniform":      models.MetricUniform,
	}
	for in, want := range tests {
		got, err := ParseMetric(in)
		if err != nil || got != want {
			t.Fatalf("ParseMetric(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseMetric("height"); !errors.Is(err, ErrUnknownMetric) {
		t.Fatalf("ParseMetric(height) err = %v", err)
	}
}

func TestMagnitude(t *testing.T) {
	v := NewVisualizer(models.VisualizationConfig{})
	r := restaurant("a", "Paris", 4.5, 200)
	tests := []struct {
		metric string
		want   float64
	}{
		{models.MetricReviewCount, 200},
		{models.MetricRating, 90},
		{models.MetricPopularity, 180},
		{models.MetricUniform, 50},
	}
	for _, tt := range tests {
		got, err := v.Magnitude(r, tt.metric)
		if err != nil || math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("Magnitude(%s) = %v, %v; want %v", tt.metric, got, err, tt.want)
		}
	}
}

func TestFrameUniformNotCompressed(t *testing.T) {
	records := []models.Restaurant{restaurant("a", "Paris", 4, 10000), restaurant("b", "Paris", 5, 1)}
	frame, err := NewVisualizer(models.DefaultVisualization()).Frame(records, models.MetricUniform)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if frame.Compressed {
		t.Fatalf("uniform frame should not be compressed")
	}
	for _, p := range frame.Points {
		if p.Magnitude != 50 {
			t.Fatalf("uniform magnitude = %v", p.Magnitude)
		}
	}
}

func TestFrameCompression(t *testing.T) {
	records := []models.Restaurant{restaurant("big", "Paris", 4, 10000), restaurant("small", "Paris", 4, 100)}
	frame, err := NewVisualizer(models.DefaultVisualization()).Frame(records, models.MetricReviewCount)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if !frame.Compressed {
		t.Fatalf("expected compression above 5000")
	}
	if frame.Points[0].Magnitude != 200 || frame.Points[1].Magnitude != 2 {
		t.Fatalf("magnitudes = %v, %v", frame.Points[0].Magnitude, frame.Points[1].Magnitude)
	}
}

func TestFrameThresholdIsExclusive(t *testing.T) {
	records := []models.Restaurant{restaurant("edge", "Paris", 4, 5000)}
	frame, _ := NewVisualizer(models.DefaultVisualization()).Frame(records, models.MetricReviewCount)
	if frame.Compressed || frame.Points[0].Magnitude != 5000 {
		t.Fatalf("a peak of exactly 5000 must stay untouched: %+v", frame)
	}
}

func TestFrameSkipsUnmappableAndCenters(t *testing.T) {
	a := restaurant("a", "Paris", 4, 1)
	a.Location = models.Location{Lat: 10, Lon: 20}
	b := restaurant("b", "Paris", 4, 1)
	b.Location = models.Location{Lat: 20, Lon: 40}
	bad := restaurant("bad", "Paris", 4, 1)
	bad.Location = models.Location{Lat: math.NaN(), Lon: 0}

	frame, err := NewVisualizer(models.VisualizationConfig{}).Frame([]models.Restaurant{a, bad, b}, models.MetricRating)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if len(frame.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(frame.Points))
	}
	if frame.Center != (models.Location{Lat: 15, Lon: 30}) {
		t.Fatalf("center = %+v", frame.Center)
	}
}

func TestFrameEmpty(t *testing.T) {
	frame, err := NewVisualizer(models.VisualizationConfig{}).Frame(nil, models.MetricPopularity)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if !frame.Empty() || frame.Compressed {
		t.Fatalf("frame = %+v", frame)
	}
	if _, err := NewVisualizer(models.VisualizationConfig{}).Frame(nil, "height"); !errors.Is(err, ErrUnknownMetric) {
		t.Fatalf("err = %v", err)
	}
}
