package models

// MagnitudePoint is a restaurant annotated with its visual magnitude.
type MagnitudePoint struct {
	Restaurant Restaurant `json:"restaurant"`
	Magnitude  float64    `json:"magnitude"`
}

// VisualizationFrame is the per-filter-pass table driving the 3D map.
type VisualizationFrame struct {
	Metric     string           `json:"metric"`
	Points     []MagnitudePoint `json:"points"`
	Compressed bool             `json:"compressed"`
	// Center is only meaningful when Points is non-empty.
	Center Location `json:"center"`
}

func (f VisualizationFrame) Empty() bool {
	return len(f.Points) == 0
}
