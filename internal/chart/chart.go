// Package chart builds renderable chart artifacts as Chart.js configurations.
// Builders are pure: the same inputs always produce the same config, including
// jitter, which uses a fixed-seed generator.
package chart

import (
	"encoding/json"
	"fmt"
)

// Chart is one renderable artifact: a canvas ID, a display title, and a
// Chart.js configuration object.
type Chart struct {
	ID     string
	Title  string
	Config Config
}

// ConfigJSON marshals the Chart.js configuration for embedding in HTML.
func (c Chart) ConfigJSON() (string, error) {
	b, err := json.Marshal(c.Config)
	if err != nil {
		return "", fmt.Errorf("marshal chart %s: %w", c.ID, err)
	}
	return string(b), nil
}

// Config mirrors the top-level Chart.js config shape.
type Config struct {
	Type    string         `json:"type"`
	Data    Data           `json:"data"`
	Options map[string]any `json:"options,omitempty"`
}

// Data holds axis labels and one or more datasets.
type Data struct {
	Labels   []string  `json:"labels,omitempty"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one Chart.js dataset. Data is []float64 for bar charts,
// []Point for scatter, or []Box for boxplots.
type Dataset struct {
	Label           string  `json:"label,omitempty"`
	Data            any     `json:"data"`
	BackgroundColor any     `json:"backgroundColor,omitempty"`
	BorderColor     any     `json:"borderColor,omitempty"`
	BorderWidth     float64 `json:"borderWidth,omitempty"`
	PointRadius     float64 `json:"pointRadius,omitempty"`
}

// Point is an x/y pair for scatter datasets.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Box carries precomputed boxplot statistics in the shape the Chart.js
// boxplot plugin consumes.
type Box struct {
	Min      float64   `json:"min"`
	Q1       float64   `json:"q1"`
	Median   float64   `json:"median"`
	Q3       float64   `json:"q3"`
	Max      float64   `json:"max"`
	Outliers []float64 `json:"outliers,omitempty"`
}

func baseOptions(xTitle, yTitle string) map[string]any {
	opts := map[string]any{
		"responsive":          true,
		"maintainAspectRatio": false,
		"plugins": map[string]any{
			"legend": map[string]any{"display": false},
		},
	}
	scales := map[string]any{}
	if xTitle != "" {
		scales["x"] = map[string]any{
			"title": map[string]any{"display": true, "text": xTitle},
		}
	}
	if yTitle != "" {
		scales["y"] = map[string]any{
			"title": map[string]any{"display": true, "text": yTitle},
		}
	}
	if len(scales) > 0 {
		opts["scales"] = scales
	}
	return opts
}

func scaleOf(opts map[string]any, axis string) map[string]any {
	scales, ok := opts["scales"].(map[string]any)
	if !ok {
		scales = map[string]any{}
		opts["scales"] = scales
	}
	sc, ok := scales[axis].(map[string]any)
	if !ok {
		sc = map[string]any{}
		scales[axis] = sc
	}
	return sc
}

func showLegend(opts map[string]any) {
	plugins, ok := opts["plugins"].(map[string]any)
	if !ok {
		plugins = map[string]any{}
		opts["plugins"] = plugins
	}
	plugins["legend"] = map[string]any{"display": true, "position": "right"}
}
