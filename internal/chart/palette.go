package chart

import "fmt"

// palette is the categorical color cycle for grouped datasets.
var palette = []string{
	"#3498db", "#e74c3c", "#27ae60", "#f39c12",
	"#9b59b6", "#1abc9c", "#34495e", "#e67e22",
}

// qualityColors maps the observed quality scores 3..8 onto a cold-to-warm ramp.
var qualityColors = map[int]string{
	3: "#2c3e50",
	4: "#2980b9",
	5: "#16a085",
	6: "#f1c40f",
	7: "#e67e22",
	8: "#c0392b",
}

// QualityColor returns the ramp color for a quality score.
func QualityColor(level int) string {
	if c, ok := qualityColors[level]; ok {
		return c
	}
	return GroupColor(level)
}

// GroupColor returns the i-th categorical palette color.
func GroupColor(i int) string {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}

// translucent converts a #rrggbb color into an rgba() string with the given
// alpha, for dense scatter clouds.
func translucent(hex string, alpha float64) string {
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return hex
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", r, g, b, alpha)
}
