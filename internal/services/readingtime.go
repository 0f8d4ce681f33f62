package services

import (
	"fmt"
	"strings"

	"github.com/careerguide/careerguide-api/internal/models"
)

// wordsPerMinute is the assumed reading speed for roadmap content.
const wordsPerMinute = 200

var markdownStripper = strings.NewReplacer(
	"#", "", "*", "", "_", "", "`", "", "[", "", "]", "", "(", "", ")", "",
)

// ReadingTime estimates how long the content of a roadmap's nodes takes to
// read and formats it for display. Recomputed whenever the node list
// changes.
func ReadingTime(nodes []models.RoadmapNode) string {
	words := 0
	for _, n := range nodes {
		words += len(strings.Fields(markdownStripper.Replace(n.Content)))
	}
	minutes := words / wordsPerMinute

	switch {
	case minutes == 0:
		return "0 mins"
	case minutes == 1:
		return "1 min"
	case minutes < 60:
		return fmt.Sprintf("%d mins", minutes)
	}

	hours := minutes / 60
	rest := minutes % 60
	unit := "hrs"
	if hours == 1 {
		unit = "hr"
	}
	return fmt.Sprintf("%d %s %d mins", hours, unit, rest)
}
