package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careerguide/careerguide-api/internal/models"
)

func nodeWithWords(n int) models.RoadmapNode {
	return models.RoadmapNode{Content: strings.TrimSpace(strings.Repeat("word ", n))}
}

func TestReadingTimeEmpty(t *testing.T) {
	assert.Equal(t, "0 mins", ReadingTime(nil))
	assert.Equal(t, "0 mins", ReadingTime([]models.RoadmapNode{{Content: ""}}))
}

func TestReadingTimeBands(t *testing.T) {
	assert.Equal(t, "0 mins", ReadingTime([]models.RoadmapNode{nodeWithWords(150)}))
	assert.Equal(t, "1 min", ReadingTime([]models.RoadmapNode{nodeWithWords(250)}))
	assert.Equal(t, "5 mins", ReadingTime([]models.RoadmapNode{nodeWithWords(1000)}))
	assert.Equal(t, "1 hr 15 mins", ReadingTime([]models.RoadmapNode{nodeWithWords(15000)}))
	assert.Equal(t, "2 hrs 5 mins", ReadingTime([]models.RoadmapNode{nodeWithWords(25000)}))
}

func TestReadingTimeGrowsWithNodes(t *testing.T) {
	base := []models.RoadmapNode{nodeWithWords(1000)}
	assert.Equal(t, "5 mins", ReadingTime(base))

	grown := append(base, nodeWithWords(800))
	assert.Equal(t, "9 mins", ReadingTime(grown))
}

func TestReadingTimeStripsMarkdown(t *testing.T) {
	// Pure markdown punctuation contributes no words.
	node := models.RoadmapNode{Content: "# ## ** __ [] ()"}
	assert.Equal(t, "0 mins", ReadingTime([]models.RoadmapNode{node}))

	// Markdown-wrapped words still count.
	marked := models.RoadmapNode{Content: "# Title\n" + strings.Repeat("**word** ", 400)}
	assert.Equal(t, "2 mins", ReadingTime([]models.RoadmapNode{marked}))
}
