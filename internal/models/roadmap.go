package models

// NodePosition is a node's placement on the roadmap canvas.
type NodePosition struct {
	X float64 `bson:"x" json:"x"`
	Y float64 `bson:"y" json:"y"`
}

// NodeResource is a learning resource attached to a roadmap node.
type NodeResource struct {
	Title string `bson:"title" json:"title"`
	URL   string `bson:"url" json:"url"`
	Type  string `bson:"type,omitempty" json:"type,omitempty"`
}

// RoadmapNode is one node of a roadmap's directed graph. Parent/child links
// reference node ids; cycles are not prevented.
type RoadmapNode struct {
	ID          string         `bson:"id" json:"id"`
	Title       string         `bson:"title" json:"title"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
	Content     string         `bson:"content,omitempty" json:"content,omitempty"`
	NodeType    string         `bson:"node_type,omitempty" json:"node_type,omitempty"`
	Position    NodePosition   `bson:"position" json:"position"`
	ParentNodes []string       `bson:"parent_nodes" json:"parent_nodes"`
	ChildNodes  []string       `bson:"child_nodes" json:"child_nodes"`
	IsCompleted bool           `bson:"is_completed" json:"is_completed"`
	Resources   []NodeResource `bson:"resources" json:"resources"`
}

// Roadmap is a learning roadmap. ReadingTime is recomputed from node
// content whenever the node list changes.
type Roadmap struct {
	Meta            `bson:",inline"`
	Title           string        `bson:"title" json:"title"`
	Description     string        `bson:"description,omitempty" json:"description,omitempty"`
	Category        string        `bson:"category" json:"category"`
	Subcategory     string        `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	DifficultyLevel string        `bson:"difficulty_level,omitempty" json:"difficulty_level,omitempty"`
	Tags            []string      `bson:"tags" json:"tags"`
	Nodes           []RoadmapNode `bson:"nodes" json:"nodes"`
	ReadingTime     string        `bson:"reading_time" json:"reading_time"`
	ViewsCount      int64         `bson:"views_count" json:"views_count"`
	FollowersCount  int64         `bson:"followers_count" json:"followers_count"`
	IsPublished     bool          `bson:"is_published" json:"is_published"`
	IsActive        bool          `bson:"is_active" json:"is_active"`
}

// NewRoadmap returns a Roadmap with creation defaults applied.
func NewRoadmap() Roadmap {
	return Roadmap{IsActive: true}
}

// RoadmapUpdate is the partial-update payload for Roadmap.
type RoadmapUpdate struct {
	Title           *string       `bson:"title" json:"title"`
	Description     *string       `bson:"description" json:"description"`
	Category        *string       `bson:"category" json:"category"`
	Subcategory     *string       `bson:"subcategory" json:"subcategory"`
	DifficultyLevel *string       `bson:"difficulty_level" json:"difficulty_level"`
	Tags            []string      `bson:"tags" json:"tags"`
	Nodes           []RoadmapNode `bson:"nodes" json:"nodes"`
	IsPublished     *bool         `bson:"is_published" json:"is_published"`
	IsActive        *bool         `bson:"is_active" json:"is_active"`
}
