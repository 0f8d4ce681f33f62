package models

// Article is an editorial article. ViewsCount starts at zero and is bumped
// atomically on each public read.
type Article struct {
	Meta        `bson:",inline"`
	Title       string   `bson:"title" json:"title"`
	Content     string   `bson:"content" json:"content"`
	Excerpt     string   `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Author      string   `bson:"author" json:"author"`
	Tags        []string `bson:"tags" json:"tags"`
	Category    string   `bson:"category" json:"category"`
	CoverImage  string   `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	ReadTime    string   `bson:"read_time,omitempty" json:"read_time,omitempty"`
	IsPublished bool     `bson:"is_published" json:"is_published"`
	ViewsCount  int64    `bson:"views_count" json:"views_count"`
}

// ArticleUpdate is the partial-update payload for Article.
type ArticleUpdate struct {
	Title       *string  `bson:"title" json:"title"`
	Content     *string  `bson:"content" json:"content"`
	Excerpt     *string  `bson:"excerpt" json:"excerpt"`
	Author      *string  `bson:"author" json:"author"`
	Tags        []string `bson:"tags" json:"tags"`
	Category    *string  `bson:"category" json:"category"`
	CoverImage  *string  `bson:"cover_image" json:"cover_image"`
	ReadTime    *string  `bson:"read_time" json:"read_time"`
	IsPublished *bool    `bson:"is_published" json:"is_published"`
}
