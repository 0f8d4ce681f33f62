package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Content submission statuses.
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// ContentSubmission is user-contributed content awaiting review. Approval
// publishes ContentData into the collection named by ContentType; a decided
// submission cannot be re-reviewed.
type ContentSubmission struct {
	Meta        `bson:",inline"`
	ContentType string     `bson:"content_type" json:"content_type"`
	ContentData bson.M     `bson:"content_data" json:"content_data"`
	SubmittedBy string     `bson:"submitted_by" json:"submitted_by"`
	Status      string     `bson:"status" json:"status"`
	ReviewedBy  string     `bson:"reviewed_by,omitempty" json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `bson:"reviewed_at,omitempty" json:"reviewed_at,omitempty"`
	ReviewNotes string     `bson:"review_notes,omitempty" json:"review_notes,omitempty"`
}
