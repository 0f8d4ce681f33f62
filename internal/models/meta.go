package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meta carries the identity and timestamps shared by every stored entity.
// Models embed it inline so the fields live at the document's top level.
type Meta struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

func (m *Meta) SetID(id primitive.ObjectID) { m.ID = id }

func (m *Meta) DocumentID() primitive.ObjectID { return m.ID }

// Stamp sets updated_at, and created_at too on first call.
func (m *Meta) Stamp(t time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = t
	}
	m.UpdatedAt = t
}
