package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Notification statuses and targets.
const (
	NotificationPending = "pending"
	NotificationSent    = "sent"
	NotificationFailed  = "failed"

	TargetAll           = "all"
	TargetSpecificUsers = "specific_users"
	TargetAdmins        = "admins"
)

// PushNotification is a queued push message. ScheduledAt is data only;
// delivery happens through an explicit send call.
type PushNotification struct {
	Meta        `bson:",inline"`
	Title       string     `bson:"title" json:"title"`
	Message     string     `bson:"message" json:"message"`
	Target      string     `bson:"target" json:"target"`
	TargetIDs   []string   `bson:"target_ids" json:"target_ids"`
	Data        bson.M     `bson:"data,omitempty" json:"data,omitempty"`
	Status      string     `bson:"status" json:"status"`
	ScheduledAt *time.Time `bson:"scheduled_at,omitempty" json:"scheduled_at,omitempty"`
	SentAt      *time.Time `bson:"sent_at,omitempty" json:"sent_at,omitempty"`
	SentCount   int64      `bson:"sent_count" json:"sent_count"`
	FailedCount int64      `bson:"failed_count" json:"failed_count"`
}
