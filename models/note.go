package models

import "time"

// ClientNote is a note saved on behalf of a client, typically by the
// saveClientNote or autoNoteInterest tools.
type ClientNote struct {
	ID          string    `bson:"id" json:"id"`
	UserName    string    `bson:"user_name" json:"userName"`
	UserContact string    `bson:"user_contact" json:"userContact"`
	Message     string    `bson:"message" json:"message"`
	Source      string    `bson:"source" json:"source"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// ClientMemory is one learned preference about a client.
type ClientMemory struct {
	Topic     string    `json:"topic"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	LearnedAt time.Time `json:"learnedAt"`
}
