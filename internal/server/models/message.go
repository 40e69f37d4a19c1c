package models

import "time"

// Message is a direct message. SenderUsername is resolved on read for inbox
// display; only the recipient may delete a message.
type Message struct {
	ID             string
	SenderID       string
	RecipientID    string
	Content        string
	CreatedAt      time.Time
	SenderUsername string
}
