package models

import "time"

// Notification is a server-generated message for the current user.
type Notification struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"userId"`
	Title      string     `json:"title"`
	Content    string     `json:"content,omitempty"`
	Type       string     `json:"type,omitempty"`
	RelatedID  int64      `json:"relatedId,omitempty"`
	IsRead     bool       `json:"isRead"`
	CreateTime *time.Time `json:"createTime,omitempty"`
}
