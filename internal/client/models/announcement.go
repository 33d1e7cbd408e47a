package models

import "time"

// Announcement is a site-wide notice published by administrators.
type Announcement struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content,omitempty"`
	Status     int        `json:"status,omitempty"`
	CreateTime *time.Time `json:"createTime,omitempty"`
	UpdateTime *time.Time `json:"updateTime,omitempty"`
}
