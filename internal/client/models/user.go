// Package models defines the marketplace records exchanged with the server.
// All fields are server-owned; the client treats them as read-mostly data.
package models

import "time"

// Role enumerates user roles as reported by the server.
type Role string

const (
	RoleRegular Role = "REGULAR"
	RoleAdmin   Role = "ADMIN"
)

// User statuses: 1 means active, 0 means disabled by an administrator.
const (
	UserStatusDisabled = 0
	UserStatusActive   = 1
)

// User is the server-held profile record.
type User struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Nickname   string     `json:"nickname"`
	Avatar     string     `json:"avatar,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Role       Role       `json:"role"`
	Points     int        `json:"points"`
	Status     int        `json:"status"`
	CreateTime *time.Time `json:"createTime,omitempty"`
	UpdateTime *time.Time `json:"updateTime,omitempty"`
}

// IsAdmin reports whether the user carries the administrator role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
