package models

// DashboardStats summarizes marketplace activity for the admin dashboard.
type DashboardStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalTools        int64 `json:"totalTools"`
	PendingAuditCount int64 `json:"pendingAuditCount"`
	ActiveBorrows     int64 `json:"activeBorrows"`
	TotalBorrows      int64 `json:"totalBorrows"`
}
