package models

// DashboardStats is the aggregate counts document for the dashboard.
// An empty database yields the zero value, never an error.
type DashboardStats struct {
	TotalContacts        int64 `json:"totalContacts"`
	NewContacts          int64 `json:"newContacts"`
	TotalAppointments    int64 `json:"totalAppointments"`
	PendingAppointments  int64 `json:"pendingAppointments"`
	UpcomingAppointments int64 `json:"upcomingAppointments"`
}
