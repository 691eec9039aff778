package dto

type DashboardStatsDTO struct {
	TotalAppointments int64            `json:"total_appointments"`
	TodayAppointments int64            `json:"today_appointments"`
	TotalRevenue      float64          `json:"total_revenue"`
	TodayRevenue      float64          `json:"today_revenue"`
	ByStatus          map[string]int64 `json:"by_status"`
}

type DailyCountDTO struct {
	Day   string `json:"day"` // 2006-01-02 no fuso da clínica
	Count int64  `json:"count"`
}
