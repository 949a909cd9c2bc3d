package dashboard

// Stats aggregates a month's summaries across active employees.
type Stats struct {
	Year                 int `json:"year"`
	Month                int `json:"month"`
	TotalEmployees       int `json:"total_employees"`
	TotalDelayMinutes    int `json:"total_delay_minutes"`
	TotalOvertimeMinutes int `json:"total_overtime_minutes"`
	TotalTimeOffMinutes  int `json:"total_time_off_minutes"`
}

const (
	MetricDelayMinutes    = "delay_minutes"
	MetricCommitmentScore = "commitment_score"
)

// EmployeeRanking is one row of the monthly delay or commitment leaderboard.
// Minutes carries the ranked figure: accumulated delay for the delay board,
// overtime minus delay for the commitment board.
type EmployeeRanking struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Minutes    int    `json:"minutes"`
	Metric     string `json:"metric"`
}
