package models

// DashboardStats aggregates a user's applications into coarse totals.
// TotalApplied counts every non-SAVED row; TotalInterviews covers
// SCREENING, INTERVIEW and INTERVIEW_DONE.
type DashboardStats struct {
	TotalApplied    int64            `json:"total_applied"`
	TotalInterviews int64            `json:"total_interviews"`
	TotalOffers     int64            `json:"total_offers"`
	TotalRejected   int64            `json:"total_rejected"`
	StatusBreakdown map[string]int64 `json:"status_breakdown"`
}
