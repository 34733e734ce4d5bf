package domain

import "strings"

// ReportAnalytics summarizes the report corpus. It backs the standalone
// analytics endpoint and is also injected into the generation prompt as
// grounding for report-scoped questions.
type ReportAnalytics struct {
	TotalReports      int            `json:"totalReports"`
	ResolvedReports   int            `json:"resolvedReports"`
	PendingReports    int            `json:"pendingReports"`
	InProgressReports int            `json:"inProgressReports"`
	UniqueLocations   int            `json:"uniqueLocations"`
	ByCategory        map[string]int `json:"byCategory"`
	ByStatus          map[string]int `json:"byStatus"`
}

// AggregateReports computes summary statistics over the given reports.
// Pure function, no I/O.
func AggregateReports(reports []Report) ReportAnalytics {
	a := ReportAnalytics{
		TotalReports: len(reports),
		ByCategory:   make(map[string]int),
		ByStatus:     make(map[string]int),
	}

	locations := make(map[string]struct{})
	for _, r := range reports {
		switch r.Status {
		case ReportStatusResolved:
			a.ResolvedReports++
		case ReportStatusInProgress:
			a.InProgressReports++
		default:
			a.PendingReports++
		}
		if r.Category != "" {
			a.ByCategory[r.Category]++
		}
		if r.Status != "" {
			a.ByStatus[r.Status]++
		}
		if loc := strings.TrimSpace(strings.ToLower(r.Location)); loc != "" {
			locations[loc] = struct{}{}
		}
	}
	a.UniqueLocations = len(locations)
	return a
}
