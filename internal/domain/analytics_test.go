package domain_test

import (
	"testing"

	"nagrik-rag/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAggregateReports(t *testing.T) {
	reports := []domain.Report{
		{ID: "1", Category: "roads", Status: domain.ReportStatusResolved, Location: "Sector 12"},
		{ID: "2", Category: "roads", Status: domain.ReportStatusPending, Location: "sector 12"},
		{ID: "3", Category: "water", Status: domain.ReportStatusInProgress, Location: "MG Road"},
		{ID: "4", Category: "water", Status: domain.ReportStatusPending, Location: ""},
	}

	a := domain.AggregateReports(reports)

	assert.Equal(t, 4, a.TotalReports)
	assert.Equal(t, 1, a.ResolvedReports)
	assert.Equal(t, 2, a.PendingReports)
	assert.Equal(t, 1, a.InProgressReports)
	// Location comparison is case-insensitive, empty locations ignored.
	assert.Equal(t, 2, a.UniqueLocations)
	assert.Equal(t, 2, a.ByCategory["roads"])
	assert.Equal(t, 2, a.ByCategory["water"])
	assert.Equal(t, 2, a.ByStatus[domain.ReportStatusPending])
}

func TestAggregateReports_Empty(t *testing.T) {
	a := domain.AggregateReports(nil)
	assert.Equal(t, 0, a.TotalReports)
	assert.Equal(t, 0, a.UniqueLocations)
	assert.Empty(t, a.ByCategory)
}
