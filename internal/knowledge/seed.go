// Package knowledge holds the static civic knowledge base the document
// store is seeded with at startup. These documents are never deleted;
// report-derived documents are layered on top of them at query time.
package knowledge

import (
	"time"

	"nagrik-rag/internal/domain"
)

var seededAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// SeedDocuments returns the static reference documents.
func SeedDocuments() []domain.KnowledgeDocument {
	return []domain.KnowledgeDocument{
		{
			ID:       "kb-potholes",
			Title:    "Pothole Causes and Repair",
			Category: "diagnosis",
			Content: "Potholes are caused by water infiltration into the road subbase, " +
				"followed by traffic loading that breaks the weakened asphalt. They worsen " +
				"rapidly during and after monsoon season. Temporary repair uses cold mix " +
				"asphalt; permanent repair requires cutting back to sound pavement, " +
				"compacting the base, and laying hot mix. Recurring potholes at the same " +
				"spot usually indicate a drainage defect rather than a surface defect.",
			Metadata:  map[string]string{"topic": "roads"},
			Timestamp: seededAt,
		},
		{
			ID:       "kb-streetlights",
			Title:    "Streetlight Faults",
			Category: "infrastructure",
			Content: "Streetlight outages are typically caused by failed lamps, tripped " +
				"feeder fuses, or cable faults. A single dark lamp is a lamp or ballast " +
				"failure; a whole stretch of dark lamps points to a feeder or timer fault. " +
				"Streetlight complaints are routed to the municipal electrical wing and " +
				"are normally resolved within 48 to 72 hours.",
			Metadata:  map[string]string{"topic": "electrical"},
			Timestamp: seededAt,
		},
		{
			ID:       "kb-water-supply",
			Title:    "Water Supply Disruptions",
			Category: "infrastructure",
			Content: "Water supply disruptions arise from pipeline bursts, valve " +
				"maintenance, contamination events, or low reservoir levels. Discolored " +
				"water after a disruption is usually sediment disturbed by pressure " +
				"changes and clears after flushing. Persistent low pressure in one " +
				"locality suggests a leak or an unauthorized connection upstream.",
			Metadata:  map[string]string{"topic": "water"},
			Timestamp: seededAt,
		},
		{
			ID:       "kb-drainage",
			Title:    "Drainage and Waterlogging",
			Category: "diagnosis",
			Content: "Waterlogging is caused by blocked storm drains, silted culverts, or " +
				"undersized drainage in low-lying areas. Pre-monsoon desilting is the " +
				"main preventive measure. Reports of standing water lasting more than a " +
				"day after rainfall should be treated as drainage blockages, not road " +
				"defects.",
			Metadata:  map[string]string{"topic": "drainage"},
			Timestamp: seededAt,
		},
		{
			ID:       "kb-garbage",
			Title:    "Solid Waste Collection",
			Category: "infrastructure",
			Content: "Missed garbage collection is handled by the sanitation wing. " +
				"Overflowing community bins indicate a skipped pickup round or an " +
				"undersized bin for the locality. Construction debris is not collected " +
				"with household waste and requires a separate debris removal request.",
			Metadata:  map[string]string{"topic": "sanitation"},
			Timestamp: seededAt,
		},
		{
			ID:       "kb-escalation",
			Title:    "Complaint Escalation Path",
			Category: "assessment",
			Content: "Unresolved complaints escalate from the ward office to the zonal " +
				"officer, then to the municipal commissioner's grievance cell. Citizens " +
				"can escalate a report that has stayed pending beyond the published " +
				"service-level window: 7 days for roads and streetlights, 3 days for " +
				"water supply and sanitation. Right to Information requests are a " +
				"further recourse for stalled grievances.",
			Metadata:  map[string]string{"topic": "process"},
			Timestamp: seededAt,
		},
		{
			ID:       "kb-governance",
			Title:    "Municipal Governance Context",
			Category: "assessment",
			Content: "Indian urban local bodies divide cities into wards, each with an " +
				"elected councillor. Infrastructure maintenance is split between the " +
				"municipal corporation, state utilities for power, and water boards in " +
				"larger cities. Knowing which agency owns an asset determines where a " +
				"report should be routed and who the escalation authority is.",
			Metadata:  map[string]string{"topic": "governance"},
			Timestamp: seededAt,
		},
		{
			ID:       "kb-report-lifecycle",
			Title:    "Report Lifecycle",
			Category: "assessment",
			Content: "A citizen report starts as pending, moves to in-progress when an " +
				"authority acknowledges it, and ends resolved when the fix is verified. " +
				"High priority reports are those flagged as safety hazards, such as open " +
				"manholes, dangling cables, or deep potholes on arterial roads.",
			Metadata:  map[string]string{"topic": "process"},
			Timestamp: seededAt,
		},
	}
}
