package usecase

// QueryConfig carries the per-request options recognized by the query
// endpoint. Zero values mean "use the configured default"; resolution
// happens in withDefaults so callers never see partially-defaulted state.
type QueryConfig struct {
	// Category, Location, Status narrow the report-derived documents
	// considered for this query.
	Category string
	Location string
	Status   string

	// Temperature overrides the generation temperature (0 = default).
	Temperature float64
	// MaxDocuments overrides how many documents feed the context
	// (0 = default).
	MaxDocuments int
	// Voice switches to the low-bandwidth defaults: fewer documents,
	// lower temperature.
	Voice bool

	// IncludeIndianContext adds Indian civic framing to the prompt.
	IncludeIndianContext bool
	// RegionalContext names a region the answer should be anchored to.
	RegionalContext string
	// GovernanceContext asks the answer to cover escalation and agency
	// ownership.
	GovernanceContext bool

	// UserSpecific scopes report context to the given user's reports.
	UserSpecific bool
	UserID       string
}

// AnswerDefaults holds the configured fallbacks applied to a QueryConfig.
type AnswerDefaults struct {
	Temperature        float64
	VoiceTemperature   float64
	MaxDocuments       int
	VoiceMaxDocuments  int
	MaxContextLength   int
	SourceContentLimit int
	Persona            string
}

func (c QueryConfig) withDefaults(d AnswerDefaults) QueryConfig {
	out := c
	if out.Temperature <= 0 {
		if out.Voice {
			out.Temperature = d.VoiceTemperature
		} else {
			out.Temperature = d.Temperature
		}
	}
	if out.MaxDocuments <= 0 {
		if out.Voice {
			out.MaxDocuments = d.VoiceMaxDocuments
		} else {
			out.MaxDocuments = d.MaxDocuments
		}
	}
	return out
}
