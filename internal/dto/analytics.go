package dto

import "github.com/Kenji-One/tikd-api/internal/analytics"

// SummaryQuery selects the analytics date range. Absent bounds mean
// "all time", which defaults to the current calendar year at monthly
// granularity.
type SummaryQuery struct {
	From string `form:"from"` // "2006-01-02"
	To   string `form:"to"`
}

// Segment is one slice of a donut breakdown
type Segment struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// SummaryResponse is everything the dashboard summary page renders: the
// bucketed revenue series with its axis ticks, plus the deterministic demo
// audience breakdowns keyed by the organization id.
type SummaryResponse struct {
	From      string               `json:"from"`
	To        string               `json:"to"`
	Labels    []string             `json:"labels"`
	Dates     []string             `json:"dates"`
	Revenue   []float64            `json:"revenue"`
	Ticks     []float64            `json:"ticks"`
	Total     float64              `json:"total"`
	Synthetic bool                 `json:"synthetic"`
	Audience  int                  `json:"audience"`
	Gender    []Segment            `json:"gender"`
	Ages      []analytics.AgeCount `json:"ages"`
}
