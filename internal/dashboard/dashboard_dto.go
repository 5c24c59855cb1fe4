package dashboard

import "go-hris-admin/internal/view"

// RecentLimit is how many candidates the summary lists.
const RecentLimit = 4

// Stat is one count with its change since the previous baseline. Delta is
// omitted until there is a previous baseline.
type Stat struct {
	Count int  `json:"count"`
	Delta *int `json:"delta,omitempty"`
}

type SummaryResponse struct {
	Employees        Stat                `json:"employees"`
	Departments      Stat                `json:"departments"`
	Companies        Stat                `json:"companies"`
	Candidates       Stat                `json:"candidates"`
	RecentCandidates []view.CandidateRow `json:"recent_candidates"`
	Cycle            uint64              `json:"cycle"`
}
