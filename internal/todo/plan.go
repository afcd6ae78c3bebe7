package todo

import "strings"

// Plan is the plan-export payload.
type Plan struct {
	Explanation string     `json:"explanation"`
	Plan        []PlanStep `json:"plan"`
}

// PlanStep is one entry of a Plan.
type PlanStep struct {
	Step   string     `json:"step"`
	Status PlanStatus `json:"status"`
}

// Project builds the plan payload for rows. When nothing is ACTIVE but
// something is PENDING, the first PENDING row is shown as in_progress. That
// promotion exists only in the returned Plan; rows are never modified, so
// the projection can run ahead of what is persisted. Rows with a blank
// label are left out.
func Project(rows []Row, explanation string) Plan {
	view := cloneRows(rows)
	if firstActive(view) < 0 {
		if i := firstPending(view, 0); i >= 0 {
			view[i].Status = StatusActive
		}
	}

	p := Plan{Explanation: explanation, Plan: []PlanStep{}}
	for _, r := range view {
		step := strings.TrimSpace(r.Item)
		if step == "" {
			continue
		}
		p.Plan = append(p.Plan, PlanStep{Step: step, Status: r.Status.PlanStatus()})
	}
	return p
}
