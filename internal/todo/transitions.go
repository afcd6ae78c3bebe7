package todo

import (
	"strconv"
	"strings"
	"time"
)

// New builds a fresh row set with ids 1..N. The first row is ACTIVE unless
// noActive is set; every other row is PENDING.
func New(items []string, noActive bool) []Row {
	rows := make([]Row, 0, len(items))
	for i, item := range items {
		status := StatusPending
		if i == 0 && !noActive {
			status = StatusActive
		}
		rows = append(rows, Row{
			ID:     strconv.Itoa(i + 1),
			Item:   strings.TrimSpace(item),
			Status: status,
		})
	}
	return rows
}

// Append adds one PENDING row per item with consecutive ids starting at
// NextID(rows).
func Append(rows []Row, items []string) []Row {
	out := cloneRows(rows)
	next := NextID(rows)
	for _, item := range items {
		out = append(out, Row{
			ID:     strconv.Itoa(next),
			Item:   strings.TrimSpace(item),
			Status: StatusPending,
		})
		next++
	}
	return out
}

// Start makes row id the only ACTIVE row. Starting a COMPLETE row requires
// force. notes, when non-nil, replaces the row's notes. changed is false
// when the row was already the sole ACTIVE row and no notes were given.
func Start(rows []Row, id int, notes *string, force bool) (out []Row, changed bool, err error) {
	out = cloneRows(rows)
	target := findByID(out, id)
	if target < 0 {
		return nil, false, Errorf(CodeNotFound, "id not found: %d", id)
	}
	if out[target].Status == StatusComplete && !force {
		return nil, false, Errorf(CodeInvalidTransition,
			"refusing to start COMPLETE item (id=%d); use revert first or pass --force", id)
	}

	for i := range out {
		if i != target && out[i].Status == StatusActive {
			out[i].Status = StatusPending
			out[i].CompletedAt = ""
			changed = true
		}
	}
	if out[target].Status != StatusActive {
		out[target].Status = StatusActive
		out[target].CompletedAt = ""
		changed = true
	}
	if notes != nil {
		out[target].Notes = *notes
		changed = true
	}
	return out, changed, nil
}

// Complete marks row id COMPLETE and stamps it with now. Only an ACTIVE row
// may be completed unless force is set.
func Complete(rows []Row, id int, notes *string, force bool, now time.Time) ([]Row, error) {
	out := cloneRows(rows)
	target := findByID(out, id)
	if target < 0 {
		return nil, Errorf(CodeNotFound, "id not found: %d", id)
	}
	if cur := out[target].Status; cur != StatusActive && !force {
		return nil, Errorf(CodeInvalidTransition,
			"refusing status transition for id=%d: %s -> %s (allowed from %s)", id, cur, StatusComplete, StatusActive)
	}
	markComplete(&out[target], notes, now)
	return out, nil
}

// Revert puts row id back to PENDING from any state.
func Revert(rows []Row, id int, notes *string) ([]Row, error) {
	out := cloneRows(rows)
	target := findByID(out, id)
	if target < 0 {
		return nil, Errorf(CodeNotFound, "id not found: %d", id)
	}
	out[target].Status = StatusPending
	out[target].CompletedAt = ""
	if notes != nil {
		out[target].Notes = *notes
	}
	return out, nil
}

// Advance completes the first ACTIVE row and promotes the first PENDING row
// after it. rows must already be ordered.
func Advance(rows []Row, notes *string, now time.Time) ([]Row, error) {
	out := cloneRows(rows)
	cur := firstActive(out)
	if cur < 0 {
		return nil, Errorf(CodeNoActiveRow, "no %s item found; run start first", StatusActive)
	}
	markComplete(&out[cur], notes, now)
	if next := firstPending(out, cur+1); next >= 0 {
		out[next].Status = StatusActive
		out[next].CompletedAt = ""
	}
	return out, nil
}

func markComplete(r *Row, notes *string, now time.Time) {
	r.Status = StatusComplete
	r.CompletedAt = Stamp(now)
	if notes != nil {
		r.Notes = *notes
	}
}

// Summary is the read-only progress view used by the status command.
type Summary struct {
	Total     int
	Completed int
	HasActive bool
	ActiveID  string // first ACTIVE row in order
}

// Summarize counts rows by state.
func Summarize(rows []Row) Summary {
	s := Summary{Total: len(rows)}
	for _, r := range rows {
		switch r.Status {
		case StatusComplete:
			s.Completed++
		case StatusActive:
			if !s.HasActive {
				s.HasActive = true
				s.ActiveID = r.ID
			}
		}
	}
	return s
}

// CheckCleanup returns nil when the row set may be deleted: it is empty or
// every row is COMPLETE.
func CheckCleanup(rows []Row) error {
	for _, r := range rows {
		if r.Status != StatusComplete {
			return Errorf(CodeNotAllComplete, "not all items are %s; refusing to delete", StatusComplete)
		}
	}
	return nil
}
