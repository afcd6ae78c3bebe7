// Package todo implements the task-list state machine: rows, ordering,
// the single-active invariant, and the transitions behind each command.
//
// Every function in this package is pure. It never touches the filesystem;
// callers load rows through a store.Store, apply a transition, and save the
// result.
package todo

import (
	"strconv"
	"strings"
	"time"
)

// Header is the exact CSV header a task file must carry, in order.
var Header = []string{"id", "item", "status", "completed_at", "notes"}

// Status is the lifecycle state of a row.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusActive   Status = "ACTIVE"
	StatusComplete Status = "COMPLETE"
)

// Known reports whether s is one of the three lifecycle states.
// Unknown values read from disk are kept verbatim.
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusActive, StatusComplete:
		return true
	}
	return false
}

// PlanStatus is the status vocabulary of the plan-export payload.
type PlanStatus string

const (
	PlanPending    PlanStatus = "pending"
	PlanInProgress PlanStatus = "in_progress"
	PlanCompleted  PlanStatus = "completed"
)

// PlanStatus maps a row status onto the plan vocabulary.
// Anything that is not COMPLETE or ACTIVE is reported as pending.
func (s Status) PlanStatus() PlanStatus {
	switch Status(strings.TrimSpace(string(s))) {
	case StatusComplete:
		return PlanCompleted
	case StatusActive:
		return PlanInProgress
	default:
		return PlanPending
	}
}

// Row is one task record.
type Row struct {
	ID          string
	Item        string
	Status      Status
	CompletedAt string
	Notes       string
}

// Record returns the row as CSV fields in Header order.
func (r Row) Record() []string {
	return []string{r.ID, r.Item, string(r.Status), r.CompletedAt, r.Notes}
}

// RowFromRecord builds a row from CSV fields in Header order.
// Missing trailing fields are treated as empty.
func RowFromRecord(rec []string) Row {
	field := func(i int) string {
		if i < len(rec) {
			return rec[i]
		}
		return ""
	}
	return Row{
		ID:          field(0),
		Item:        field(1),
		Status:      Status(field(2)),
		CompletedAt: field(3),
		Notes:       field(4),
	}
}

// NumericID parses the row id as an integer.
// Surrounding spaces are ignored; ok is false for anything else.
func (r Row) NumericID() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(r.ID))
	if err != nil {
		return 0, false
	}
	return n, true
}

// TimestampLayout is the completed_at format: local time with a numeric
// offset, whole seconds.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// Stamp formats t as a completed_at value.
func Stamp(t time.Time) string {
	return t.Truncate(time.Second).Format(TimestampLayout)
}

// Clock returns the current time. Commands that stamp completed_at take one
// so tests can pin it.
type Clock func() time.Time

// SystemClock is the local wall clock.
func SystemClock() time.Time {
	return time.Now().Local()
}

func cloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	return out
}

func findByID(rows []Row, id int) int {
	want := strconv.Itoa(id)
	for i := range rows {
		if rows[i].ID == want {
			return i
		}
	}
	return -1
}
