package todo

import (
	"errors"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 18, 9, 30, 0, 750_000_000, time.FixedZone("", 2*60*60))

const fixedStamp = "2026-10-18T09:30:00+02:00"

func ptr(s string) *string { return &s }

func ids(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func statuses(rows []Row) []Status {
	out := make([]Status, len(rows))
	for i, r := range rows {
		out[i] = r.Status
	}
	return out
}

// assertInvariants checks the two persisted-state invariants.
func assertInvariants(t *testing.T, rows []Row) {
	t.Helper()
	assert.LessOrEqual(t, ActiveCount(rows), 1, "more than one ACTIVE row")
	for _, r := range rows {
		assert.Equal(t, r.Status == StatusComplete, r.CompletedAt != "",
			"completed_at mismatch for id=%s status=%s", r.ID, r.Status)
	}
}

func TestOrder_NumericThenOthers(t *testing.T) {
	rows := []Row{{ID: "3"}, {ID: "1"}, {ID: "x"}, {ID: "2"}}
	assert.Equal(t, []string{"1", "2", "3", "x"}, ids(Order(rows)))
}

func TestOrder_StableForNonNumericAndDuplicates(t *testing.T) {
	rows := []Row{
		{ID: "b", Item: "first b"},
		{ID: "2", Item: "two-a"},
		{ID: "a"},
		{ID: " 1 "},
		{ID: "2", Item: "two-b"},
		{ID: ""},
	}
	got := Order(rows)
	assert.Equal(t, []string{" 1 ", "2", "2", "b", "a", ""}, ids(got))
	assert.Equal(t, "two-a", got[1].Item)
	assert.Equal(t, "two-b", got[2].Item)
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	rows := []Row{{ID: "2"}, {ID: "1"}}
	_ = Order(rows)
	assert.Equal(t, []string{"2", "1"}, ids(rows))
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, NextID(nil))
	assert.Equal(t, 1, NextID([]Row{{ID: "x"}}))
	assert.Equal(t, 8, NextID([]Row{{ID: "2"}, {ID: "oops"}, {ID: "7"}, {ID: "3"}}))
	assert.Equal(t, 1, NextID([]Row{{ID: "-4"}}))
}

func TestNextID_SaturatesAtMaxInt(t *testing.T) {
	maxID := strconv.Itoa(math.MaxInt)
	assert.Equal(t, math.MaxInt, NextID([]Row{{ID: "5"}, {ID: maxID}}))
	assert.Equal(t, math.MaxInt, NextID([]Row{{ID: maxID}, {ID: "5"}}))
	assert.Equal(t, math.MaxInt, NextID([]Row{{ID: strconv.Itoa(math.MaxInt - 1)}}))

	// Beyond int range the id does not parse and counts as non-numeric.
	assert.Equal(t, 6, NextID([]Row{{ID: "5"}, {ID: "99999999999999999999"}}))
}

func TestStatus_PlanStatusIsTotal(t *testing.T) {
	assert.Equal(t, PlanCompleted, StatusComplete.PlanStatus())
	assert.Equal(t, PlanInProgress, StatusActive.PlanStatus())
	assert.Equal(t, PlanPending, StatusPending.PlanStatus())
	assert.Equal(t, PlanPending, Status("BLOCKED").PlanStatus())
	assert.Equal(t, PlanPending, Status("").PlanStatus())
	assert.False(t, Status("BLOCKED").Known())
	assert.True(t, StatusActive.Known())
}

func TestStamp_TruncatesAndKeepsOffset(t *testing.T) {
	assert.Equal(t, fixedStamp, Stamp(fixedNow))
	utc := time.Date(2026, 1, 2, 3, 4, 5, 999, time.UTC)
	assert.Equal(t, "2026-01-02T03:04:05+00:00", Stamp(utc))
}

func TestRowFromRecord_PadsMissingFields(t *testing.T) {
	r := RowFromRecord([]string{"4", "write docs"})
	assert.Equal(t, Row{ID: "4", Item: "write docs"}, r)
	assert.Equal(t, []string{"4", "write docs", "", "", ""}, r.Record())
}

func TestEnforce_DemotesExtraActiveRows(t *testing.T) {
	rows := []Row{
		{ID: "3", Status: StatusActive},
		{ID: "1", Status: StatusActive, CompletedAt: "stale"},
		{ID: "2", Status: StatusActive},
	}
	got, changed := Enforce(rows, false)
	require.True(t, changed)
	assert.Equal(t, []string{"1", "2", "3"}, ids(got))
	assert.Equal(t, []Status{StatusActive, StatusPending, StatusPending}, statuses(got))
	assert.Empty(t, got[0].CompletedAt)
	assertInvariants(t, got)
}

func TestEnforce_PromotesFirstPending(t *testing.T) {
	rows := []Row{
		{ID: "1", Status: StatusComplete, CompletedAt: fixedStamp},
		{ID: "3", Status: StatusPending},
		{ID: "2", Status: StatusPending},
	}

	got, changed := Enforce(rows, false)
	assert.False(t, changed)
	assert.Equal(t, 0, ActiveCount(got))

	got, changed = Enforce(rows, true)
	require.True(t, changed)
	assert.Equal(t, []Status{StatusComplete, StatusActive, StatusPending}, statuses(got))
	assert.Equal(t, "2", got[1].ID)
}

func TestEnforce_NothingToPromote(t *testing.T) {
	rows := []Row{{ID: "1", Status: StatusComplete, CompletedAt: fixedStamp}}
	got, changed := Enforce(rows, true)
	assert.False(t, changed)
	assert.Equal(t, rows, got)
}

func TestEnforce_Idempotent(t *testing.T) {
	rows := []Row{
		{ID: "2", Status: StatusActive},
		{ID: "1", Status: StatusActive},
		{ID: "x", Status: StatusPending},
	}
	once, _ := Enforce(rows, true)
	twice, changed := Enforce(once, true)
	assert.False(t, changed)
	assert.Equal(t, once, twice)
}

func TestEnforce_DoesNotMutateInput(t *testing.T) {
	rows := []Row{{ID: "1", Status: StatusActive}, {ID: "2", Status: StatusActive}}
	_, _ = Enforce(rows, false)
	assert.Equal(t, StatusActive, rows[1].Status)
}

// Scenario A.
func TestNew_FirstRowActive(t *testing.T) {
	got := New([]string{"a", " b ", "c"}, false)
	assert.Equal(t, []Row{
		{ID: "1", Item: "a", Status: StatusActive},
		{ID: "2", Item: "b", Status: StatusPending},
		{ID: "3", Item: "c", Status: StatusPending},
	}, got)
	assertInvariants(t, got)
}

func TestNew_NoActive(t *testing.T) {
	got := New([]string{"a", "b"}, true)
	assert.Equal(t, []Status{StatusPending, StatusPending}, statuses(got))
	assert.Empty(t, New(nil, false))
}

func TestAppend_ContinuesFromMaxID(t *testing.T) {
	rows := []Row{{ID: "1", Item: "a", Status: StatusActive}, {ID: "5", Item: "e"}, {ID: "n/a"}}
	got := Append(rows, []string{"f", " g"})
	require.Len(t, got, 5)
	assert.Equal(t, Row{ID: "6", Item: "f", Status: StatusPending}, got[3])
	assert.Equal(t, Row{ID: "7", Item: "g", Status: StatusPending}, got[4])
	assert.Len(t, rows, 3)
}

// Scenario E.
func TestStart_DemotesCurrentActive(t *testing.T) {
	rows := New([]string{"a", "b", "c"}, false)
	got, changed, err := Start(rows, 2, nil, false)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []Status{StatusPending, StatusActive, StatusPending}, statuses(got))
	assert.Empty(t, got[0].CompletedAt)
	assertInvariants(t, got)
}

func TestStart_AlreadyActiveIsNoChange(t *testing.T) {
	rows := New([]string{"a", "b"}, false)
	got, changed, err := Start(rows, 1, nil, false)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, rows, got)

	got, changed, err = Start(rows, 1, ptr("looking"), false)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "looking", got[0].Notes)
}

func TestStart_CompleteRowNeedsForce(t *testing.T) {
	rows := []Row{
		{ID: "1", Status: StatusComplete, CompletedAt: fixedStamp},
		{ID: "2", Status: StatusActive},
	}
	_, _, err := Start(rows, 1, nil, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	got, changed, err := Start(rows, 1, nil, true)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []Status{StatusActive, StatusPending}, statuses(got))
	assert.Empty(t, got[0].CompletedAt)
	assertInvariants(t, got)
}

func TestStart_UnknownID(t *testing.T) {
	_, _, err := Start(New([]string{"a"}, false), 9, nil, false)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "id not found: 9", err.Error())
}

// Scenario B.
func TestAdvance_CompletesAndPromotesNext(t *testing.T) {
	rows := New([]string{"a", "b", "c"}, false)
	got, err := Advance(rows, ptr("done quickly"), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []Status{StatusComplete, StatusActive, StatusPending}, statuses(got))
	assert.Equal(t, fixedStamp, got[0].CompletedAt)
	assert.Equal(t, "done quickly", got[0].Notes)
	assert.Equal(t, rows[2], got[2])
	assertInvariants(t, got)
}

func TestAdvance_OnlyPromotesRowsAfterCurrent(t *testing.T) {
	rows := []Row{
		{ID: "1", Status: StatusPending},
		{ID: "2", Status: StatusActive},
		{ID: "3", Status: StatusComplete, CompletedAt: fixedStamp},
	}
	got, err := Advance(rows, nil, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []Status{StatusPending, StatusComplete, StatusComplete}, statuses(got))
}

func TestAdvance_NoActiveRow(t *testing.T) {
	_, err := Advance(New([]string{"a"}, true), nil, fixedNow)
	require.ErrorIs(t, err, ErrNoActiveRow)
}

// Scenario C.
func TestComplete_RequiresActiveUnlessForced(t *testing.T) {
	rows, err := Advance(New([]string{"a", "b", "c"}, false), nil, fixedNow)
	require.NoError(t, err)

	_, err = Complete(rows, 3, nil, false, fixedNow)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Contains(t, err.Error(), "id=3: PENDING -> COMPLETE")

	got, err := Complete(rows, 3, ptr("skipped ahead"), true, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, got[2].Status)
	assert.Equal(t, fixedStamp, got[2].CompletedAt)
	assert.Equal(t, "skipped ahead", got[2].Notes)
	assertInvariants(t, got)
}

func TestComplete_UnknownID(t *testing.T) {
	_, err := Complete(New([]string{"a"}, false), 4, nil, true, fixedNow)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRevert_ClearsTimestamp(t *testing.T) {
	rows := []Row{{ID: "1", Status: StatusComplete, CompletedAt: fixedStamp, Notes: "old"}}
	got, err := Revert(rows, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, Row{ID: "1", Status: StatusPending, Notes: "old"}, got[0])

	got, err = Revert(rows, 1, ptr(""))
	require.NoError(t, err)
	assert.Empty(t, got[0].Notes)

	_, err = Revert(rows, 2, nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSummarize(t *testing.T) {
	rows := []Row{
		{ID: "1", Status: StatusComplete, CompletedAt: fixedStamp},
		{ID: "2", Status: StatusActive},
		{ID: "3", Status: StatusPending},
		{ID: "4", Status: "WEIRD"},
	}
	assert.Equal(t, Summary{Total: 4, Completed: 1, HasActive: true, ActiveID: "2"}, Summarize(rows))
	assert.Equal(t, Summary{}, Summarize(nil))
}

// Scenario D (the decision half; deletion is exercised by the commands).
func TestCheckCleanup(t *testing.T) {
	assert.NoError(t, CheckCleanup(nil))
	assert.NoError(t, CheckCleanup([]Row{{ID: "1", Status: StatusComplete}}))
	err := CheckCleanup([]Row{{ID: "1", Status: StatusComplete}, {ID: "2", Status: StatusPending}})
	assert.ErrorIs(t, err, ErrNotAllComplete)
}

func TestProject_PreviewPromotionDoesNotTouchRows(t *testing.T) {
	rows := []Row{
		{ID: "1", Item: "a", Status: StatusComplete, CompletedAt: fixedStamp},
		{ID: "2", Item: "  ", Status: StatusPending},
		{ID: "3", Item: " c ", Status: StatusPending},
		{ID: "4", Item: "d", Status: "BLOCKED"},
	}
	p := Project(rows, "why")
	assert.Equal(t, Plan{
		Explanation: "why",
		Plan: []PlanStep{
			{Step: "a", Status: PlanCompleted},
			{Step: "c", Status: PlanPending},
			{Step: "d", Status: PlanPending},
		},
	}, p)
	assert.Equal(t, StatusPending, rows[1].Status)
}

func TestProject_PromotesFirstPendingWithLabel(t *testing.T) {
	rows := []Row{
		{ID: "1", Item: "a", Status: StatusPending},
		{ID: "2", Item: "b", Status: StatusPending},
	}
	p := Project(rows, "")
	assert.Equal(t, []PlanStep{
		{Step: "a", Status: PlanInProgress},
		{Step: "b", Status: PlanPending},
	}, p.Plan)
	assert.Equal(t, StatusPending, rows[0].Status)
}

func TestProject_EmptyPlanIsNotNil(t *testing.T) {
	p := Project(nil, "")
	assert.NotNil(t, p.Plan)
	assert.Empty(t, p.Plan)
}

func TestErrors_IsMatchesByCode(t *testing.T) {
	err := Errorf(CodeNotFound, "CSV not found: %s", "/tmp/x.csv")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrAlreadyExists))
	assert.True(t, IsDomain(err))
	assert.False(t, IsDomain(errors.New("disk on fire")))
	assert.Equal(t, "CSV not found: /tmp/x.csv", err.Error())
}
