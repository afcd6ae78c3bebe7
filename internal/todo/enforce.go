package todo

// Enforce orders rows and leaves at most one ACTIVE row: the first one in
// order is kept and every later ACTIVE row goes back to PENDING. When no
// row is ACTIVE and promoteIfNone is set, the first PENDING row becomes
// ACTIVE. The input slice is not modified. changed reports whether anything
// differs from the ordered input, so callers can skip a write.
func Enforce(rows []Row, promoteIfNone bool) (out []Row, changed bool) {
	out = Order(rows)

	var active []int
	for i := range out {
		if out[i].Status == StatusActive {
			active = append(active, i)
		}
	}

	if len(active) > 1 {
		for _, i := range active[1:] {
			out[i].Status = StatusPending
			out[i].CompletedAt = ""
			changed = true
		}
		keep := active[0]
		if out[keep].CompletedAt != "" {
			out[keep].CompletedAt = ""
			changed = true
		}
	}

	if len(active) == 0 && promoteIfNone {
		if i := firstPending(out, 0); i >= 0 {
			out[i].Status = StatusActive
			out[i].CompletedAt = ""
			changed = true
		}
	}
	return out, changed
}

// ActiveCount returns the number of ACTIVE rows.
func ActiveCount(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.Status == StatusActive {
			n++
		}
	}
	return n
}

// firstActive returns the index of the first ACTIVE row, or -1.
func firstActive(rows []Row) int {
	for i := range rows {
		if rows[i].Status == StatusActive {
			return i
		}
	}
	return -1
}

// firstPending returns the index of the first PENDING row at or after from, or -1.
func firstPending(rows []Row, from int) int {
	for i := from; i < len(rows); i++ {
		if rows[i].Status == StatusPending {
			return i
		}
	}
	return -1
}
