package saga

// Phase marks whether an operation log entry records the start of a
// forward call or its successful completion. Compensation reacts to
// started entries only; completed entries exist for observability.
type Phase int

const (
	PhaseStarted Phase = iota
	PhaseCompleted
)

// String returns the wire name of the phase.
func (p Phase) String() string {
	if p == PhaseCompleted {
		return "completed"
	}
	return "started"
}

// opLog is the operation log of one saga run: an append-only record of
// stage transitions, read back newest first when compensating. It is
// owned by exactly one saga and never shared, so it needs no locking.
type opLog[E any] struct {
	entries []E
}

// record appends one entry.
func (l *opLog[E]) record(e E) {
	l.entries = append(l.entries, e)
}

// reversed returns the entries in reverse insertion order.
func (l *opLog[E]) reversed() []E {
	out := make([]E, len(l.entries))
	for i, e := range l.entries {
		out[len(out)-1-i] = e
	}
	return out
}
