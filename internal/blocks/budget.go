package blocks

import "time"

// deadline is the single wall-clock budget threaded through a generation
// call. It is checked at the suspension points of the pipeline: once per
// attempt and once per reverse-fill assignment step. A zero deadline never
// expires.
type deadline struct {
	at time.Time
}

func newDeadline(budget time.Duration) deadline {
	if budget <= 0 {
		return deadline{}
	}
	return deadline{at: time.Now().Add(budget)}
}

func (d deadline) expired() bool {
	return !d.at.IsZero() && time.Now().After(d.at)
}
