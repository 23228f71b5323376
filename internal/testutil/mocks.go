package testutil

import (
	"sync"

	"github.com/vnykmshr/goguard/pkg/message"
)

// Evaluation is one guard evaluation seen by a RecordingObserver.
type Evaluation struct {
	Kind message.Kind
	Item string
	Err  error
}

// RecordingObserver records every guard evaluation it is notified of.
// It satisfies guard.Observer and is safe for concurrent use.
type RecordingObserver struct {
	mu    sync.Mutex
	evals []Evaluation
}

// NewRecordingObserver creates an empty RecordingObserver.
func NewRecordingObserver() *RecordingObserver {
	return &RecordingObserver{}
}

// ObserveGuard records the evaluation.
func (r *RecordingObserver) ObserveGuard(kind message.Kind, item string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evals = append(r.evals, Evaluation{Kind: kind, Item: item, Err: err})
}

// Evaluations returns a copy of everything recorded so far.
func (r *RecordingObserver) Evaluations() []Evaluation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Evaluation, len(r.evals))
	copy(out, r.evals)
	return out
}

// Failures returns the number of recorded evaluations that failed.
func (r *RecordingObserver) Failures() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.evals {
		if e.Err != nil {
			n++
		}
	}
	return n
}

// Len returns the number of recorded evaluations.
func (r *RecordingObserver) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.evals)
}

// Reset discards everything recorded.
func (r *RecordingObserver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evals = nil
}
