package mc

import (
	"fmt"
	"strings"
)

// History is the ordered record of observable snapshots accumulated over one
// trial, keyed by observation time. Payoff functions read it to price
// path-dependent claims that need multiple past fixings.
//
// Keys are inserted in non-decreasing order as the merge engine processes
// claim events; recording at an already-present key overwrites it.
type History[S any] struct {
	times map[Time]S
	order []Time // insertion order, ascending
}

// NewHistory creates an empty History.
func NewHistory[S any]() *History[S] {
	return &History[S]{times: make(map[Time]S)}
}

// Record stores the snapshot observed at time t.
// t must not precede the latest recorded time.
func (h *History[S]) Record(t Time, snap S) {
	if _, seen := h.times[t]; !seen {
		if n := len(h.order); n > 0 && t.Before(h.order[n-1]) {
			panic(fmt.Sprintf("History.Record: time %v precedes latest fixing %v", t, h.order[n-1]))
		}
		h.order = append(h.order, t)
	}
	h.times[t] = snap
}

// At returns the snapshot recorded at time t, if any.
func (h *History[S]) At(t Time) (S, bool) {
	snap, ok := h.times[t]
	return snap, ok
}

// Latest returns the most recently recorded snapshot.
// ok is false if nothing has been recorded yet.
func (h *History[S]) Latest() (snap S, ok bool) {
	if len(h.order) == 0 {
		return snap, false
	}
	return h.times[h.order[len(h.order)-1]], true
}

// Times returns the recorded observation times in ascending order.
// The returned slice is the History's internal storage; callers MUST NOT
// modify it.
func (h *History[S]) Times() []Time {
	return h.order
}

// Len returns the number of recorded fixings.
func (h *History[S]) Len() int {
	return len(h.order)
}

func (h *History[S]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, t := range h.order {
		sb.WriteString(fmt.Sprintf("%v: %v", t, h.times[t]))
		if i < len(h.order)-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("}")
	return sb.String()
}
