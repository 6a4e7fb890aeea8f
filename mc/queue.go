// Implements the FlowQueue, which holds all cash flows generated during a
// trial that are still awaiting discounting. Flows are inserted as payoffs
// produce them and consumed in time order by the merge engine.

package mc

import (
	"fmt"
	"strings"
)

// FlowQueue is the pending-cash-flow queue of one trial. It is kept sorted
// ascending by time through every insertion, so the merge engine can compare
// its head against the next claim event in O(1).
type FlowQueue struct {
	flows []CashFlow
}

// Insert adds a cash flow, preserving the ascending-time invariant.
// Among equal-time entries, the new flow is placed before already-queued
// ones. Linear insertion is fine at the scale of cash flows per contract;
// swap in a heap if that ever changes.
func (q *FlowQueue) Insert(cf CashFlow) {
	i := 0
	for i < len(q.flows) && q.flows[i].Time.Before(cf.Time) {
		i++
	}
	q.flows = append(q.flows, CashFlow{})
	copy(q.flows[i+1:], q.flows[i:])
	q.flows[i] = cf
}

// Peek returns the earliest pending flow without removing it.
// ok is false if the queue is empty.
func (q *FlowQueue) Peek() (cf CashFlow, ok bool) {
	if len(q.flows) == 0 {
		return CashFlow{}, false
	}
	return q.flows[0], true
}

// Pop removes and returns the earliest pending flow.
// ok is false if the queue is empty.
func (q *FlowQueue) Pop() (cf CashFlow, ok bool) {
	if len(q.flows) == 0 {
		return CashFlow{}, false
	}
	cf = q.flows[0]
	q.flows = q.flows[1:]
	return cf, true
}

// Len returns the number of pending flows.
func (q *FlowQueue) Len() int {
	return len(q.flows)
}

// Items returns the queue contents for iteration, earliest first.
// The returned slice is the queue's internal storage -- callers may iterate
// over it but MUST NOT append to or reslice it.
func (q *FlowQueue) Items() []CashFlow {
	return q.flows
}

func (q *FlowQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, cf := range q.flows {
		sb.WriteString(fmt.Sprintf("%v@%v", cf.Amount, cf.Time))
		if i < len(q.flows)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
