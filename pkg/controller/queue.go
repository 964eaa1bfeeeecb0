package controller

import "github.com/crewkit/squadron/pkg/models"

// pendingStart is one queued admission request.
type pendingStart struct {
	commanderID string
	index       int
	model       models.Model
	priority    models.Priority
	seq         int64
}

// startQueue is a max-heap over (priority, insertion order). Implements
// container/heap.
type startQueue []*pendingStart

func (q startQueue) Len() int { return len(q) }

func (q startQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority > q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q startQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *startQueue) Push(x any) {
	*q = append(*q, x.(*pendingStart))
}

func (q *startQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
