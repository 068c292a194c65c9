package driver

import "container/heap"

// priorityQueue orders MemoKeys (startPos desc, clauseIdx asc): the
// matcher works right-to-left across the input so that, by the time it
// revisits a position, everything to its right has already reached a
// fixpoint, and within a position it prefers a clause's subclauses
// (lower ClauseIdx, per the reverse-topological numbering
// grammar.Prepare assigns) before the clause itself.
type priorityQueue []MemoKey

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.StartPos != b.StartPos {
		return a.StartPos > b.StartPos
	}
	return a.Clause.ClauseIdx < b.Clause.ClauseIdx
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) { *pq = append(*pq, x.(MemoKey)) }

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// workQueue wraps priorityQueue with membership tracking, so pushing
// the same (clause, startPos) pair twice before it's popped is a
// no-op instead of queuing duplicate work.
type workQueue struct {
	pq     priorityQueue
	queued map[MemoKey]bool
}

func newWorkQueue() *workQueue {
	q := &workQueue{queued: map[MemoKey]bool{}}
	heap.Init(&q.pq)
	return q
}

func (q *workQueue) push(k MemoKey) {
	if q.queued[k] {
		return
	}
	q.queued[k] = true
	heap.Push(&q.pq, k)
}

func (q *workQueue) pop() (MemoKey, bool) {
	if q.pq.Len() == 0 {
		return MemoKey{}, false
	}
	k := heap.Pop(&q.pq).(MemoKey)
	delete(q.queued, k)
	return k, true
}

func (q *workQueue) peekStartPos() (int, bool) {
	if q.pq.Len() == 0 {
		return 0, false
	}
	return q.pq[0].StartPos, true
}
