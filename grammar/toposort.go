package grammar

import "github.com/go-pika/pika/clause"

// reverseTopoOrder implements spec.md §4.1 step 5: assign every clause
// reachable from roots a ClauseIdx such that, as far as the DAG's
// cycles allow, a clause's subclauses get indices on one side of it.
// Left recursion means the clause graph is only a DAG up to SCC
// collapse, so this runs Tarjan's algorithm (which yields SCCs in
// reverse topological order of the condensation graph as a side
// effect of its stack-unwinding) and flattens each SCC in the order its
// members pop off Tarjan's stack (reverse DFS-discovery order), rather than a Kahn's-algorithm worklist, which has no answer
// for a node whose in-degree never reaches zero.
func reverseTopoOrder(roots []*clause.Clause) []*clause.Clause {
	t := &tarjan{
		index:   map[*clause.Clause]int{},
		low:     map[*clause.Clause]int{},
		onStack: map[*clause.Clause]bool{},
	}
	for _, r := range roots {
		if _, ok := t.index[r]; !ok {
			t.strongConnect(r)
		}
	}
	return t.order
}

type tarjan struct {
	counter int
	index   map[*clause.Clause]int
	low     map[*clause.Clause]int
	onStack map[*clause.Clause]bool
	stack   []*clause.Clause
	order   []*clause.Clause
}

func (t *tarjan) strongConnect(v *clause.Clause) {
	t.index[v] = t.counter
	t.low[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, s := range v.Sub {
		w := s.Clause
		if _, ok := t.index[w]; !ok {
			t.strongConnect(w)
			if t.low[w] < t.low[v] {
				t.low[v] = t.low[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.low[v] {
				t.low[v] = t.index[w]
			}
		}
	}

	if t.low[v] != t.index[v] {
		return
	}
	var scc []*clause.Clause
	for {
		n := len(t.stack) - 1
		w := t.stack[n]
		t.stack = t.stack[:n]
		t.onStack[w] = false
		scc = append(scc, w)
		if w == v {
			break
		}
	}
	t.order = append(t.order, scc...)
}
