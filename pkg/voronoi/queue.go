package voronoi

import "container/heap"

type eventKind uint8

const (
	// circleEvent sorts before siteEvent at an identical position: a vertex
	// is closed before a site sitting exactly on it opens a new arc.
	circleEvent eventKind = iota
	siteEvent
)

// event is a pending sweep stop. y is the sweep coordinate.
//
// For a site event, site is the index of the site. For a circle event, arc
// is the vanishing arc and gen the arc's circle generation when the event
// was scheduled; the event is stale once the generation moves on.
type event struct {
	kind eventKind
	x, y float64
	site int
	arc  int
	gen  uint32
	seq  int
}

// eventQueue is a min-heap of events with lazy invalidation: cancelled
// circle events stay in the heap and are skipped when they surface.
type eventQueue struct {
	items []event
	seq   int
}

func (q *eventQueue) Len() int { return len(q.items) }

func (q *eventQueue) Less(i, j int) bool {
	a, b := &q.items[i], &q.items[j]
	if a.y != b.y {
		return a.y < b.y
	}
	if a.x != b.x {
		return a.x < b.x
	}
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	if a.kind == siteEvent {
		return a.site < b.site
	}
	return a.seq < b.seq
}

func (q *eventQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *eventQueue) Push(x any) { q.items = append(q.items, x.(event)) }

func (q *eventQueue) Pop() any {
	n := len(q.items)
	e := q.items[n-1]
	q.items = q.items[:n-1]
	return e
}

// init loads every site event at once.
func (q *eventQueue) init(sites []Site) {
	q.items = make([]event, 0, 2*len(sites))
	for _, s := range sites {
		q.items = append(q.items, event{kind: siteEvent, x: s.X, y: s.Y, site: s.ID})
	}
	heap.Init(q)
}

func (q *eventQueue) schedule(e event) {
	e.seq = q.seq
	q.seq++
	heap.Push(q, e)
}

func (q *eventQueue) popMin() (event, bool) {
	if len(q.items) == 0 {
		return event{}, false
	}
	return heap.Pop(q).(event), true
}
