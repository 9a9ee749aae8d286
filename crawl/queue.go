// Package crawl: BFS queue with deduplication.
// Maintains a visited set so each page of a site is fetched once.
package crawl

// Queue is a BFS queue with URL deduplication.
type Queue struct {
	items   []string
	visited map[string]bool
	idx     int // current read position
}

// NewQueue creates a Queue seeded with the given URLs.
func NewQueue(seeds ...string) *Queue {
	q := &Queue{visited: make(map[string]bool)}
	for _, s := range seeds {
		q.Add(s)
	}
	return q
}

// Add enqueues a URL if it hasn't been seen before and reports whether it
// was added.
func (q *Queue) Add(u string) bool {
	if q.visited[u] {
		return false
	}
	q.visited[u] = true
	q.items = append(q.items, u)
	return true
}

// HasNext returns true if there are unprocessed URLs.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed URL and advances the pointer.
func (q *Queue) Next() string {
	u := q.items[q.idx]
	q.idx++
	return u
}

// Processed returns how many URLs have been taken from the queue.
func (q *Queue) Processed() int {
	return q.idx
}

// Seen returns the total number of unique URLs enqueued.
func (q *Queue) Seen() int {
	return len(q.visited)
}
