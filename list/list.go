// Package list implements the auxiliary list collection of spec.md §4.2: a
// reusable pool of doubly-linked list nodes supporting append, prepend,
// delete-by-id, and forward iteration, all O(1).
//
// A node's index doubles as its ID (spec.md §9 design note), so a
// Collection is just two parallel prev/next slices sized to the id range
// it serves. Three independent Collections back the engine's three list
// roles — pertinent bicomps, separated DFS children, forward arcs — since
// spec.md invariant 4 allows a DFS-child ID to appear in at most one list
// per role simultaneously, which one shared pool indexed by raw ID could
// not represent (the same child ID can be the pertinent list member of one
// vertex while also the separated list member of another, at once).
package list

// None is the "no such id" / "empty list" sentinel, matching pgraph.None.
const None = -1

// Collection is a pool of circular doubly-linked list nodes, indexed
// directly by id. Capacity must cover every id ever passed to its methods.
type Collection struct {
	prev []int
	next []int
}

// NewCollection allocates a Collection serving ids in [0, capacity).
func NewCollection(capacity int) *Collection {
	c := &Collection{
		prev: make([]int, capacity),
		next: make([]int, capacity),
	}
	for i := range c.prev {
		c.prev[i] = None
		c.next[i] = None
	}
	return c
}

// Append inserts id at the end of the list headed by head (i.e.
// immediately before head in traversal order) and returns the list's
// (possibly unchanged) head.
//
// Complexity: O(1).
func (c *Collection) Append(head, id int) int {
	if head == None {
		c.prev[id] = id
		c.next[id] = id
		return id
	}

	tail := c.prev[head]
	c.next[tail] = id
	c.prev[id] = tail
	c.next[id] = head
	c.prev[head] = id

	return head
}

// Prepend inserts id at the start of the list headed by head and returns
// the new head, which is id.
//
// Complexity: O(1).
func (c *Collection) Prepend(head, id int) int {
	if head == None {
		c.prev[id] = id
		c.next[id] = id
		return id
	}

	tail := c.prev[head]
	c.next[tail] = id
	c.prev[id] = tail
	c.next[id] = head
	c.prev[head] = id

	return id
}

// Delete removes id from the list headed by head and returns the list's
// (possibly changed) new head, or None if the list becomes empty.
//
// Complexity: O(1). id must currently be a member of the list; deleting a
// non-member corrupts the pool.
func (c *Collection) Delete(head, id int) int {
	n := c.next[id]

	newHead := head
	if n == id {
		// Singleton list.
		newHead = None
	} else {
		p := c.prev[id]
		c.next[p] = n
		c.prev[n] = p
		if id == head {
			newHead = n
		}
	}

	c.prev[id] = None
	c.next[id] = None

	return newHead
}

// Next returns the id following id in the list headed by head, or None if
// that would wrap back to head — i.e. Next implements "one full tour"
// iteration starting at head:
//
//	for cur := head; cur != list.None; cur = coll.Next(head, cur) { ... }
//
// Complexity: O(1).
func (c *Collection) Next(head, id int) int {
	n := c.next[id]
	if n == head {
		return None
	}
	return n
}
