package domain

// Node is one position in a generation tree.
// It holds a candidate payload, its acceptance status and the children proposed beneath it.
// The payload never changes after creation; only the status fields (ended, rejection) do.
type Node[T any] struct {
	payload    T
	hasPayload bool

	// parent is a non-owning back reference. For the seed node of a speculative tree it may
	// point into a committed chain that does not list this node among its children.
	parent   *Node[T]
	children []*Node[T]

	ended     bool
	rejection Rejection
}

// NewRoot creates a virtual anchor that carries no payload.
func NewRoot[T any]() *Node[T] {
	return &Node[T]{}
}

// NewNode creates a detached node holding payload.
func NewNode[T any](payload T) *Node[T] {
	return &Node[T]{payload: payload, hasPayload: true}
}

// Attach creates a node holding payload whose history continues from parent,
// without parent taking ownership of it.
func Attach[T any](parent *Node[T], payload T) *Node[T] {
	n := NewNode(payload)
	n.parent = parent
	return n
}

// Add creates a child holding payload and appends it after the existing children.
func (n *Node[T]) Add(payload T) *Node[T] {
	child := Attach(n, payload)
	n.children = append(n.children, child)
	return child
}

// Payload returns the node's value. The zero value is returned for a virtual root.
func (n *Node[T]) Payload() T {
	return n.payload
}

// HasPayload reports whether the node carries a payload (false only for virtual roots).
func (n *Node[T]) HasPayload() bool {
	return n.hasPayload
}

// Parent returns the node this one was grown or committed from, or nil.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Children returns the children in the order they were proposed.
// The returned slice is a copy; mutating it does not affect the tree.
func (n *Node[T]) Children() []*Node[T] {
	out := make([]*Node[T], len(n.children))
	copy(out, n.children)
	return out
}

// Ended reports whether the node is terminal (harvestable unless rejected).
func (n *Node[T]) Ended() bool {
	return n.ended
}

// Rejected reports whether a veto has been recorded for the node.
func (n *Node[T]) Rejected() bool {
	return n.rejection != nil
}

// Rejection returns the recorded reasons, or nil when the node is not rejected.
func (n *Node[T]) Rejection() Rejection {
	return n.rejection
}

// Reject records reasons on the node. An empty reason list is stored as a single
// unnamed reason so that the node still counts as rejected.
func (n *Node[T]) Reject(reasons Rejection) {
	if len(reasons) == 0 {
		reasons = Rejection{ReasonUnspecified}
	}
	n.rejection = reasons
}

// MarkEnded finalizes the node as terminal.
//
// The children are checked once, at call time: if there is at least one child and every
// child is rejected, the node is rejected too. The check does not cascade to ancestors and
// is not re-evaluated when children are added later.
func (n *Node[T]) MarkEnded() {
	n.ended = true
	if n.allChildrenRejected() {
		n.Reject(Rejection{ReasonAllChildrenRejected})
	}
}

func (n *Node[T]) allChildrenRejected() bool {
	if len(n.children) == 0 {
		return false
	}
	for _, c := range n.children {
		if !c.Rejected() {
			return false
		}
	}
	return true
}

// History returns the payloads of the node's ancestors, oldest first.
// The node's own payload and any payload-less virtual root are excluded.
// It is recomputed on every call by walking parent references.
func (n *Node[T]) History() []T {
	var rev []T
	for p := n.parent; p != nil; p = p.parent {
		if p.hasPayload {
			rev = append(rev, p.payload)
		}
	}
	history := make([]T, len(rev))
	for i, v := range rev {
		history[len(rev)-1-i] = v
	}
	return history
}

// Depth returns the number of parent hops to the top of the tree.
func (n *Node[T]) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Harvest collects the accepted terminal payloads below n in pre-order.
// Rejected children are skipped entirely; ended children contribute their payload;
// any other child is searched recursively.
func (n *Node[T]) Harvest() []T {
	var out []T
	for _, c := range n.children {
		switch {
		case c.Rejected():
		case c.ended:
			out = append(out, c.payload)
		default:
			out = append(out, c.Harvest()...)
		}
	}
	return out
}

// EnumeratePaths lists every payload sequence from n down to a childless node,
// skipping subtrees whose own node is rejected. Unlike Harvest it does not look at
// the ended flag. A payload-less root contributes nothing to the paths.
func (n *Node[T]) EnumeratePaths() [][]T {
	if n.Rejected() {
		return nil
	}
	var prefix []T
	if n.hasPayload {
		prefix = []T{n.payload}
	}
	if len(n.children) == 0 {
		if prefix == nil {
			return nil
		}
		return [][]T{prefix}
	}

	var paths [][]T
	for _, c := range n.children {
		for _, tail := range c.EnumeratePaths() {
			path := make([]T, 0, len(prefix)+len(tail))
			path = append(path, prefix...)
			path = append(path, tail...)
			paths = append(paths, path)
		}
	}
	return paths
}

// Walk visits n and its descendants in pre-order.
// Returning false from fn skips the visited node's children.
func (n *Node[T]) Walk(fn func(*Node[T]) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}
