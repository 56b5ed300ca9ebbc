package domain

// NodeSnapshot is a serializable, recursive view of a Node.
type NodeSnapshot struct {
	Payload   any            `json:"payload,omitempty"`
	Virtual   bool           `json:"virtual,omitempty"`
	Ended     bool           `json:"ended"`
	Rejection Rejection      `json:"rejected,omitempty"`
	Children  []NodeSnapshot `json:"children,omitempty"`
}

// Snapshot copies the subtree rooted at n.
func (n *Node[T]) Snapshot() NodeSnapshot {
	s := NodeSnapshot{
		Virtual:   !n.hasPayload,
		Ended:     n.ended,
		Rejection: n.rejection,
	}
	if n.hasPayload {
		s.Payload = n.payload
	}
	for _, c := range n.children {
		s.Children = append(s.Children, c.Snapshot())
	}
	return s
}
