// Package scene holds owner types whose state is exposed through property
// handles: a fixed-capacity Scene of Nodes, a Camera and an orbit controller.
package scene

import "github.com/google/uuid"

// Scene is a fixed-capacity collection of nodes plus a camera.
type Scene struct {
	Camera Camera

	nodes []Node
	alive []bool
}

// CreateScene allocates a scene with a fixed node capacity.
func CreateScene(maxNodes int) *Scene {
	if maxNodes < 0 {
		maxNodes = 0
	}
	return &Scene{
		Camera: defaultCamera(),
		nodes:  make([]Node, maxNodes),
		alive:  make([]bool, maxNodes),
	}
}

// AddNode places a new node in the first free slot. It reports false when the
// scene is full.
func (s *Scene) AddNode(name string) (*Node, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.nodes {
		if s.alive[i] {
			continue
		}
		s.nodes[i] = newNode(name)
		s.alive[i] = true
		return &s.nodes[i], true
	}
	return nil, false
}

// Node returns the node in slot i, or nil if the slot is empty.
func (s *Scene) Node(i int) *Node {
	if s == nil || i < 0 || i >= len(s.nodes) || !s.alive[i] {
		return nil
	}
	return &s.nodes[i]
}

// Find returns the first node with the given name.
func (s *Scene) Find(name string) *Node {
	var found *Node
	s.Each(func(_ int, n *Node) bool {
		if n.name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindID returns the node with the given id.
func (s *Scene) FindID(id uuid.UUID) *Node {
	var found *Node
	s.Each(func(_ int, n *Node) bool {
		if n.id == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// RemoveNode clears slot i.
func (s *Scene) RemoveNode(i int) {
	if s == nil || i < 0 || i >= len(s.nodes) {
		return
	}
	s.alive[i] = false
	s.nodes[i] = Node{}
}

// Each calls fn for every live node in slot order until fn returns false.
func (s *Scene) Each(fn func(i int, n *Node) bool) {
	if s == nil {
		return
	}
	for i := range s.nodes {
		if !s.alive[i] {
			continue
		}
		if !fn(i, &s.nodes[i]) {
			return
		}
	}
}

// Len returns the number of live nodes.
func (s *Scene) Len() int {
	n := 0
	s.Each(func(int, *Node) bool {
		n++
		return true
	})
	return n
}

// Cap returns the node capacity.
func (s *Scene) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.nodes)
}
