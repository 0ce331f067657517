package model

import (
	"sort"
	"sync"
)

// RootID is the id of the synthetic canvas-root element returned by
// GetRoot. It owns every element whose ParentID is empty.
const RootID = "__root__"

// Registry is the thread-safe owner of every Element and Connection in a
// diagram. It exposes a read-only "element registry" interface (Get,
// GetAll, Filter, GetRoot) plus the mutation primitives that only
// github.com/katalvlaran/bpmnlayout/modeler is expected to call.
//
// Registry uses two locks, one per map it owns: muElements guards the
// element map, muConnections guards the connection map. Most read paths
// only need one of the two.
type Registry struct {
	muElements   sync.RWMutex
	elements     map[string]*Element
	muConnections sync.RWMutex
	connections  map[string]*Connection
}

// NewRegistry returns an empty Registry, seeded with the synthetic canvas
// root element (Kind KindInfrastructure, ID RootID).
func NewRegistry() *Registry {
	r := &Registry{
		elements:    make(map[string]*Element),
		connections: make(map[string]*Connection),
	}
	r.elements[RootID] = &Element{ID: RootID, Kind: KindInfrastructure}
	return r
}

// AddElement inserts e. Returns ErrDuplicateID if e.ID is already present.
func (r *Registry) AddElement(e *Element) error {
	r.muElements.Lock()
	defer r.muElements.Unlock()

	if _, exists := r.elements[e.ID]; exists {
		return ErrDuplicateID
	}
	r.elements[e.ID] = e
	return nil
}

// AddConnection inserts c. Returns ErrDuplicateID if c.ID is already
// present, or ErrInvalidWaypoints if c has fewer than 2 waypoints.
func (r *Registry) AddConnection(c *Connection) error {
	if len(c.Waypoints) < 2 {
		return ErrInvalidWaypoints
	}

	r.muConnections.Lock()
	defer r.muConnections.Unlock()

	if _, exists := r.connections[c.ID]; exists {
		return ErrDuplicateID
	}
	r.connections[c.ID] = c
	return nil
}

// Get returns the element with id, or (nil, false) if absent.
func (r *Registry) Get(id string) (*Element, bool) {
	r.muElements.RLock()
	defer r.muElements.RUnlock()

	e, ok := r.elements[id]
	return e, ok
}

// GetConnection returns the connection with id, or (nil, false) if absent.
func (r *Registry) GetConnection(id string) (*Connection, bool) {
	r.muConnections.RLock()
	defer r.muConnections.RUnlock()

	c, ok := r.connections[id]
	return c, ok
}

// GetAll returns every element in the registry, in id-sorted order for
// determinism, EXCLUDING the synthetic canvas root.
func (r *Registry) GetAll() []*Element {
	r.muElements.RLock()
	defer r.muElements.RUnlock()

	out := make([]*Element, 0, len(r.elements))
	for id, e := range r.elements {
		if id == RootID {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AllConnections returns every connection in the registry, in id-sorted
// order for determinism.
func (r *Registry) AllConnections() []*Connection {
	r.muConnections.RLock()
	defer r.muConnections.RUnlock()

	out := make([]*Connection, 0, len(r.connections))
	for _, c := range r.connections {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Filter returns every element for which pred returns true, id-sorted.
func (r *Registry) Filter(pred func(*Element) bool) []*Element {
	out := make([]*Element, 0)
	for _, e := range r.GetAll() {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// FilterConnections returns every connection for which pred returns true,
// id-sorted.
func (r *Registry) FilterConnections(pred func(*Connection) bool) []*Connection {
	out := make([]*Connection, 0)
	for _, c := range r.AllConnections() {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// GetRoot returns the synthetic canvas-root element.
func (r *Registry) GetRoot() *Element {
	root, _ := r.Get(RootID)
	return root
}

// Children returns the elements whose ParentID equals parentID, id-sorted.
// Pass RootID (or "") to get the top-level participants/processes.
func (r *Registry) Children(parentID string) []*Element {
	if parentID == "" {
		parentID = RootID
	}
	return r.Filter(func(e *Element) bool {
		return e.ParentID == parentID || (parentID == RootID && e.ParentID == "")
	})
}

// RemoveElement deletes the element with id, if present, and cascades: any
// connection whose source or target is id is also removed, since
// connection endpoints are weak references rather than owning pointers.
func (r *Registry) RemoveElement(id string) {
	r.muElements.Lock()
	delete(r.elements, id)
	r.muElements.Unlock()

	r.muConnections.Lock()
	defer r.muConnections.Unlock()
	for cid, c := range r.connections {
		if c.SourceID == id || c.TargetID == id {
			delete(r.connections, cid)
		}
	}
}

// Incoming returns every connection whose TargetID equals id, id-sorted.
func (r *Registry) Incoming(id string) []*Connection {
	return r.FilterConnections(func(c *Connection) bool { return c.TargetID == id })
}

// Outgoing returns every connection whose SourceID equals id, id-sorted.
func (r *Registry) Outgoing(id string) []*Connection {
	return r.FilterConnections(func(c *Connection) bool { return c.SourceID == id })
}
