package topology

// Noder splits labeled edges so that edges of either geometry meet other
// edges only at shared endpoints. The relate engine assumes this holds for
// everything it inserts into the graph; violating it yields undefined
// topological results. Split edges must carry their parent's geometry index
// and label, and intersection coordinates must be snapped to identical bit
// patterns on both geometries.
//
// Noding itself is a separate subsystem. The engine only defines the
// contract and ships a pass-through for input that is already noded.
type Noder interface {
	Node(edges []*Edge) []*Edge
}

// PassthroughNoder returns the edges untouched. It is the default, and is
// correct whenever every mutual contact of the two geometries happens at a
// shared vertex: the graph builder emits one edge per segment, so every
// vertex is an edge endpoint.
type PassthroughNoder struct{}

func (PassthroughNoder) Node(edges []*Edge) []*Edge {
	return edges
}
