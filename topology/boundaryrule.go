package topology

// BoundaryNodeRule decides whether a node lies on the boundary of a lineal
// geometry, given how many of that geometry's edge ends are incident to the
// node. It is a pure function of the count; the rule is chosen per relate
// call.
type BoundaryNodeRule int

const (
	// Mod2Boundary is the OGC SFS rule: a node is on the boundary iff an odd
	// number of edges end there.
	Mod2Boundary BoundaryNodeRule = iota
	// EndpointBoundary puts every node with at least one incident edge end on
	// the boundary.
	EndpointBoundary
	// MultivalentEndpointBoundary requires two or more incident edge ends.
	MultivalentEndpointBoundary
	// MonovalentEndpointBoundary requires exactly one incident edge end.
	MonovalentEndpointBoundary
)

// OGCBoundary is the default rule used by the convenience predicates.
const OGCBoundary = Mod2Boundary

func (r BoundaryNodeRule) Valid() bool {
	return r >= Mod2Boundary && r <= MonovalentEndpointBoundary
}

// InBoundary applies the rule to an incident-edge count.
func (r BoundaryNodeRule) InBoundary(count int) bool {
	switch r {
	case Mod2Boundary:
		return count%2 == 1
	case EndpointBoundary:
		return count >= 1
	case MultivalentEndpointBoundary:
		return count >= 2
	case MonovalentEndpointBoundary:
		return count == 1
	}
	fatalf("invalid boundary node rule %d", int(r))
	return false
}

func (r BoundaryNodeRule) String() string {
	switch r {
	case Mod2Boundary:
		return "mod2"
	case EndpointBoundary:
		return "endpoint"
	case MultivalentEndpointBoundary:
		return "multivalent"
	case MonovalentEndpointBoundary:
		return "monovalent"
	}
	return "invalid"
}

// boundaryLocation collapses a rule decision to the location a node or edge
// end takes on its own geometry: Boundary if the rule says so, otherwise the
// point is an interior (pass-through) point of the line.
func boundaryLocation(r BoundaryNodeRule, count int) Location {
	if r.InBoundary(count) {
		return Boundary
	}
	return Interior
}
