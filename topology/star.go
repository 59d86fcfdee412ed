package topology

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/toposet/relate/dbg"
)

// EdgeEndBundleStar is the ordered fan of edge-end bundles around one node,
// kept strictly counterclockwise starting from the positive x-axis. No two
// bundles share a direction: inserting an end with an existing direction
// merges it into that bundle. The ordering is what makes side-label
// propagation a single linear pass.
type EdgeEndBundleStar struct {
	bundles []*EdgeEndBundle
}

func NewEdgeEndBundleStar() *EdgeEndBundleStar {
	return &EdgeEndBundleStar{}
}

// Insert files an edge end into its angular position, merging into an
// existing bundle when the direction matches exactly.
func (s *EdgeEndBundleStar) Insert(e *EdgeEnd) {
	for i, b := range s.bundles {
		cmp := e.CompareDirection(b.rep())
		if cmp == 0 {
			b.insert(e)
			return
		}
		if cmp < 0 {
			s.bundles = append(s.bundles, nil)
			copy(s.bundles[i+1:], s.bundles[i:])
			s.bundles[i] = newEdgeEndBundle(e)
			return
		}
	}
	s.bundles = append(s.bundles, newEdgeEndBundle(e))
}

func (s *EdgeEndBundleStar) Bundles() []*EdgeEndBundle {
	return s.bundles
}

func (s *EdgeEndBundleStar) Empty() bool {
	return len(s.bundles) == 0
}

// Degree counts the edge ends of one geometry incident to the node, the
// input to the boundary-node rule.
func (s *EdgeEndBundleStar) Degree(geomIndex int) int {
	count := 0
	for _, b := range s.bundles {
		for _, e := range b.Ends {
			if e.Edge.Geom == geomIndex {
				count++
			}
		}
	}
	return count
}

// BoundaryEndCount counts the chain endpoints of one geometry that coincide
// with the node. This is the count the boundary-node rule consumes: a chain
// passing through the node contributes nothing, however many of its segment
// ends meet here.
func (s *EdgeEndBundleStar) BoundaryEndCount(geomIndex int) int {
	count := 0
	for _, b := range s.bundles {
		for _, e := range b.Ends {
			if e.Edge.Geom == geomIndex && e.Edge.terminalAt(e.Origin) {
				count++
			}
		}
	}
	return count
}

// hasGeometry reports whether any bundle holds an end of the geometry.
func (s *EdgeEndBundleStar) hasGeometry(geomIndex int) bool {
	for _, b := range s.bundles {
		if b.hasGeometry(geomIndex) {
			return true
		}
	}
	return false
}

// ComputeLabelling resolves every bundle label. Merged labels are computed
// first, then each geometry's side labels are propagated once around the
// star, and finally any location still unset is filled in: for an area
// geometry that does not touch the node the whole neighborhood shares the
// node's point location, and for a lineal or puntal geometry it is Exterior.
// locate is consulted at most once per geometry.
func (s *EdgeEndBundleStar) ComputeLabelling(rule BoundaryNodeRule, dims [2]int, locate func(geomIndex int, c Coordinate) Location) {
	if s.Empty() {
		fatalf("cannot label an edge end bundle star with no bundles")
	}
	for _, b := range s.bundles {
		b.computeLabel(rule)
	}
	s.propagateSideLabels(0)
	s.propagateSideLabels(1)

	for g := 0; g < 2; g++ {
		fallback := None
		for _, b := range s.bundles {
			if b.Label.Location(g, On) != None {
				continue
			}
			if fallback == None {
				if dims[g] == DimArea {
					fallback = locate(g, b.rep().Origin)
				} else {
					fallback = Exterior
				}
			}
			b.Label.SetLocation(g, On, fallback)
			if dims[g] == DimArea {
				b.Label.SetAllIfNone(g, fallback)
			}
		}
	}
}

// propagateSideLabels walks the star once in CCW order. Crossing a bundle
// that carries side labels for the geometry switches the current region from
// that bundle's right side to its left; bundles without side labels lie
// wholly inside the current region and inherit it. The walk starts from the
// last labelled left side, which is the region the first bundle's right side
// must agree with.
//
// The pass resolves into a snapshot first and assigns afterwards, so a side
// conflict panics before any bundle label has been touched.
func (s *EdgeEndBundleStar) propagateSideLabels(geomIndex int) {
	startLoc := None
	for _, b := range s.bundles {
		if left := b.Label.Location(geomIndex, Left); left != None {
			startLoc = left
		}
	}
	// No side labels at all: nothing to propagate.
	if startLoc == None {
		return
	}

	resolved := make([]Label, len(s.bundles))
	curr := startLoc
	for i, b := range s.bundles {
		label := b.Label
		if label.Location(geomIndex, On) == None {
			label.SetLocation(geomIndex, On, curr)
		}
		if label.HasSides(geomIndex) {
			left := label.Location(geomIndex, Left)
			right := label.Location(geomIndex, Right)
			if left == None || right == None {
				fatalf("single side location on bundle at %v", b.rep().Origin)
			}
			if right != curr {
				fatalf("side location conflict at (%v, %v)", b.rep().Origin.X, b.rep().Origin.Y)
			}
			curr = left
		} else {
			label.SetLocation(geomIndex, Left, curr)
			label.SetLocation(geomIndex, Right, curr)
		}
		resolved[i] = label
	}
	for i, b := range s.bundles {
		b.Label = resolved[i]
	}
}

// UpdateIM folds every bundle's label into the matrix. One pass suffices
// because labelling has already resolved every location.
func (s *EdgeEndBundleStar) UpdateIM(im *IntersectionMatrix) {
	if s.Empty() {
		fatalf("cannot update the matrix from an edge end bundle star with no bundles")
	}
	for _, b := range s.bundles {
		b.updateIM(im)
	}
}

func (s *EdgeEndBundleStar) String() string {
	parts := make([]string, len(s.bundles))
	for i, b := range s.bundles {
		parts[i] = fmt.Sprintf("%s %s", b.dbgName(), b.Label.String())
	}
	return fmt.Sprintf("Star{%s}", strings.Join(parts, " → "))
}

// dbgName colors a bundle by how much of its label is resolved: green when
// complete, red when any location is still unset.
func (b *EdgeEndBundle) dbgName() string {
	name := dbg.Name(b)
	for g := 0; g < 2; g++ {
		if b.Label.Location(g, On) == None {
			return aurora.Red(name).String()
		}
	}
	return aurora.Green(name).String()
}
