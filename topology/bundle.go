package topology

import (
	"fmt"
	"strings"
)

// EdgeEndBundle collects all edge ends at one node that leave in exactly the
// same direction: coincident edges of either geometry collapse into one
// bundle with a single merged label. A bundle always has at least one member.
type EdgeEndBundle struct {
	Ends  []*EdgeEnd
	Label Label
}

func newEdgeEndBundle(e *EdgeEnd) *EdgeEndBundle {
	return &EdgeEndBundle{Ends: []*EdgeEnd{e}, Label: NewLabel()}
}

// rep is the member whose geometry defines the bundle's direction.
func (b *EdgeEndBundle) rep() *EdgeEnd {
	return b.Ends[0]
}

func (b *EdgeEndBundle) insert(e *EdgeEnd) {
	b.Ends = append(b.Ends, e)
}

// hasGeometry reports whether any member end belongs to the given geometry.
func (b *EdgeEndBundle) hasGeometry(geomIndex int) bool {
	for _, e := range b.Ends {
		if e.Edge.Geom == geomIndex {
			return true
		}
	}
	return false
}

// computeLabel merges the member labels into the bundle label. The On
// location of each geometry is Boundary or Interior depending on how many
// boundary ends the bundle holds and what the boundary rule makes of that
// count (coincident duplicate rings can collapse a boundary away under the
// mod-2 rule). Side locations are OR-combined with Interior dominating.
func (b *EdgeEndBundle) computeLabel(rule BoundaryNodeRule) {
	b.Label = NewLabel()
	for g := 0; g < 2; g++ {
		b.computeLabelOn(g, rule)
		b.computeLabelSide(g, Left)
		b.computeLabelSide(g, Right)
	}
}

func (b *EdgeEndBundle) computeLabelOn(geomIndex int, rule BoundaryNodeRule) {
	boundaryCount := 0
	foundInterior := false
	for _, e := range b.Ends {
		switch e.Label.Location(geomIndex, On) {
		case Boundary:
			boundaryCount++
		case Interior:
			foundInterior = true
		}
	}
	loc := None
	if foundInterior {
		loc = Interior
	}
	if boundaryCount > 0 {
		loc = boundaryLocation(rule, boundaryCount)
	}
	b.Label.SetLocation(geomIndex, On, loc)
}

func (b *EdgeEndBundle) computeLabelSide(geomIndex int, side Position) {
	for _, e := range b.Ends {
		switch e.Label.Location(geomIndex, side) {
		case Interior:
			b.Label.SetLocation(geomIndex, side, Interior)
			return
		case Exterior:
			b.Label.SetLocation(geomIndex, side, Exterior)
		}
	}
}

// updateIM folds the bundle's resolved label into the matrix: the directions
// themselves are one-dimensional, the regions on either side two-dimensional.
func (b *EdgeEndBundle) updateIM(im *IntersectionMatrix) {
	updateMatrixFromLabel(b.Label, im)
}

// updateMatrixFromLabel is shared between bundles and isolated edges.
func updateMatrixFromLabel(label Label, im *IntersectionMatrix) {
	im.SetAtLeastIfValid(label.Location(0, On), label.Location(1, On), DimLine)
	im.SetAtLeastIfValid(label.Location(0, Left), label.Location(1, Left), DimArea)
	im.SetAtLeastIfValid(label.Location(0, Right), label.Location(1, Right), DimArea)
}

func (b *EdgeEndBundle) String() string {
	members := make([]string, len(b.Ends))
	for i, e := range b.Ends {
		members[i] = e.String()
	}
	return fmt.Sprintf("Bundle{%s | %s}", b.Label.String(), strings.Join(members, ", "))
}
