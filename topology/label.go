package topology

import "fmt"

// A Label records the topological position of a graph component relative to
// both input geometries (index 0 is A, index 1 is B). Each geometry gets an
// On location plus Left and Right locations relative to the component's
// direction. Line and point components never populate their sides.
//
// Once a slot holds a concrete location it is never weakened back to None;
// SetLocation enforces that, so merging label information in any order gives
// the same result.
type Label struct {
	locs [2][3]Location
}

// NewLabel returns a label with every slot unset.
func NewLabel() Label {
	var l Label
	for g := 0; g < 2; g++ {
		for p := 0; p < 3; p++ {
			l.locs[g][p] = None
		}
	}
	return l
}

// NewOnLabel returns a label with only the On slot of one geometry set.
func NewOnLabel(geomIndex int, on Location) Label {
	l := NewLabel()
	l.locs[geomIndex][On] = on
	return l
}

// NewAreaLabel returns a label with all three slots of one geometry set, as
// carried by the edges of polygon rings.
func NewAreaLabel(geomIndex int, on, left, right Location) Label {
	l := NewLabel()
	l.locs[geomIndex][On] = on
	l.locs[geomIndex][Left] = left
	l.locs[geomIndex][Right] = right
	return l
}

func (l *Label) Location(geomIndex int, pos Position) Location {
	return l.locs[geomIndex][pos]
}

// SetLocation fills a slot. Assigning None over a concrete location is a
// no-op, so labels only ever gain information.
func (l *Label) SetLocation(geomIndex int, pos Position, loc Location) {
	if loc == None {
		return
	}
	l.locs[geomIndex][pos] = loc
}

// SetAllIfNone fills every unset slot of one geometry with loc.
func (l *Label) SetAllIfNone(geomIndex int, loc Location) {
	for p := On; p <= Right; p++ {
		if l.locs[geomIndex][p] == None {
			l.SetLocation(geomIndex, p, loc)
		}
	}
}

// HasSides reports whether either side slot of the geometry is populated.
func (l *Label) HasSides(geomIndex int) bool {
	return l.locs[geomIndex][Left] != None || l.locs[geomIndex][Right] != None
}

// Flipped returns a copy with Left and Right swapped for both geometries,
// the label an edge end carries when it points against its parent edge.
func (l Label) Flipped() Label {
	f := l
	for g := 0; g < 2; g++ {
		f.locs[g][Left], f.locs[g][Right] = l.locs[g][Right], l.locs[g][Left]
	}
	return f
}

// Merge folds another label in slot by slot, keeping existing information.
// Interior dominates Boundary, which dominates Exterior, matching the
// "at least" semantics of the intersection matrix rows.
func (l *Label) Merge(other Label) {
	for g := 0; g < 2; g++ {
		for p := On; p <= Right; p++ {
			cur := l.locs[g][p]
			in := other.locs[g][p]
			if in == None {
				continue
			}
			if cur == None || in < cur {
				l.locs[g][p] = in
			}
		}
	}
}

func (l Label) String() string {
	a := l.locs[0]
	b := l.locs[1]
	return fmt.Sprintf("A:%c%c%c B:%c%c%c",
		a[On].Symbol(), a[Left].Symbol(), a[Right].Symbol(),
		b[On].Symbol(), b[Left].Symbol(), b[Right].Symbol())
}
