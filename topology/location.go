package topology

// Location describes where a point or edge sits relative to one geometry.
// Interior, Boundary and Exterior double as the row and column indices of the
// DE-9IM intersection matrix.
type Location int8

const (
	Interior Location = iota
	Boundary
	Exterior
	// None marks a location that has not been determined yet.
	None
)

func (l Location) String() string {
	switch l {
	case Interior:
		return "Interior"
	case Boundary:
		return "Boundary"
	case Exterior:
		return "Exterior"
	case None:
		return "None"
	}
	return "Invalid"
}

// Symbol gives the single-character form used in debug dumps: i, b, e or -.
func (l Location) Symbol() byte {
	switch l {
	case Interior:
		return 'i'
	case Boundary:
		return 'b'
	case Exterior:
		return 'e'
	}
	return '-'
}

// Position selects one of the three location slots an edge carries for each
// geometry: at the edge itself, or on either side of its direction.
type Position int8

const (
	On Position = iota
	Left
	Right
)

// Opposite flips Left and Right. On is its own opposite.
func (p Position) Opposite() Position {
	switch p {
	case Left:
		return Right
	case Right:
		return Left
	}
	return p
}
