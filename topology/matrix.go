package topology

import "github.com/pkg/errors"

// Dimension values for matrix cells and geometries: DimEmpty for an empty
// intersection, then point, line and area.
const (
	DimEmpty = -1
	DimPoint = 0
	DimLine  = 1
	DimArea  = 2
)

// IntersectionMatrix is the DE-9IM accumulator: for each pairing of
// (Interior, Boundary, Exterior) of geometry A against geometry B it holds
// the highest dimension observed for that intersection. Cells only ever grow;
// they start at DimEmpty.
type IntersectionMatrix struct {
	cells [3][3]int
}

func NewIntersectionMatrix() *IntersectionMatrix {
	m := &IntersectionMatrix{}
	for i := range m.cells {
		for j := range m.cells[i] {
			m.cells[i][j] = DimEmpty
		}
	}
	return m
}

func (m *IntersectionMatrix) Get(row, col Location) int {
	return m.cells[row][col]
}

func (m *IntersectionMatrix) Set(row, col Location, dim int) {
	m.cells[row][col] = dim
}

// SetAtLeast raises the cell to dim if dim is higher than its current value.
// It is monotonic and idempotent.
func (m *IntersectionMatrix) SetAtLeast(row, col Location, dim int) {
	if m.cells[row][col] < dim {
		m.cells[row][col] = dim
	}
}

// SetAtLeastIfValid is SetAtLeast guarded against unset locations, which show
// up in labels for positions a geometry never touches.
func (m *IntersectionMatrix) SetAtLeastIfValid(row, col Location, dim int) {
	if row <= Exterior && col <= Exterior {
		m.SetAtLeast(row, col, dim)
	}
}

// Transposed returns a new matrix with rows and columns swapped. Relating B
// to A yields the transpose of relating A to B.
func (m *IntersectionMatrix) Transposed() *IntersectionMatrix {
	t := NewIntersectionMatrix()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.cells[j][i] = m.cells[i][j]
		}
	}
	return t
}

// String renders the matrix as the standard nine-character DE-9IM string in
// row-major order, e.g. "FF2FF1212".
func (m *IntersectionMatrix) String() string {
	buf := make([]byte, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			buf = append(buf, dimensionSymbol(m.cells[i][j]))
		}
	}
	return string(buf)
}

func dimensionSymbol(dim int) byte {
	switch dim {
	case DimEmpty:
		return 'F'
	case DimPoint:
		return '0'
	case DimLine:
		return '1'
	case DimArea:
		return '2'
	}
	return '?'
}

// Matches tests the matrix against a nine-character DE-9IM pattern. Pattern
// characters are 0, 1, 2 (exact dimension), T (any non-empty), F (empty) and
// * (don't care). All nine positions must match.
func (m *IntersectionMatrix) Matches(pattern string) (bool, error) {
	if len(pattern) != 9 {
		return false, errors.Errorf("pattern must be 9 characters, got %q", pattern)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ok, err := dimensionMatches(m.cells[i][j], pattern[3*i+j])
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
	}
	return true, nil
}

func dimensionMatches(dim int, sym byte) (bool, error) {
	switch sym {
	case '*':
		return true, nil
	case 'T', 't':
		return dim >= 0, nil
	case 'F', 'f':
		return dim == DimEmpty, nil
	case '0', '1', '2':
		return dim == int(sym-'0'), nil
	}
	return false, errors.Errorf("invalid pattern character %q", string(sym))
}

// MatchesPattern tests a nine-character matrix string (as produced by String)
// against a pattern without running a relate computation.
func MatchesPattern(matrix, pattern string) (bool, error) {
	if len(matrix) != 9 {
		return false, errors.Errorf("matrix must be 9 characters, got %q", matrix)
	}
	if len(pattern) != 9 {
		return false, errors.Errorf("pattern must be 9 characters, got %q", pattern)
	}
	for i := 0; i < 9; i++ {
		dim, err := parseDimensionSymbol(matrix[i])
		if err != nil {
			return false, err
		}
		ok, err := dimensionMatches(dim, pattern[i])
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func parseDimensionSymbol(sym byte) (int, error) {
	switch sym {
	case 'F', 'f':
		return DimEmpty, nil
	case '0', '1', '2':
		return int(sym - '0'), nil
	}
	return 0, errors.Errorf("invalid matrix character %q", string(sym))
}

// The predicate tests below follow the standard DE-9IM definitions. The ones
// whose meaning depends on operand dimensions take them as arguments.

func (m *IntersectionMatrix) IsDisjoint() bool {
	return m.cells[Interior][Interior] == DimEmpty &&
		m.cells[Interior][Boundary] == DimEmpty &&
		m.cells[Boundary][Interior] == DimEmpty &&
		m.cells[Boundary][Boundary] == DimEmpty
}

func (m *IntersectionMatrix) IsIntersects() bool {
	return !m.IsDisjoint()
}

// IsTouches: the geometries meet, but never in their interiors. Not defined
// for point/point input.
func (m *IntersectionMatrix) IsTouches(dimA, dimB int) bool {
	if dimA == DimPoint && dimB == DimPoint {
		return false
	}
	if m.cells[Interior][Interior] != DimEmpty {
		return false
	}
	return m.cells[Interior][Boundary] >= 0 ||
		m.cells[Boundary][Interior] >= 0 ||
		m.cells[Boundary][Boundary] >= 0
}

// IsCrosses: the interiors intersect in a dimension lower than the highest
// possible, and each geometry has interior outside the other where required.
func (m *IntersectionMatrix) IsCrosses(dimA, dimB int) bool {
	switch {
	case dimA < dimB:
		return m.cells[Interior][Interior] >= 0 && m.cells[Interior][Exterior] >= 0
	case dimA > dimB:
		return m.cells[Interior][Interior] >= 0 && m.cells[Exterior][Interior] >= 0
	case dimA == DimLine && dimB == DimLine:
		return m.cells[Interior][Interior] == DimPoint
	}
	return false
}

func (m *IntersectionMatrix) IsWithin() bool {
	return m.cells[Interior][Interior] >= 0 &&
		m.cells[Interior][Exterior] == DimEmpty &&
		m.cells[Boundary][Exterior] == DimEmpty
}

func (m *IntersectionMatrix) IsContains() bool {
	return m.cells[Interior][Interior] >= 0 &&
		m.cells[Exterior][Interior] == DimEmpty &&
		m.cells[Exterior][Boundary] == DimEmpty
}

func (m *IntersectionMatrix) IsCovers() bool {
	hasInt := m.cells[Interior][Interior] >= 0 ||
		m.cells[Interior][Boundary] >= 0 ||
		m.cells[Boundary][Interior] >= 0 ||
		m.cells[Boundary][Boundary] >= 0
	return hasInt &&
		m.cells[Exterior][Interior] == DimEmpty &&
		m.cells[Exterior][Boundary] == DimEmpty
}

func (m *IntersectionMatrix) IsCoveredBy() bool {
	hasInt := m.cells[Interior][Interior] >= 0 ||
		m.cells[Interior][Boundary] >= 0 ||
		m.cells[Boundary][Interior] >= 0 ||
		m.cells[Boundary][Boundary] >= 0
	return hasInt &&
		m.cells[Interior][Exterior] == DimEmpty &&
		m.cells[Boundary][Exterior] == DimEmpty
}

// IsOverlaps: the interiors intersect in their common dimension and each
// geometry has interior outside the other. For lines the shared part must
// itself be a line.
func (m *IntersectionMatrix) IsOverlaps(dimA, dimB int) bool {
	if dimA != dimB {
		return false
	}
	if dimA == DimLine {
		return m.cells[Interior][Interior] == DimLine &&
			m.cells[Interior][Exterior] >= 0 &&
			m.cells[Exterior][Interior] >= 0
	}
	return m.cells[Interior][Interior] >= 0 &&
		m.cells[Interior][Exterior] >= 0 &&
		m.cells[Exterior][Interior] >= 0
}

func (m *IntersectionMatrix) IsEquals(dimA, dimB int) bool {
	if dimA != dimB {
		return false
	}
	return m.cells[Interior][Interior] >= 0 &&
		m.cells[Interior][Exterior] == DimEmpty &&
		m.cells[Boundary][Exterior] == DimEmpty &&
		m.cells[Exterior][Interior] == DimEmpty &&
		m.cells[Exterior][Boundary] == DimEmpty
}
