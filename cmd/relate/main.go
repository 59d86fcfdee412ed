package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/toposet/relate/topology"
)

// Demo of the relate engine. Input on stdin is two geometries, each a block
// of newline separated "x y" points, separated by a blank line. A one-point
// block is a point, a closed chain (first point equals last) is a polygon
// shell, anything else is a linestring. The two geometries must already be
// noded: wherever they touch, both must have a vertex.

var (
	ruleName = kingpin.Flag("rule", "Boundary node rule: mod2, endpoint, multivalent or monovalent.").Default("mod2").Enum("mod2", "endpoint", "multivalent", "monovalent")
	pattern  = kingpin.Flag("pattern", "DE-9IM pattern to test the result against.").String()
	draw     = kingpin.Flag("draw", "Render the topology graph to the terminal (iTerm2).").Bool()
	dump     = kingpin.Flag("dump", "Dump every node star after labelling.").Bool()
	scale    = kingpin.Flag("scale", "Pixels per coordinate unit for --draw.").Default("40").Float64()
)

var rules = map[string]topology.BoundaryNodeRule{
	"mod2":        topology.Mod2Boundary,
	"endpoint":    topology.EndpointBoundary,
	"multivalent": topology.MultivalentEndpointBoundary,
	"monovalent":  topology.MonovalentEndpointBoundary,
}

func main() {
	kingpin.Parse()

	blocks := readBlocks(os.Stdin)
	if len(blocks) != 2 {
		fmt.Fprintf(os.Stderr, "expected 2 geometries on stdin, got %d\n", len(blocks))
		os.Exit(1)
	}
	a := toGeometry(blocks[0])
	b := toGeometry(blocks[1])

	im, err := run(a, b, rules[*ruleName])
	if err != nil {
		fmt.Fprintf(os.Stderr, "relate failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("DE-9IM: %s\n", aurora.Bold(im.String()))
	if *pattern != "" {
		ok, err := im.Matches(*pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad pattern: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("matches %s: %s\n", *pattern, colorBool(ok))
	}

	dimA, dimB := a.Dimension(), b.Dimension()
	fmt.Printf("intersects: %s\n", colorBool(im.IsIntersects()))
	fmt.Printf("touches:    %s\n", colorBool(im.IsTouches(dimA, dimB)))
	fmt.Printf("crosses:    %s\n", colorBool(im.IsCrosses(dimA, dimB)))
	fmt.Printf("overlaps:   %s\n", colorBool(im.IsOverlaps(dimA, dimB)))
	fmt.Printf("contains:   %s\n", colorBool(im.IsContains()))
	fmt.Printf("within:     %s\n", colorBool(im.IsWithin()))
	fmt.Printf("equals:     %s\n", colorBool(im.IsEquals(dimA, dimB)))
}

// run keeps the computer around between states so the graph is available for
// --draw and --dump, unlike the one-shot public API.
func run(a, b topology.Geometry, rule topology.BoundaryNodeRule) (im *topology.IntersectionMatrix, err error) {
	defer func() {
		if recovered := topology.HandleRelatePanicRecover(recover()); recovered != nil {
			im = nil
			err = recovered
		}
	}()

	c := topology.NewComputer(a, b, rule)
	c.BuildGraph()
	c.LabelGraph()
	if *dump {
		for _, n := range c.Graph().Nodes() {
			fmt.Println(n.String())
		}
	}
	if *draw {
		c.Graph().DebugDraw(*scale)
	}
	c.Aggregate()
	return c.Result(), nil
}

func colorBool(b bool) string {
	if b {
		return aurora.Green("true").String()
	}
	return aurora.Red("false").String()
}

func readBlocks(in *os.File) [][]topology.Coordinate {
	var blocks [][]topology.Coordinate
	var points []topology.Coordinate

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// A blank line ends the current block, if we collected any points.
		if line == "" {
			if len(points) > 0 {
				blocks = append(blocks, points)
				points = nil
			}
			continue
		}

		points = append(points, parsePoint(line))
	}
	if len(points) > 0 {
		blocks = append(blocks, points)
	}
	return blocks
}

func parsePoint(line string) topology.Coordinate {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		fmt.Fprintf(os.Stderr, "cannot parse point %q\n", line)
		os.Exit(1)
	}
	x, errX := strconv.ParseFloat(parts[0], 64)
	y, errY := strconv.ParseFloat(parts[1], 64)
	if errX != nil || errY != nil {
		fmt.Fprintf(os.Stderr, "cannot parse point %q\n", line)
		os.Exit(1)
	}
	return topology.Coordinate{X: x, Y: y}
}

func toGeometry(points []topology.Coordinate) topology.Geometry {
	switch {
	case len(points) == 1:
		return topology.Point{Coordinate: points[0]}
	case len(points) > 3 && points[0].Equals(points[len(points)-1]):
		return topology.Polygon{Shell: points}
	default:
		return topology.LineString(points)
	}
}
