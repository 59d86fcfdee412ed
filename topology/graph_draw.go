package topology

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Debug rendering of a topology graph: geometry A's edges in cyan, B's in
// orange, nodes as white dots. Intended for eyeballing noding and node
// placement while debugging, not for production output.

const dbgDrawPadding = 20

func (g *Graph) DebugDraw(scale float64) {
	path := "/tmp/topology_graph.png"
	if err := g.DrawPNG(path, scale); err != nil {
		return
	}
	imgcat.CatFile(path, os.Stdout)
}

func (g *Graph) DrawPNG(path string, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, e := range g.edges {
		for _, p := range e.Coords {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	for _, n := range g.nodes {
		minX = math.Min(minX, n.Coord.X)
		minY = math.Min(minY, n.Coord.Y)
		maxX = math.Max(maxX, n.Coord.X)
		maxY = math.Max(maxY, n.Coord.Y)
	}
	if minX > maxX {
		// Nothing to draw.
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, e := range g.edges {
		c.MoveTo(e.Coords[0].X, e.Coords[0].Y)
		for _, p := range e.Coords[1:] {
			c.LineTo(p.X, p.Y)
		}
		if e.Geom == 0 {
			c.SetRGB(0, 1, 1)
		} else {
			c.SetRGB(1, 0.6, 0)
		}
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, n := range g.nodes {
		c.DrawCircle(n.Coord.X, n.Coord.Y, 3/scale)
		c.Fill()
	}

	return c.SavePNG(path)
}
