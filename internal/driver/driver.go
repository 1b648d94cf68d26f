package driver

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ivlev/path2frames/internal/path"
)

// ErrUnresolvable is returned when the topological walk cannot account for
// every layer, which means a cycle survived earlier checks.
var ErrUnresolvable = errors.New("driver: topological order incomplete")

// CycleError reports a dependency loop between layers, fatal for the whole
// resolution request.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("driver: dependency cycle: %s", strings.Join(e.Path, " -> "))
}

// Node declares that the named layer inherits motion from Target. An empty
// Target means the layer animates on its own.
type Node struct {
	Name       string
	Target     string
	DeltaScale float64
}

// Graph is the driver dependency graph for a single resolution request.
// Layer names must be unique; the caller validates that before building.
type Graph struct {
	order    []string
	nodes    map[string]*Node
	children map[string][]string
}

// Build assembles the graph in declaration order. A target that does not
// match any known layer is dropped with a warning and the layer animates
// un-driven.
func Build(nodes []Node) *Graph {
	g := &Graph{
		nodes:    make(map[string]*Node, len(nodes)),
		children: make(map[string][]string),
	}
	for i := range nodes {
		n := nodes[i]
		g.order = append(g.order, n.Name)
		g.nodes[n.Name] = &n
	}
	for _, name := range g.order {
		n := g.nodes[name]
		if n.Target == "" {
			continue
		}
		if _, known := g.nodes[n.Target]; !known {
			log.Printf("[!] Драйвер %q для слоя %q не найден, слой анимируется без смещения", n.Target, n.Name)
			n.Target = ""
			continue
		}
		g.children[n.Target] = append(g.children[n.Target], n.Name)
	}
	return g
}

// Len returns the number of layers in the graph.
func (g *Graph) Len() int { return len(g.order) }

// Relation reports who drives the named layer and with what delta scale.
// The target is empty for un-driven layers and dropped dangling references.
func (g *Graph) Relation(name string) (target string, scale float64) {
	n, ok := g.nodes[name]
	if !ok || n.Target == "" {
		return "", 0
	}
	return n.Target, n.DeltaScale
}

// DetectCycle walks the graph depth-first and reconstructs the offending
// loop when an edge points back into the active stack.
func (g *Graph) DetectCycle() error {
	const (
		unseen = iota
		active
		done
	)
	state := make(map[string]int, len(g.order))
	var stack []string

	var walk func(name string) *CycleError
	walk = func(name string) *CycleError {
		state[name] = active
		stack = append(stack, name)
		for _, next := range g.children[name] {
			switch state[next] {
			case active:
				at := 0
				for i, s := range stack {
					if s == next {
						at = i
						break
					}
				}
				cyc := append(append([]string{}, stack[at:]...), next)
				return &CycleError{Path: cyc}
			case unseen:
				if err := walk(next); err != nil {
					return err
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[name] = done
		return nil
	}

	for _, name := range g.order {
		if state[name] == unseen {
			if err := walk(name); err != nil {
				return err
			}
		}
	}
	return nil
}

// TopoOrder returns the layers with every driver ahead of its dependents,
// via Kahn's algorithm. Ties follow declaration order through a FIFO queue.
func (g *Graph) TopoOrder() ([]string, error) {
	indegree := make(map[string]int, len(g.order))
	for _, kids := range g.children {
		for _, k := range kids {
			indegree[k]++
		}
	}

	var queue []string
	for _, name := range g.order {
		if indegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	out := make([]string, 0, len(g.order))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		out = append(out, name)
		for _, k := range g.children[name] {
			indegree[k]--
			if indegree[k] == 0 {
				queue = append(queue, k)
			}
		}
	}
	if len(out) != len(g.order) {
		return nil, fmt.Errorf("%w: учтено %d из %d слоёв", ErrUnresolvable, len(out), len(g.order))
	}
	return out, nil
}

// Mermaid renders the graph as a mermaid flowchart for scenario debugging.
func (g *Graph) Mermaid() string {
	var b strings.Builder
	b.WriteString("graph TD\n")
	for _, name := range g.order {
		n := g.nodes[name]
		if n.Target == "" {
			fmt.Fprintf(&b, "    %s[\"%s\"]\n", mermaidID(name), name)
			continue
		}
		fmt.Fprintf(&b, "    %s[\"%s\"] -->|x%.2g| %s[\"%s\"]\n",
			mermaidID(n.Target), n.Target, n.DeltaScale, mermaidID(name), name)
	}
	return b.String()
}

func mermaidID(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "layer"
	}
	return b.String()
}

// ApplyOffset adds the source path's world-space motion, measured against its
// first frame and scaled, onto the layer's own frames. An empty source means
// zero offset.
func ApplyOffset(frames, source []path.Point, scale float64) []path.Point {
	if len(frames) == 0 || len(source) == 0 {
		return frames
	}
	ref := source[0]
	out := path.Clone(frames)
	for i := range out {
		j := i
		if j > len(source)-1 {
			j = len(source) - 1
		}
		out[i].X += (source[j].X - ref.X) * scale
		out[i].Y += (source[j].Y - ref.Y) * scale
	}
	return out
}
