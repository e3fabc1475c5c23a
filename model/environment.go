package model

import (
	"fmt"

	"github.com/sgfost/pedestrians-with-cognitive-heuristics/geom"
)

// Boundary selects how the edges of the domain behave.
type Boundary int

const (
	// Closed keeps agents inside via walls; positions never wrap.
	Closed Boundary = iota
	// Periodic wraps positions onto a torus and uses minimum-image
	// displacements for agent-agent interactions.
	Periodic
	// Open lets agents leave the bounds freely.
	Open
)

// String returns the config-file name of the boundary kind.
func (b Boundary) String() string {
	switch b {
	case Closed:
		return "closed"
	case Periodic:
		return "periodic"
	case Open:
		return "open"
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// ParseBoundary maps a config-file name to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "closed":
		return Closed, nil
	case "periodic":
		return Periodic, nil
	case "open":
		return Open, nil
	}
	return 0, fmt.Errorf("unknown boundary kind %q", s)
}

// Environment is the static geometry a simulation runs in. It is built
// once per scenario and read-only afterwards.
type Environment struct {
	Walls    []*Wall
	Boundary Boundary
	Bounds   geom.Rect
}
