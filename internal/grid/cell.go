package grid

import "fmt"

// CellState is the value held by a single cell.
type CellState uint8

const (
	// Off marks a dead cell.
	Off CellState = iota
	// On marks a live cell.
	On
	// Invalid is returned by Get when the grid is in a corrupted state. It is
	// unreachable under correct construction and mutation.
	Invalid
)

// String returns a readable name for the cell state.
func (s CellState) String() string {
	switch s {
	case Off:
		return "off"
	case On:
		return "on"
	case Invalid:
		return "invalid"
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// Policy selects how reads and writes outside [0,W)x[0,H) are resolved.
type Policy uint8

const (
	// AllOff treats every out-of-bounds cell as permanently off.
	AllOff Policy = iota
	// AllOn treats every out-of-bounds cell as permanently on.
	AllOn
	// Torus wraps coordinates around both edges, connecting the grid into a
	// torus.
	Torus
)

// String returns the flag-style name of the policy.
func (p Policy) String() string {
	switch p {
	case AllOff:
		return "off"
	case AllOn:
		return "on"
	case Torus:
		return "torus"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy converts a flag-style name into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "off":
		return AllOff, nil
	case "on":
		return AllOn, nil
	case "torus", "wrap":
		return Torus, nil
	}
	return AllOff, fmt.Errorf("grid: unknown policy %q, valid values are off, on and torus", s)
}
