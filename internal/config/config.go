package config

import (
	"fmt"
	"strings"
	"sync"
)

// UVOrigin selects which quad corner receives texture coordinate (0,0).
type UVOrigin int

const (
	UVTopLeft UVOrigin = iota
	UVBottomLeft
)

// Winding selects the triangle index order handed out by Quad.Triangles.
type Winding int

const (
	Clockwise Winding = iota
	CounterClockwise
)

// Handedness selects the orientation table, i.e. the sign of the Z offsets.
type Handedness int

const (
	RightHandYUp Handedness = iota
	LeftHandYUp
)

func (o UVOrigin) String() string {
	switch o {
	case UVTopLeft:
		return "top-left"
	case UVBottomLeft:
		return "bottom-left"
	}
	return fmt.Sprintf("UVOrigin(%d)", int(o))
}

// MarshalText rejects values outside the enum.
func (o UVOrigin) MarshalText() ([]byte, error) {
	if o != UVTopLeft && o != UVBottomLeft {
		return nil, fmt.Errorf("config: invalid uv origin %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText accepts top-left or bottom-left, case insensitive.
func (o *UVOrigin) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "top-left", "topleft", "tl":
		*o = UVTopLeft
	case "bottom-left", "bottomleft", "bl":
		*o = UVBottomLeft
	default:
		return fmt.Errorf("config: unknown uv origin %q", b)
	}
	return nil
}

func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	}
	return fmt.Sprintf("Winding(%d)", int(w))
}

// MarshalText rejects values outside the enum.
func (w Winding) MarshalText() ([]byte, error) {
	if w != Clockwise && w != CounterClockwise {
		return nil, fmt.Errorf("config: invalid winding %d", int(w))
	}
	return []byte(w.String()), nil
}

// UnmarshalText accepts cw or ccw and their long forms.
func (w *Winding) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "cw", "clockwise":
		*w = Clockwise
	case "ccw", "counter-clockwise", "counterclockwise":
		*w = CounterClockwise
	default:
		return fmt.Errorf("config: unknown winding %q", b)
	}
	return nil
}

func (h Handedness) String() string {
	switch h {
	case RightHandYUp:
		return "right"
	case LeftHandYUp:
		return "left"
	}
	return fmt.Sprintf("Handedness(%d)", int(h))
}

// MarshalText rejects values outside the enum.
func (h Handedness) MarshalText() ([]byte, error) {
	if h != RightHandYUp && h != LeftHandYUp {
		return nil, fmt.Errorf("config: invalid handedness %d", int(h))
	}
	return []byte(h.String()), nil
}

// UnmarshalText accepts right or left and their long forms.
func (h *Handedness) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "right", "right-hand", "right-hand-y-up", "rh":
		*h = RightHandYUp
	case "left", "left-hand", "left-hand-y-up", "lh":
		*h = LeftHandYUp
	default:
		return fmt.Errorf("config: unknown handedness %q", b)
	}
	return nil
}

// Mesh holds the deployment-time mesher conventions. A value is built once at
// startup and passed to the cube generator and the mesher.
type Mesh struct {
	UVOrigin   UVOrigin   `json:"uv_origin"`
	Winding    Winding    `json:"winding"`
	Handedness Handedness `json:"handedness"`
}

// DefaultMesh returns top-left UVs, clockwise triangles, right-handed Y-up.
func DefaultMesh() Mesh {
	return Mesh{
		UVOrigin:   UVTopLeft,
		Winding:    Clockwise,
		Handedness: RightHandYUp,
	}
}

func (m Mesh) String() string {
	return fmt.Sprintf("uv=%s winding=%s hand=%s", m.UVOrigin, m.Winding, m.Handedness)
}

// MeshSettings guards the process wide default conventions.
type MeshSettings struct {
	mu   sync.RWMutex
	mesh Mesh
}

var globalMeshSettings = &MeshSettings{
	mesh: DefaultMesh(),
}

// GetMesh returns the process wide mesher conventions
func GetMesh() Mesh {
	globalMeshSettings.mu.RLock()
	defer globalMeshSettings.mu.RUnlock()
	return globalMeshSettings.mesh
}

// SetMesh replaces the process wide mesher conventions. Unknown enum values
// fall back to the defaults.
func SetMesh(m Mesh) {
	def := DefaultMesh()
	if m.UVOrigin != UVTopLeft && m.UVOrigin != UVBottomLeft {
		m.UVOrigin = def.UVOrigin
	}
	if m.Winding != Clockwise && m.Winding != CounterClockwise {
		m.Winding = def.Winding
	}
	if m.Handedness != RightHandYUp && m.Handedness != LeftHandYUp {
		m.Handedness = def.Handedness
	}

	globalMeshSettings.mu.Lock()
	defer globalMeshSettings.mu.Unlock()
	globalMeshSettings.mesh = m
}
