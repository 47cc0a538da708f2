// Package assets is the read-only lookup service objects consult during
// update: named meshes plus arbitrary typed values.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-asteroids/internal/mesh"
)

// ErrBadMesh is returned for mesh definitions that cannot be built.
var ErrBadMesh = errors.New("assets: bad mesh")

//go:embed data/meshes.yaml
var builtinYAML []byte

// Lookup is what objects see. Absence is never an error: callers fall back
// to defaults.
type Lookup interface {
	Mesh(name string) (*mesh.Mesh, bool)
	Values() []any
}

// Library stores meshes by name and typed values in registration order.
// It is filled at startup and only read afterwards.
type Library struct {
	meshes map[string]*mesh.Mesh
	values []any
}

// New returns an empty library.
func New() *Library {
	return &Library{meshes: make(map[string]*mesh.Mesh)}
}

// Builtin returns a library holding the embedded meshes.
func Builtin() (*Library, error) {
	l := New()
	if err := l.LoadYAML(builtinYAML); err != nil {
		return nil, fmt.Errorf("assets: builtin: %w", err)
	}
	return l, nil
}

// Add stores m under its name, replacing any previous mesh of that name.
func (l *Library) Add(m *mesh.Mesh) {
	l.meshes[m.Name()] = m
}

// Register stores a typed value for AnyOf and AllOf.
func (l *Library) Register(v any) {
	l.values = append(l.values, v)
}

// Mesh returns the mesh called name.
func (l *Library) Mesh(name string) (*mesh.Mesh, bool) {
	m, ok := l.meshes[name]
	return m, ok
}

// Values returns every registered value followed by every mesh, sorted by name.
func (l *Library) Values() []any {
	out := make([]any, 0, len(l.values)+len(l.meshes))
	out = append(out, l.values...)
	for _, name := range l.Names() {
		out = append(out, l.meshes[name])
	}
	return out
}

// Names lists mesh names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.meshes))
	for name := range l.meshes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MeshOr returns the mesh called name or the shared empty mesh.
func MeshOr(l Lookup, name string) *mesh.Mesh {
	if l != nil {
		if m, ok := l.Mesh(name); ok {
			return m
		}
	}
	return mesh.Empty()
}

// AnyOf returns the first value of type T.
func AnyOf[T any](l Lookup) (T, bool) {
	var zero T
	if l == nil {
		return zero, false
	}
	for _, v := range l.Values() {
		if t, ok := v.(T); ok {
			return t, true
		}
	}
	return zero, false
}

// AllOf returns every value of type T in lookup order.
func AllOf[T any](l Lookup) []T {
	if l == nil {
		return nil
	}
	var out []T
	for _, v := range l.Values() {
		if t, ok := v.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// LoadDir loads every *.yaml file in dir, in name order. Later files replace
// meshes of the same name.
func (l *Library) LoadDir(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("assets: scan %s: %w", dir, err)
	}
	slices.Sort(files)
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("assets: read %s: %w", f, err)
		}
		if err := l.LoadYAML(data); err != nil {
			return fmt.Errorf("assets: %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

type meshFile struct {
	Meshes []meshDef `yaml:"meshes"`
}

// meshDef is either an explicit segment list or a closed polygon.
type meshDef struct {
	Name     string      `yaml:"name"`
	Filled   bool        `yaml:"filled"`
	Segments [][]float32 `yaml:"segments"` // [x0, y0, x1, y1]
	Polygon  [][]float32 `yaml:"polygon"`  // [x, y], closed automatically
}

// LoadYAML parses a mesh document and adds its meshes. Nothing is added when
// any definition is bad.
func (l *Library) LoadYAML(data []byte) error {
	var f meshFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("assets: parse: %w", err)
	}
	built := make([]*mesh.Mesh, 0, len(f.Meshes))
	for i, def := range f.Meshes {
		m, err := def.build()
		if err != nil {
			return fmt.Errorf("mesh #%d: %w", i, err)
		}
		built = append(built, m)
	}
	for _, m := range built {
		l.Add(m)
	}
	return nil
}

func (d meshDef) build() (*mesh.Mesh, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrBadMesh)
	}

	var segs []mesh.Segment
	for j, s := range d.Segments {
		if len(s) != 4 {
			return nil, fmt.Errorf("%w: %s: segment %d has %d values, want 4", ErrBadMesh, name, j, len(s))
		}
		segs = append(segs, mesh.Seg(s[0], s[1], s[2], s[3]))
	}

	if len(d.Polygon) > 0 {
		if len(d.Polygon) < 2 {
			return nil, fmt.Errorf("%w: %s: polygon needs at least 2 points", ErrBadMesh, name)
		}
		for j, p := range d.Polygon {
			if len(p) != 2 {
				return nil, fmt.Errorf("%w: %s: point %d has %d values, want 2", ErrBadMesh, name, j, len(p))
			}
		}
		for j := range d.Polygon {
			a, b := d.Polygon[j], d.Polygon[(j+1)%len(d.Polygon)]
			segs = append(segs, mesh.Seg(a[0], a[1], b[0], b[1]))
		}
	}

	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: %s: no geometry", ErrBadMesh, name)
	}
	return mesh.New(name, segs, d.Filled), nil
}
