package script

import (
	"fmt"

	"github.com/chazu/voxgeom/pkg/region"
)

// Scene holds the named regions produced by evaluating a script, in
// definition order. Redefining a name replaces the region but keeps its
// original position.
type Scene struct {
	regions map[string]region.Region
	order   []string
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{regions: make(map[string]region.Region)}
}

// Add stores a region under the given name.
func (s *Scene) Add(name string, r region.Region) {
	if _, exists := s.regions[name]; !exists {
		s.order = append(s.order, name)
	}
	s.regions[name] = r
}

// Lookup returns the region with the given name.
func (s *Scene) Lookup(name string) (region.Region, bool) {
	r, ok := s.regions[name]
	return r, ok
}

// Names returns all region names in definition order.
func (s *Scene) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Count returns the number of named regions.
func (s *Scene) Count() int {
	return len(s.regions)
}

// Warning is an advisory finding about a scene region. Warnings never
// block evaluation; the region operations themselves accept any extents.
type Warning struct {
	Name    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Name, w.Message)
}

// Validate checks every named region for negative extents. Such regions
// are legal values but classify unreliably, so they are worth surfacing
// to script authors.
func (s *Scene) Validate() []Warning {
	var warnings []Warning

	for _, name := range s.order {
		r := s.regions[name]
		if r.Width < 0 || r.Height < 0 || r.Depth < 0 {
			warnings = append(warnings, Warning{
				Name: name,
				Message: fmt.Sprintf("negative extent (%d,%d,%d); containment results are undefined",
					r.Width, r.Height, r.Depth),
			})
		}
	}

	return warnings
}
