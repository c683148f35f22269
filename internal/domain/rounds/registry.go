package rounds

import (
	"fmt"
	"sort"
)

// Registry resolves round slugs to round definitions. The backing map
// is fixed at construction, so lookups are safe from any goroutine
// without locking.
type Registry struct {
	byName map[string]Round
}

// NewRegistry builds a registry over the given rounds.
func NewRegistry(rs ...Round) *Registry {
	byName := make(map[string]Round, len(rs))
	for _, r := range rs {
		byName[r.Name] = r
	}
	return &Registry{byName: byName}
}

// Get resolves a round by its slug.
func (reg *Registry) Get(name string) (Round, error) {
	r, ok := reg.byName[name]
	if !ok {
		return Round{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return r, nil
}

// Contains reports whether the slug is registered.
func (reg *Registry) Contains(name string) bool {
	_, ok := reg.byName[name]
	return ok
}

// SingleFace reduces a multi-face round to its single-face equivalent.
// Single-face rounds are returned unchanged, as are multi-face rounds
// whose family round is not registered.
func (reg *Registry) SingleFace(r Round) Round {
	if !r.MultiFace() {
		return r
	}
	if family, ok := reg.byName[r.FamilyOf]; ok {
		return family
	}
	return r
}

// Names returns every registered slug in sorted order.
func (reg *Registry) Names() []string {
	names := make([]string, 0, len(reg.byName))
	for name := range reg.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered round, sorted by slug.
func (reg *Registry) All() []Round {
	out := make([]Round, 0, len(reg.byName))
	for _, name := range reg.Names() {
		out = append(out, reg.byName[name])
	}
	return out
}

// Imperial indoor distances in metres.
const (
	twentyYards     = 18.288
	twentyFiveYards = 22.86
)

// Default returns a registry holding the standard AGB and WA indoor
// rounds plus the WA 720 outdoor round. Slugs follow the conventional
// lowercase forms used by round listings.
func Default() *Registry {
	return NewRegistry(
		Round{
			Name: "portsmouth", DisplayName: "Portsmouth",
			Passes: []Pass{{Arrows: 60, DistanceM: twentyYards, FaceCM: 60, Scoring: TenZone}},
		},
		Round{
			Name: "portsmouth_triple", DisplayName: "Portsmouth Triple", FamilyOf: "portsmouth",
			Passes: []Pass{{Arrows: 60, DistanceM: twentyYards, FaceCM: 60, Scoring: TenZone}},
		},
		Round{
			Name: "worcester", DisplayName: "Worcester",
			Passes: []Pass{{Arrows: 60, DistanceM: twentyYards, FaceCM: 40.64, Scoring: FiveZone}},
		},
		Round{
			Name: "worcester_5_centre", DisplayName: "Worcester 5 Centre", FamilyOf: "worcester",
			Passes: []Pass{{Arrows: 60, DistanceM: twentyYards, FaceCM: 40.64, Scoring: FiveZone}},
		},
		Round{
			Name: "vegas_300", DisplayName: "Vegas 300",
			Passes: []Pass{{Arrows: 30, DistanceM: 18, FaceCM: 40, Scoring: TenZone}},
		},
		Round{
			Name: "vegas_300_triple", DisplayName: "Vegas 300 Triple", FamilyOf: "vegas_300",
			Passes: []Pass{{Arrows: 30, DistanceM: 18, FaceCM: 40, Scoring: TenZone}},
		},
		Round{
			Name: "wa18", DisplayName: "WA 18",
			Passes: []Pass{{Arrows: 60, DistanceM: 18, FaceCM: 40, Scoring: TenZone}},
		},
		Round{
			Name: "wa18_triple", DisplayName: "WA 18 Triple", FamilyOf: "wa18",
			Passes: []Pass{{Arrows: 60, DistanceM: 18, FaceCM: 40, Scoring: TenZone}},
		},
		Round{
			Name: "wa25", DisplayName: "WA 25",
			Passes: []Pass{{Arrows: 60, DistanceM: 25, FaceCM: 60, Scoring: TenZone}},
		},
		Round{
			Name: "bray_i", DisplayName: "Bray I",
			Passes: []Pass{{Arrows: 30, DistanceM: twentyYards, FaceCM: 40, Scoring: TenZone}},
		},
		Round{
			Name: "bray_ii", DisplayName: "Bray II",
			Passes: []Pass{{Arrows: 30, DistanceM: twentyFiveYards, FaceCM: 60, Scoring: TenZone}},
		},
		Round{
			Name: "stafford", DisplayName: "Stafford",
			Passes: []Pass{{Arrows: 72, DistanceM: 30, FaceCM: 80, Scoring: TenZone}},
		},
		// Outdoor; registered for handicap work but not part of any
		// indoor classification scheme.
		Round{
			Name: "wa720_70", DisplayName: "WA 720 (70m)",
			Passes: []Pass{{Arrows: 72, DistanceM: 70, FaceCM: 122, Scoring: TenZone}},
		},
	)
}
