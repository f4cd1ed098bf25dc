package solver

import (
	"fmt"
	"sort"
	"strings"
)

// Variant names a run-bound parameter set.
type Variant struct {
	Name   string `yaml:"name"`
	MinRun int    `yaml:"min_run"`
	MaxRun int    `yaml:"max_run"`
}

// String renders "name(min..max)".
func (v Variant) String() string {
	return fmt.Sprintf("%s(%d..%d)", v.Name, v.MinRun, v.MaxRun)
}

// Presets for the two crucible kinds. The classic crucible may turn after
// any single step; a run of zero cells is meaningless, so its minimum is 1.
var (
	Crucible      = Variant{Name: "crucible", MinRun: 1, MaxRun: 3}
	UltraCrucible = Variant{Name: "ultra", MinRun: 4, MaxRun: 10}
)

// presets maps every accepted name, aliases included, to its Variant.
var presets = map[string]Variant{
	"crucible": Crucible,
	"first":    Crucible,
	"ultra":    UltraCrucible,
	"second":   UltraCrucible,
}

// LookupVariant resolves a preset by name or alias, case-insensitively.
func LookupVariant(name string) (Variant, error) {
	v, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownVariant, name, strings.Join(VariantNames(), ", "))
	}
	return v, nil
}

// VariantNames lists every accepted preset name in sorted order.
func VariantNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
