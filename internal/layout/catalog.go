package layout

import (
	_ "embed"
	"errors"
	"sort"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templatesYAML []byte

// catalogEntry is the on-disk form of a curated template.
type catalogEntry struct {
	Count     int `yaml:"count"`
	GridStyle `yaml:",inline"`
}

type catalogFile struct {
	Templates []catalogEntry `yaml:"templates"`
}

// curated maps photo count to its templates, in file order.
var curated map[int][]GridStyle

func init() {
	var file catalogFile
	if err := yaml.Unmarshal(templatesYAML, &file); err != nil {
		// Embedded file, a parse failure is a programming error.
		panic("failed to unmarshal embedded templates.yaml: " + err.Error())
	}

	curated = make(map[int][]GridStyle)
	for _, entry := range file.Templates {
		curated[entry.Count] = append(curated[entry.Count], entry.GridStyle)
	}

	if err := catalogError(ValidateCatalog()); err != nil {
		panic("embedded templates.yaml is inconsistent: " + err.Error())
	}
}

// LayoutsForCount returns the candidate templates for a page with count
// photos: curated entries first in catalog order, the generated fallback
// grid last. Never empty, for any count.
func LayoutsForCount(count int) []GridStyle {
	entries := curated[count]
	out := make([]GridStyle, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, FallbackLayout(count))
	return out
}

// LayoutByName resolves a persisted template name back to its GridStyle for
// the given photo count. Both curated names and generated "fallback-N" names
// resolve; pages store the name, not the template body.
func LayoutByName(name string, count int) (GridStyle, bool) {
	for _, g := range curated[count] {
		if g.Name == name {
			return g, true
		}
	}
	if fb := FallbackLayout(count); fb.Name == name {
		return fb, true
	}
	return GridStyle{}, false
}

// CuratedCounts returns the photo counts that have curated templates,
// ascending.
func CuratedCounts() []int {
	counts := make([]int, 0, len(curated))
	for c := range curated {
		counts = append(counts, c)
	}
	sort.Ints(counts)
	return counts
}

// curatedForCount exposes the raw curated list to the validator.
func curatedForCount(count int) []GridStyle {
	return curated[count]
}

// catalogError collapses error-severity warnings into a single error.
func catalogError(warnings []ValidationWarning) error {
	var err error
	for _, w := range warnings {
		if w.Severity == "error" {
			err = multierr.Append(err, errors.New(w.String()))
		}
	}
	return err
}
