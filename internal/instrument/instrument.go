// Package instrument holds the questionnaire definitions. Definitions are
// embedded YAML files checked against the CUE instrument schema at load time
// and are immutable afterwards.
package instrument

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/nasalprom/nasalprom/internal/cue"
	"github.com/nasalprom/nasalprom/internal/types"
)

//go:embed definitions/*.yaml
var definitionFS embed.FS

// Instrument is a fixed questionnaire definition.
type Instrument struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	ItemCount     int      `yaml:"item_count"`
	MaxPerItem    int      `yaml:"max_per_item"`
	ScaleFactor   int      `yaml:"scale_factor"`
	TotalCaption  string   `yaml:"total_caption"`
	ScaledCaption string   `yaml:"scaled_caption"`
	TSVLabel      string   `yaml:"tsv_label"`
	ItemLabels    []string `yaml:"items"`
}

// Len returns the number of items.
func (i *Instrument) Len() int {
	return len(i.ItemLabels)
}

// Items returns a copy of the ordered item labels.
func (i *Instrument) Items() []string {
	out := make([]string, len(i.ItemLabels))
	copy(out, i.ItemLabels)
	return out
}

// Item returns the label of item idx (0-based).
func (i *Instrument) Item(idx int) string {
	return i.ItemLabels[idx]
}

// MaxTotal is the highest possible raw total.
func (i *Instrument) MaxTotal() int {
	return i.Len() * i.MaxPerItem
}

// Scaled reports whether the instrument defines a scaled score.
func (i *Instrument) Scaled() bool {
	return i.ScaleFactor > 0
}

// MaxScaled is the highest possible scaled score, or 0 when unscaled.
func (i *Instrument) MaxScaled() int {
	return i.MaxTotal() * i.ScaleFactor
}

// Catalog is the set of known instruments keyed by id.
type Catalog struct {
	byID map[string]*Instrument
}

// Lookup returns the instrument with the given id.
func (c *Catalog) Lookup(id string) (*Instrument, bool) {
	inst, ok := c.byID[id]
	return inst, ok
}

// NOSE returns the NOSE instrument.
func (c *Catalog) NOSE() *Instrument {
	return c.byID[types.InstrumentNOSE]
}

// SNOT22 returns the SNOT-22 instrument.
func (c *Catalog) SNOT22() *Instrument {
	return c.byID[types.InstrumentSNOT22]
}

// All returns every instrument in presentation order (NOSE first).
func (c *Catalog) All() []*Instrument {
	all := make([]*Instrument, 0, len(c.byID))
	for _, inst := range c.byID {
		all = append(all, inst)
	}
	sort.Slice(all, func(a, b int) bool {
		return order(all[a].ID) < order(all[b].ID)
	})
	return all
}

func order(id string) int {
	switch id {
	case types.InstrumentNOSE:
		return 0
	case types.InstrumentSNOT22:
		return 1
	default:
		return 2
	}
}

// Load reads and validates the embedded definitions.
func Load() (*Catalog, error) {
	entries, err := definitionFS.ReadDir("definitions")
	if err != nil {
		return nil, fmt.Errorf("could not read instrument definitions: %w", err)
	}

	validator := cue.NewValidator()
	if err := validator.LoadSchemas(); err != nil {
		return nil, err
	}
	if !validator.HasSchema("instrument") {
		return nil, fmt.Errorf("instrument schema not embedded")
	}

	catalog := &Catalog{byID: make(map[string]*Instrument)}
	for _, entry := range entries {
		content, err := definitionFS.ReadFile("definitions/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		inst, err := parseDefinition(validator, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		if _, dup := catalog.byID[inst.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate instrument id %s", entry.Name(), inst.ID)
		}
		catalog.byID[inst.ID] = inst
	}

	for _, id := range []string{types.InstrumentNOSE, types.InstrumentSNOT22} {
		if _, ok := catalog.byID[id]; !ok {
			return nil, fmt.Errorf("instrument %s is not defined", id)
		}
	}

	return catalog, nil
}

// parseDefinition decodes one YAML definition, checking it against the
// instrument schema before building the typed value.
func parseDefinition(validator *cue.Validator, content []byte) (*Instrument, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definition YAML: %w", err)
	}

	issues, err := validator.ValidateInstrument(raw)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		return nil, fmt.Errorf("invalid definition: %s", issues[0])
	}

	var inst Instrument
	if err := yaml.Unmarshal(content, &inst); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definition YAML: %w", err)
	}
	if len(inst.ItemLabels) != inst.ItemCount {
		return nil, fmt.Errorf("invalid definition: item_count is %d but %d items are listed", inst.ItemCount, len(inst.ItemLabels))
	}
	return &inst, nil
}

// MustLoad is like Load but panics on error. The definitions are compiled
// into the binary, so a failure here is a build defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("instrument: %v", err))
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog, loading it on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustLoad()
	})
	return defaultCatalog
}
