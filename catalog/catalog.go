package catalog

import (
	"fmt"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

var (
	ErrUnknownMetric   = fmt.Errorf("unknown metric")
	ErrCatalogConflict = fmt.Errorf("catalog conflict")
)

// Catalog is an ordered, read-only set of views for one table kind.
type Catalog struct {
	kind    schema.TableKind
	views   []View
	byLabel map[string]int
}

// New validates views and returns a catalog holding them in the given order.
// Duplicate or empty labels and duplicate ids fail with ErrCatalogConflict.
func New(kind schema.TableKind, views ...View) (*Catalog, error) {
	c := &Catalog{
		kind:    kind,
		views:   make([]View, 0, len(views)),
		byLabel: make(map[string]int, len(views)),
	}

	ids := make(map[string]bool, len(views))
	for _, v := range views {
		if v.Label == "" || v.ID == "" {
			return nil, fmt.Errorf("%w: view without label or id", ErrCatalogConflict)
		}
		if _, dup := c.byLabel[v.Label]; dup {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrCatalogConflict, v.Label)
		}
		if ids[v.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrCatalogConflict, v.ID)
		}
		if err := validate(v); err != nil {
			return nil, err
		}
		ids[v.ID] = true
		c.byLabel[v.Label] = len(c.views)
		c.views = append(c.views, v.clone())
	}
	return c, nil
}

// MustNew is like New but panics on an invalid catalog.
func MustNew(kind schema.TableKind, views ...View) *Catalog {
	c, err := New(kind, views...)
	if err != nil {
		panic(err)
	}
	return c
}

func validate(v View) error {
	switch v.Shape {
	case SingleSeries, Distribution:
		if len(v.Fields) != 1 {
			return fmt.Errorf("%w: %q needs exactly one field", ErrCatalogConflict, v.Label)
		}
	case Scatter, DualAxis:
		if len(v.Fields) != 2 {
			return fmt.Errorf("%w: %q needs exactly two fields", ErrCatalogConflict, v.Label)
		}
	case CompositeBreakdown:
		if len(v.Fields) == 0 {
			return fmt.Errorf("%w: %q has no categories", ErrCatalogConflict, v.Label)
		}
		if len(v.Binding.Colors) != 0 && len(v.Binding.Colors) != len(v.Fields) {
			return fmt.Errorf("%w: %q colors do not match categories", ErrCatalogConflict, v.Label)
		}
	case Ranked:
		// the ranked column is chosen at query time
	default:
		return fmt.Errorf("%w: %q has unknown shape %q", ErrCatalogConflict, v.Label, v.Shape)
	}
	return nil
}

// Kind returns the table kind the catalog queries.
func (c *Catalog) Kind() schema.TableKind { return c.kind }

// Len returns the number of views.
func (c *Catalog) Len() int { return len(c.views) }

// Lookup returns the view with the given label.
func (c *Catalog) Lookup(label string) (View, error) {
	i, ok := c.byLabel[label]
	if !ok {
		return View{}, fmt.Errorf("%w: %q", ErrUnknownMetric, label)
	}
	return c.views[i].clone(), nil
}

// Labels returns the labels of a section in catalog order.
func (c *Catalog) Labels(section Section) []string {
	labels := []string{}
	for _, v := range c.views {
		if v.Section == section {
			labels = append(labels, v.Label)
		}
	}
	return labels
}

// Views returns every view in catalog order.
func (c *Catalog) Views() []View {
	out := make([]View, len(c.views))
	for i, v := range c.views {
		out[i] = v.clone()
	}
	return out
}
