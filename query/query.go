package query

import (
	"fmt"
	"math"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-dashboard/catalog"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/table"
)

const (
	logPrefix = "query"

	// PopulationThreshold is the exclusive lower bound on population for
	// cross-sectional comparisons between entities.
	PopulationThreshold = 1000000
	// RankLimit is the number of entities in a ranked cross-section.
	RankLimit = 15
	// ScatterOffset is added to both scatter coordinates so that zeros
	// survive a logarithmic axis.
	ScatterOffset = 1
)

var ErrInvalidOrder = fmt.Errorf("invalid rank order")

// Params are the per-interaction selections applied to a view.
type Params struct {
	Entity string
	Date   time.Time
	Column string
	Order  catalog.Order
	// LogX and LogY override the axis scales of the view when set.
	LogX *bool
	LogY *bool
}

// Execute runs view v against t.
func Execute(t *table.Table, v catalog.View, p Params) (*Result, error) {
	fields := v.Fields
	if v.Shape == catalog.Ranked {
		fields = []string{p.Column, schema.FieldPopulation}
	}
	if err := t.RequireColumns(fields...); err != nil {
		return nil, err
	}

	r := &Result{
		Shape: v.Shape,
		LogX:  logScale(p.LogX, v.Binding.LogX),
		LogY:  logScale(p.LogY, v.Binding.LogY),
	}

	switch v.Shape {
	case catalog.SingleSeries:
		r.Series = []Series{singleSeries(entityRows(t, p.Entity), v.Fields[0])}
	case catalog.CompositeBreakdown:
		r.Series = breakdown(entityRows(t, p.Entity), v.Fields)
	case catalog.DualAxis:
		r.Series = dualAxis(entityRows(t, p.Entity), v.Fields[0], v.Fields[1])
	case catalog.Ranked:
		order := p.Order
		if order == "" {
			order = catalog.Top
		}
		if !order.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOrder, p.Order)
		}
		r.Series = []Series{ranked(t.RowsOn(p.Date), p.Column, order, t.HasColumn(schema.FieldHDI))}
	case catalog.Scatter:
		r.Series = []Series{scatter(t.RowsOn(p.Date), v.Fields[0], v.Fields[1])}
	case catalog.Distribution:
		r.Series = []Series{distribution(t.RowsOn(p.Date), v.Fields[0])}
	default:
		return nil, fmt.Errorf("%w: unknown shape %q", catalog.ErrCatalogConflict, v.Shape)
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"view":   v.ID,
		"entity": p.Entity,
		"points": r.Len(),
	}).Debug("view executed")

	return r, nil
}

func logScale(override *bool, def bool) bool {
	if override != nil {
		return *override
	}
	return def
}

func entityRows(t *table.Table, entity string) []schema.Observation {
	if t.Kind() == schema.Aggregate {
		entity = schema.WorldEntity
	}
	return t.EntityRows(entity)
}

func singleSeries(rows []schema.Observation, field string) Series {
	s := Series{Name: field, Points: []Point{}}
	for _, r := range rows {
		if v, ok := r.Value(field); ok {
			s.Points = append(s.Points, Point{Date: r.Date, Entity: r.Entity, Y: v})
		}
	}
	return s
}

// breakdown melts the category columns into one series per category. A row
// contributes only when every category is present.
func breakdown(rows []schema.Observation, categories []string) []Series {
	series := make([]Series, len(categories))
	for i, c := range categories {
		series[i] = Series{Name: c, Points: []Point{}}
	}
	for _, r := range rows {
		if !r.HasAll(categories...) {
			continue
		}
		for i, c := range categories {
			series[i].Points = append(series[i].Points, Point{Date: r.Date, Entity: r.Entity, Y: r.Values[c]})
		}
	}
	return series
}

func dualAxis(rows []schema.Observation, y1, y2 string) []Series {
	first := Series{Name: y1, Points: []Point{}}
	second := Series{Name: y2, Points: []Point{}}
	for _, r := range rows {
		if !r.HasAll(y1, y2) {
			continue
		}
		first.Points = append(first.Points, Point{Date: r.Date, Entity: r.Entity, Y: r.Values[y1]})
		second.Points = append(second.Points, Point{Date: r.Date, Entity: r.Entity, Y: r.Values[y2]})
	}
	return []Series{first, second}
}

func populous(r schema.Observation) bool {
	pop, ok := r.Value(schema.FieldPopulation)
	return ok && pop > PopulationThreshold
}

// ranked takes the RankLimit highest (top) or lowest (bottom) entities by
// column and returns them in the opposite order, so the extreme value is
// last.
func ranked(rows []schema.Observation, column string, order catalog.Order, withHDI bool) Series {
	points := []Point{}
	for _, r := range rows {
		v, ok := r.Value(column)
		if !ok || !populous(r) {
			continue
		}
		p := Point{Date: r.Date, Entity: r.Entity, Y: v}
		if hdi, ok := r.Value(schema.FieldHDI); withHDI && ok {
			p.Hover = map[string]float64{schema.FieldHDI: math.Round(hdi*100) / 100}
		}
		points = append(points, p)
	}

	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			if order == catalog.Top {
				return points[i].Y > points[j].Y
			}
			return points[i].Y < points[j].Y
		}
		return points[i].Entity < points[j].Entity
	})
	if len(points) > RankLimit {
		points = points[:RankLimit]
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return Series{Name: column, Points: points}
}

func scatter(rows []schema.Observation, x, y string) Series {
	s := Series{Name: y, Points: []Point{}}
	for _, r := range rows {
		if !populous(r) || !r.HasAll(x, y) {
			continue
		}
		s.Points = append(s.Points, Point{
			Date:   r.Date,
			Entity: r.Entity,
			X:      r.Values[x] + ScatterOffset,
			Y:      r.Values[y] + ScatterOffset,
		})
	}
	return s
}

func distribution(rows []schema.Observation, field string) Series {
	s := Series{Name: field, Points: []Point{}}
	for _, r := range rows {
		if v, ok := r.Value(field); ok {
			s.Points = append(s.Points, Point{Date: r.Date, Entity: r.Entity, Y: v})
		}
	}
	return s
}
