package table

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const logPrefix = "table"

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"1/2/2006",
}

var missingTokens = map[string]bool{
	"":     true,
	"nan":  true,
	"null": true,
	"na":   true,
	"none": true,
}

// Table is an immutable, sorted sequence of observations of one kind.
// Rows are ordered by (entity, date) and no (entity, date) pair repeats.
type Table struct {
	kind    schema.TableKind
	columns map[string]bool
	rows    []schema.Observation

	entities []string
	byEntity map[string][2]int
}

// Normalize builds a Table from raw rows. Rows with an unparseable date, or
// per-entity rows without an entity, are dropped; the load itself only fails
// when a key column is absent from columns.
func Normalize(kind schema.TableKind, columns []string, raw []schema.RawRow) (*Table, error) {
	t := &Table{
		kind:    kind,
		columns: make(map[string]bool, len(columns)),
	}
	for _, c := range columns {
		t.columns[strings.TrimSpace(c)] = true
	}

	if !t.columns[schema.FieldDate] {
		return nil, schema.MissingFieldError(schema.FieldDate)
	}
	if kind == schema.PerEntity && !t.columns[schema.FieldCountry] {
		return nil, schema.MissingFieldError(schema.FieldCountry)
	}

	var badDates, noEntity int
	rows := make([]schema.Observation, 0, len(raw))
	for _, r := range raw {
		date, ok := ParseDate(r[schema.FieldDate])
		if !ok {
			badDates++
			continue
		}

		entity := schema.WorldEntity
		if kind == schema.PerEntity {
			entity = strings.TrimSpace(r[schema.FieldCountry])
			if entity == "" {
				noEntity++
				continue
			}
		}

		obs := schema.Observation{
			Entity: entity,
			Date:   date,
			Values: make(map[string]float64),
		}
		for k, v := range r {
			if !schema.IsNumericField(k) {
				continue
			}
			if f, ok := ParseValue(v); ok {
				obs.Values[k] = f
			}
		}
		rows = append(rows, obs)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Entity != rows[j].Entity {
			return rows[i].Entity < rows[j].Entity
		}
		return rows[i].Date.Before(rows[j].Date)
	})

	var duplicates int
	deduped := rows[:0]
	for i, r := range rows {
		if i > 0 && r.Entity == rows[i-1].Entity && r.Date.Equal(rows[i-1].Date) {
			duplicates++
			continue
		}
		deduped = append(deduped, r)
	}
	t.rows = deduped
	t.index()

	if badDates > 0 || noEntity > 0 || duplicates > 0 {
		log.WithFields(log.Fields{
			"prefix":     logPrefix,
			"kind":       kind,
			"bad_dates":  badDates,
			"no_entity":  noEntity,
			"duplicates": duplicates,
		}).Warn("rows excluded during normalization")
	}
	log.WithFields(log.Fields{"prefix": logPrefix, "kind": kind, "rows": len(t.rows), "entities": len(t.entities)}).Info("table normalized")

	return t, nil
}

func (t *Table) index() {
	t.byEntity = make(map[string][2]int)
	start := 0
	for i := 1; i <= len(t.rows); i++ {
		if i == len(t.rows) || t.rows[i].Entity != t.rows[start].Entity {
			e := t.rows[start].Entity
			t.entities = append(t.entities, e)
			t.byEntity[e] = [2]int{start, i}
			start = i
		}
	}
}

// ParseDate parses a dataset date and truncates it to the UTC day.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return Day(d), true
		}
	}
	return time.Time{}, false
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseValue parses a numeric cell. Empty cells, NaN markers and anything
// unparseable are reported as missing.
func ParseValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if missingTokens[strings.ToLower(s)] {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Kind returns the table kind.
func (t *Table) Kind() schema.TableKind { return t.kind }

// Len returns the number of observations.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns all observations in (entity, date) order. Callers must not
// modify the returned slice.
func (t *Table) Rows() []schema.Observation { return t.rows }

// Entities returns the entity names in ascending order.
func (t *Table) Entities() []string {
	out := make([]string, len(t.entities))
	copy(out, t.entities)
	return out
}

// EntityRows returns the observations of one entity in date order. The
// aggregate table answers for schema.WorldEntity.
func (t *Table) EntityRows(entity string) []schema.Observation {
	bounds, ok := t.byEntity[entity]
	if !ok {
		return nil
	}
	return t.rows[bounds[0]:bounds[1]]
}

// RowsOn returns the observations sampled on the calendar day of date, in
// entity order.
func (t *Table) RowsOn(date time.Time) []schema.Observation {
	day := Day(date)
	var out []schema.Observation
	for _, e := range t.entities {
		rows := t.EntityRows(e)
		i := sort.Search(len(rows), func(i int) bool { return !rows[i].Date.Before(day) })
		if i < len(rows) && rows[i].Date.Equal(day) {
			out = append(out, rows[i])
		}
	}
	return out
}

// HasColumn reports whether the source exposed a column named field.
func (t *Table) HasColumn(field string) bool {
	return t.columns[field]
}

// RequireColumns returns schema.ErrMissingField for the first absent field.
func (t *Table) RequireColumns(fields ...string) error {
	for _, f := range fields {
		if !t.columns[f] {
			return schema.MissingFieldError(f)
		}
	}
	return nil
}

// Columns returns the column names in ascending order.
func (t *Table) Columns() []string {
	out := make([]string, 0, len(t.columns))
	for c := range t.columns {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// DateRange returns the first and last dates on which field has a value.
func (t *Table) DateRange(field string) (first, last time.Time, ok bool) {
	for _, r := range t.rows {
		if _, has := r.Values[field]; !has {
			continue
		}
		if !ok || r.Date.Before(first) {
			first = r.Date
		}
		if !ok || r.Date.After(last) {
			last = r.Date
		}
		ok = true
	}
	return first, last, ok
}
