package dashboard

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-dashboard/catalog"
	"github.com/bitmark-inc/covid-dashboard/chart"
	"github.com/bitmark-inc/covid-dashboard/query"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/table"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

const (
	logPrefix  = "dashboard"
	dateLayout = "2006-01-02"
)

var (
	ErrUnknownTable = fmt.Errorf("unknown table")
	ErrUnknownField = fmt.Errorf("unknown field")
)

// Chart is one answered chart request.
type Chart struct {
	Label       string      `json:"label"`
	Description string      `json:"description,omitempty"`
	Explanation string      `json:"explanation,omitempty"`
	Date        string      `json:"date,omitempty"`
	Spec        *chart.Spec `json:"spec"`
	// Long is the melted (date, category, value) form of a breakdown.
	Long      []query.LongRow `json:"long,omitempty"`
	Companion *Chart          `json:"companion,omitempty"`
}

// Scale overrides the logarithmic axes of a scatter preset. Nil keeps the
// preset's own scale.
type Scale struct {
	LogX *bool
	LogY *bool
}

// Range is the span of dates on which a field has a value.
type Range struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// Dashboard answers chart requests against the two loaded tables.
type Dashboard struct {
	global  *table.Table
	country *table.Table

	globalViews  *catalog.Catalog
	countryViews *catalog.Catalog

	loc *utils.Localizer
}

func New(global, country *table.Table, loc *utils.Localizer) *Dashboard {
	return &Dashboard{
		global:       global,
		country:      country,
		globalViews:  catalog.Global(),
		countryViews: catalog.Country(),
		loc:          loc,
	}
}

// GlobalMetrics returns the labels of the worldwide metric list.
func (d *Dashboard) GlobalMetrics() []string {
	return d.globalViews.Labels(catalog.SectionMetric)
}

// CountryMetrics returns the labels of the per-country metric list.
func (d *Dashboard) CountryMetrics() []string {
	return d.countryViews.Labels(catalog.SectionMetric)
}

// Countries returns every country of the per-country table, sorted.
func (d *Dashboard) Countries() []string {
	return d.country.Entities()
}

func (d *Dashboard) RankedColumns() []catalog.Option {
	return catalog.RankedColumns()
}

func (d *Dashboard) RankOrders() []catalog.Option {
	return catalog.RankOrders()
}

// PageDescriptions returns the introduction of the global and the country
// page.
func (d *Dashboard) PageDescriptions() map[string]string {
	return map[string]string{
		"global":  d.loc.Text("page.global.description", ""),
		"country": d.loc.Text("page.country.description", ""),
	}
}

// Relationships returns the labels of the scatter presets.
func (d *Dashboard) Relationships() []string {
	return d.countryViews.Labels(catalog.SectionRelationship)
}

// DateRange returns the first and last date on which field has a value in
// the table of kind.
func (d *Dashboard) DateRange(kind schema.TableKind, field string) (Range, error) {
	t, err := d.table(kind)
	if err != nil {
		return Range{}, err
	}
	if !t.HasColumn(field) {
		return Range{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	first, last, ok := t.DateRange(field)
	if !ok {
		return Range{}, nil
	}
	return Range{First: first.Format(dateLayout), Last: last.Format(dateLayout)}, nil
}

// GlobalChart answers a worldwide metric.
func (d *Dashboard) GlobalChart(label string) (*Chart, error) {
	v, err := d.metric(d.globalViews, label)
	if err != nil {
		return nil, err
	}
	return d.answer(d.global, v, query.Params{Entity: schema.WorldEntity})
}

// CountryChart answers a per-country metric.
func (d *Dashboard) CountryChart(label, country string) (*Chart, error) {
	v, err := d.metric(d.countryViews, label)
	if err != nil {
		return nil, err
	}
	return d.answer(d.country, v, query.Params{Entity: country})
}

// Comparison answers the smoothed new cases and stringency index chart of
// a country.
func (d *Dashboard) Comparison(country string) (*Chart, error) {
	v, err := d.countryViews.Lookup(catalog.ComparisonLabel)
	if err != nil {
		return nil, err
	}
	return d.answer(d.country, v, query.Params{Entity: country})
}

// Ranking answers the top or bottom countries by column on date. Empty
// arguments select the defaults.
func (d *Dashboard) Ranking(column string, date time.Time, order catalog.Order) (*Chart, error) {
	if column == "" {
		column = catalog.DefaultRankedColumn()
	}
	if _, err := catalog.RankedColumnText(column); err != nil {
		return nil, err
	}
	if order == "" {
		order = catalog.Top
	}
	if !order.Valid() {
		return nil, fmt.Errorf("%w: %q", query.ErrInvalidOrder, order)
	}

	v, err := d.countryViews.Lookup(catalog.RankingLabel)
	if err != nil {
		return nil, err
	}
	v = v.ForColumn(column)

	return d.answer(d.country, v, query.Params{
		Column: column,
		Order:  order,
		Date:   d.resolveDate(d.country, column, date, v.DefaultDate),
	})
}

// Relationship answers a scatter preset on date, together with its
// companion chart when it has one.
func (d *Dashboard) Relationship(label string, date time.Time, scale Scale) (*Chart, error) {
	v, err := d.countryViews.Lookup(label)
	if err != nil {
		return nil, err
	}
	if v.Section != catalog.SectionRelationship {
		return nil, fmt.Errorf("%w: %q is not a relationship", catalog.ErrUnknownMetric, label)
	}

	date = d.resolveDate(d.country, v.Fields[0], date, v.DefaultDate)
	c, err := d.answer(d.country, v, query.Params{Date: date, LogX: scale.LogX, LogY: scale.LogY})
	if err != nil {
		return nil, err
	}
	c.Explanation = d.loc.Text(v.ExplanationID(), "")

	if v.Companion != "" {
		companion, err := d.countryViews.Lookup(v.Companion)
		if err != nil {
			return nil, err
		}
		if c.Companion, err = d.answer(d.country, companion, query.Params{Date: date}); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Distribution answers the HDI distribution on date.
func (d *Dashboard) Distribution(date time.Time) (*Chart, error) {
	v, err := d.countryViews.Lookup(catalog.DistributionLabel)
	if err != nil {
		return nil, err
	}
	date = d.resolveDate(d.country, v.Fields[0], date, v.DefaultDate)
	return d.answer(d.country, v, query.Params{Date: date})
}

func (d *Dashboard) table(kind schema.TableKind) (*table.Table, error) {
	switch kind {
	case schema.Aggregate:
		return d.global, nil
	case schema.PerEntity:
		return d.country, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, kind)
	}
}

func (d *Dashboard) metric(c *catalog.Catalog, label string) (catalog.View, error) {
	v, err := c.Lookup(label)
	if err != nil {
		return catalog.View{}, err
	}
	if v.Section != catalog.SectionMetric {
		return catalog.View{}, fmt.Errorf("%w: %q is not a metric", catalog.ErrUnknownMetric, label)
	}
	return v, nil
}

// resolveDate returns requested when it is set. Otherwise it returns def
// clamped into the dates on which field has a value. A requested date
// outside those dates is kept and answers an empty chart.
func (d *Dashboard) resolveDate(t *table.Table, field string, requested, def time.Time) time.Time {
	if !requested.IsZero() {
		return table.Day(requested)
	}
	date := table.Day(def)

	first, last, ok := t.DateRange(field)
	if !ok {
		return date
	}
	if date.Before(first) {
		return first
	}
	if date.After(last) {
		return last
	}
	return date
}

func (d *Dashboard) answer(t *table.Table, v catalog.View, p query.Params) (*Chart, error) {
	r, err := query.Execute(t, v, p)
	if err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "view": v.ID, "error": err}).Warn("query failed")
		return nil, err
	}

	entity := p.Entity
	if entity == schema.WorldEntity {
		entity = ""
	}

	title := v.Title(catalog.TitleArgs{
		Entity: p.Entity,
		Column: p.Column,
		Order:  p.Order,
		Date:   p.Date,
	})

	c := &Chart{
		Label:       v.Label,
		Description: d.loc.Text(v.DescriptionID(), entity),
		Spec:        chart.Bind(r, v.Binding, title),
	}
	if v.Shape == catalog.CompositeBreakdown {
		c.Long = r.Melt()
	}
	if !p.Date.IsZero() {
		c.Date = p.Date.Format(dateLayout)
	}
	return c, nil
}
