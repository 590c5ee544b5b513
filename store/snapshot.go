package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

var ErrNoSnapshot = fmt.Errorf("no snapshot")

// Snapshot - a read-only source of the daily tables
type Snapshot interface {
	Load(ctx context.Context, kind schema.TableKind) ([]string, []schema.RawRow, error)
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type columnSet map[string]bool

func newColumnSet() columnSet { return columnSet{} }

func (c columnSet) add(name string) { c[name] = true }

func (c columnSet) names() []string {
	out := make([]string, 0, len(c))
	for n := range c {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// cell formats a stored value the way it would appear in the CSV dataset.
func cell(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case primitive.DateTime:
		ms := int64(t)
		return time.Unix(ms/1000, ms%1000*int64(time.Millisecond)).UTC().Format(time.RFC3339)
	case primitive.Decimal128:
		return t.String()
	case pgtype.Numeric:
		f, err := t.Float64Value()
		if err != nil || !f.Valid {
			return ""
		}
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
