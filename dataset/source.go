package dataset

import (
	"context"
	"fmt"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const logPrefix = "dataset"

var (
	ErrUnsupportedSource = fmt.Errorf("unsupported dataset source")
	ErrEmptyArchive      = fmt.Errorf("archive has no csv entry")
	ErrFetch             = fmt.Errorf("fetch dataset")
)

// Source yields the raw rows of one table kind together with the column
// names the source exposes.
type Source interface {
	Load(ctx context.Context, kind schema.TableKind) (columns []string, rows []schema.RawRow, err error)
}
