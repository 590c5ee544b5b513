package dataset

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"io/ioutil"
	"path"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const utf8BOM = "\uFEFF"

// Encodings of a CSV file.
const (
	UTF8   = "utf-8"
	Latin1 = "latin-1"
)

// CSVConfig locates the global and country CSV files. A location is a local
// path or an http(s) URL; names ending in .zip are unpacked.
type CSVConfig struct {
	Global   string
	Country  string
	Encoding map[schema.TableKind]string
	Timeout  time.Duration
	Retries  int
}

// CSVSource loads tables from CSV files.
type CSVSource struct {
	locations map[schema.TableKind]string
	encodings map[schema.TableKind]string
	fetcher   *Fetcher
}

// NewCSVSource returns a CSV source for cfg.
func NewCSVSource(cfg CSVConfig) *CSVSource {
	encodings := map[schema.TableKind]string{}
	for k, v := range cfg.Encoding {
		encodings[k] = strings.ToLower(v)
	}
	return &CSVSource{
		locations: map[schema.TableKind]string{
			schema.Aggregate: cfg.Global,
			schema.PerEntity: cfg.Country,
		},
		encodings: encodings,
		fetcher:   NewFetcher(cfg.Timeout, cfg.Retries),
	}
}

// Load reads, unpacks and decodes the CSV file of kind.
func (s *CSVSource) Load(ctx context.Context, kind schema.TableKind) ([]string, []schema.RawRow, error) {
	location := s.locations[kind]
	if location == "" {
		return nil, nil, fmt.Errorf("%w: no location for %s table", ErrUnsupportedSource, kind)
	}

	data, err := s.read(ctx, location)
	if err != nil {
		return nil, nil, err
	}

	if strings.HasSuffix(strings.ToLower(location), ".zip") || isZip(data) {
		data, err = unzipFirstCSV(data)
		if err != nil {
			return nil, nil, err
		}
	}

	var r io.Reader = bytes.NewReader(data)
	switch enc := s.encodings[kind]; enc {
	case "", UTF8, "utf8":
	case Latin1, "latin1", "iso-8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, nil, fmt.Errorf("%w: encoding %q", ErrUnsupportedSource, enc)
	}

	columns, rows, err := ParseCSV(r)
	if err != nil {
		return nil, nil, err
	}
	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"kind":     kind,
		"location": location,
		"rows":     len(rows),
	}).Info("csv loaded")
	return columns, rows, nil
}

func (s *CSVSource) read(ctx context.Context, location string) ([]byte, error) {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return s.fetcher.Fetch(ctx, location)
	}
	return ioutil.ReadFile(location)
}

func isZip(data []byte) bool {
	return bytes.HasPrefix(data, []byte("PK\x03\x04"))
}

func unzipFirstCSV(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.EqualFold(path.Ext(f.Name), ".csv") {
			continue
		}
		if strings.HasPrefix(path.Base(f.Name), ".") || strings.HasPrefix(f.Name, "__MACOSX/") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return ioutil.ReadAll(rc)
	}
	return nil, ErrEmptyArchive
}

// ParseCSV reads a CSV with a header row. Rows whose width differs from the
// header are dropped and counted.
func ParseCSV(r io.Reader) ([]string, []schema.RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("%w: no header", ErrUnsupportedSource)
	}
	if err != nil {
		return nil, nil, err
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}
	columns[0] = strings.TrimPrefix(columns[0], utf8BOM)

	rows := []schema.RawRow{}
	ragged := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if len(rec) != len(columns) {
			ragged++
			continue
		}
		row := make(schema.RawRow, len(columns))
		for i, c := range columns {
			row[c] = rec[i]
		}
		rows = append(rows, row)
	}

	if ragged > 0 {
		log.WithFields(log.Fields{"prefix": logPrefix, "ragged": ragged}).Warn("rows with wrong field count skipped")
	}
	return columns, rows, nil
}
