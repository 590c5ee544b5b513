package dataset

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const countryCSV = "country,date,cases,population\nUS,2021-01-01,100,331000000\nUS,2021-01-02,120,331000000\n"

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "dataset")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func zipped(t *testing.T, entries map[string][]byte) []byte {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParseCSVStripsBOM(t *testing.T) {
	columns, rows, err := ParseCSV(bytes.NewBufferString("\uFEFFdate,cases\n2020-01-01,1\n2020-01-02\n2020-01-03,3\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"date", "cases"}, columns)
	require.Len(t, rows, 2)
	assert.Equal(t, schema.RawRow{"date": "2020-01-01", "cases": "1"}, rows[0])
}

func TestParseCSVEmpty(t *testing.T) {
	_, _, err := ParseCSV(bytes.NewBufferString(""))
	assert.True(t, errors.Is(err, ErrUnsupportedSource))
}

func TestLoadLocalZipLatin1(t *testing.T) {
	dir := tempDir(t)
	latin1 := []byte("country,date,cases\nC\xf4te d'Ivoire,2021-01-01,5\n")
	archive := filepath.Join(dir, "covid_daily_country.zip")
	require.NoError(t, ioutil.WriteFile(archive, zipped(t, map[string][]byte{"covid_daily_country.csv": latin1}), 0600))

	src := NewCSVSource(CSVConfig{
		Country:  archive,
		Encoding: map[schema.TableKind]string{schema.PerEntity: "latin-1"},
	})
	columns, rows, err := src.Load(context.Background(), schema.PerEntity)
	require.NoError(t, err)
	assert.Equal(t, []string{"country", "date", "cases"}, columns)
	require.Len(t, rows, 1)
	assert.Equal(t, "Côte d'Ivoire", rows[0]["country"])
}

func TestLoadEmptyArchive(t *testing.T) {
	dir := tempDir(t)
	archive := filepath.Join(dir, "empty.zip")
	require.NoError(t, ioutil.WriteFile(archive, zipped(t, map[string][]byte{"readme.txt": []byte("x")}), 0600))

	src := NewCSVSource(CSVConfig{Country: archive})
	_, _, err := src.Load(context.Background(), schema.PerEntity)
	assert.True(t, errors.Is(err, ErrEmptyArchive))
}

func TestLoadUnknownLocationOrEncoding(t *testing.T) {
	dir := tempDir(t)
	file := filepath.Join(dir, "global.csv")
	require.NoError(t, ioutil.WriteFile(file, []byte("date,cases\n"), 0600))

	src := NewCSVSource(CSVConfig{Global: file, Encoding: map[schema.TableKind]string{schema.Aggregate: "ebcdic"}})
	_, _, err := src.Load(context.Background(), schema.Aggregate)
	assert.True(t, errors.Is(err, ErrUnsupportedSource))

	_, _, err = src.Load(context.Background(), schema.PerEntity)
	assert.True(t, errors.Is(err, ErrUnsupportedSource))
}

func TestLoadHTTPRetries(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(countryCSV))
	}))
	defer ts.Close()

	src := NewCSVSource(CSVConfig{Country: ts.URL + "/covid_daily_country.csv", Retries: 3})
	src.fetcher.initialBackoff = time.Millisecond

	_, rows, err := src.Load(context.Background(), schema.PerEntity)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetchGivesUp(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	f := NewFetcher(time.Second, 5)
	f.initialBackoff = time.Millisecond
	_, err := f.Fetch(context.Background(), ts.URL)
	assert.True(t, errors.Is(err, ErrFetch))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "client errors are not retried")
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, backoff(100*time.Millisecond, 0, time.Second))
	assert.Equal(t, 400*time.Millisecond, backoff(100*time.Millisecond, 2, time.Second))
	assert.Equal(t, time.Second, backoff(100*time.Millisecond, 10, time.Second))
}
