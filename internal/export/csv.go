// Package export writes generated taxonomies to their boundary formats:
// fully quoted CSV, gzip-compressed CSV, JSON statistics, and an optional
// SQLite database.
package export

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/genreforge/genreforge/pkg/constants"
	pkgerrors "github.com/genreforge/genreforge/pkg/errors"
	"github.com/genreforge/genreforge/pkg/genres"
	"github.com/genreforge/genreforge/pkg/logging"
)

// csvColumns is the fixed CSV column order. Downstream consumers key on
// these abbreviated headers.
var csvColumns = []string{
	"ID", "Name", "Lvl", "PID", "Region", "Lang", "Period", "Status",
	"Instr", "Pioneers", "Artists", "Works", "Source", "BPM", "TimeSignature",
}

// CSV writes entries to path as comma-delimited CSV with every field quoted.
func CSV(path string, entries []genres.Entry) error {
	logging.Debug().Int("entries", len(entries)).Str("path", path).Msg("exporting csv")

	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.WrapIO("create", path, err)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, constants.WriteBufferSize)
	if err := writeRows(w, entries); err != nil {
		return pkgerrors.WrapExport("csv", path, err)
	}
	if err := w.Flush(); err != nil {
		return pkgerrors.WrapExport("csv", path, err)
	}

	return nil
}

// CompressionResult reports the byte sizes involved in a compressed export.
type CompressionResult struct {
	RawBytes        int
	CompressedBytes int
}

// Reduction returns the size reduction as a percentage of the raw size.
func (r CompressionResult) Reduction() float64 {
	if r.RawBytes == 0 {
		return 0
	}
	return (1 - float64(r.CompressedBytes)/float64(r.RawBytes)) * 100
}

// CompressedCSV writes the same CSV bytes as CSV through gzip. The CSV is
// rendered in memory first so the compression ratio can be reported.
func CompressedCSV(path string, entries []genres.Entry) (CompressionResult, error) {
	var raw bytes.Buffer
	if err := writeRows(&raw, entries); err != nil {
		return CompressionResult{}, pkgerrors.WrapExport("csv.gz", path, err)
	}

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	if _, err := zw.Write(raw.Bytes()); err != nil {
		return CompressionResult{}, pkgerrors.WrapExport("csv.gz", path, err)
	}
	if err := zw.Close(); err != nil {
		return CompressionResult{}, pkgerrors.WrapExport("csv.gz", path, err)
	}

	if err := os.WriteFile(path, compressed.Bytes(), constants.FilePermissions); err != nil {
		return CompressionResult{}, pkgerrors.WrapIO("write", path, err)
	}

	result := CompressionResult{RawBytes: raw.Len(), CompressedBytes: compressed.Len()}
	logging.Info().
		Str("path", path).
		Int("raw_bytes", result.RawBytes).
		Int("compressed_bytes", result.CompressedBytes).
		Float64("reduction_pct", result.Reduction()).
		Msg("compressed csv written")

	return result, nil
}

func writeRows(w io.Writer, entries []genres.Entry) error {
	if _, err := io.WriteString(w, quoteRow(csvColumns)); err != nil {
		return err
	}
	for i := range entries {
		if _, err := io.WriteString(w, quoteRow(entryFields(&entries[i]))); err != nil {
			return err
		}
	}
	return nil
}

// quoteRow renders one CSV record with every field quoted. encoding/csv
// only quotes fields that need it, so the record is assembled by hand.
func quoteRow(fields []string) string {
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
	return b.String()
}

// entryFields renders an entry in column order. Roots get an empty parent
// field rather than a zero.
func entryFields(e *genres.Entry) []string {
	parent := ""
	if e.ParentID != 0 {
		parent = strconv.FormatInt(e.ParentID, 10)
	}

	return []string{
		strconv.FormatInt(e.ID, 10),
		e.Name,
		strconv.Itoa(e.Level),
		parent,
		e.Region,
		e.Language,
		e.Period,
		e.Status.String(),
		e.Instruments,
		e.Pioneers,
		e.Artists,
		e.Works,
		e.Source,
		e.BPM,
		e.TimeSignature,
	}
}
