package tablefile

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driven"
)

// Format identifies a table file encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatCSV  Format = "csv"
)

// Ensure File implements the interfaces.
var (
	_ driven.CutterTableStore  = (*File)(nil)
	_ driven.CutterTableWriter = (*File)(nil)
)

// FormatFor maps a path's extension to a format.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: cutter table %q", domain.ErrUnsupportedType, path)
	}
}

// File is a Cutter table stored in a single file.
type File struct {
	path   string
	format Format
}

// New returns a table file for path. The format comes from the extension.
func New(path string) (*File, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	return &File{path: path, format: format}, nil
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Load reads and decodes the file.
func (f *File) Load(_ context.Context) (*domain.CutterTable, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTableUnavailable, f.path)
	}
	if err != nil {
		return nil, err
	}

	entries, err := Decode(f.format, data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return domain.NewCutterTable(entries), nil
}

// Replace encodes entries and writes them over the file.
func (f *File) Replace(_ context.Context, entries map[string]string) error {
	data, err := Encode(f.format, domain.NewCutterTable(entries))
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0644)
}

// Decode parses table data in the given format.
func Decode(format Format, data []byte) (map[string]string, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatTOML:
		return decodeTOML(data)
	case FormatCSV:
		return decodeCSV(data)
	default:
		return nil, fmt.Errorf("%w: format %q", domain.ErrUnsupportedType, format)
	}
}

// Encode writes table in the given format with keys in sorted order.
func Encode(format Format, table *domain.CutterTable) ([]byte, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(table)
	case FormatTOML:
		return toml.Marshal(table.Entries())
	case FormatCSV:
		return encodeCSV(table)
	default:
		return nil, fmt.Errorf("%w: format %q", domain.ErrUnsupportedType, format)
	}
}

func decodeJSON(data []byte) (map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return toDigits(raw)
}

func decodeTOML(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return toDigits(raw)
}

func toDigits(raw map[string]any) (map[string]string, error) {
	entries := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			entries[key] = v
		case json.Number:
			if _, err := v.Int64(); err != nil {
				return nil, fmt.Errorf("entry %q: %w", key, domain.ErrInvalidInput)
			}
			entries[key] = v.String()
		case int64:
			entries[key] = strconv.FormatInt(v, 10)
		default:
			return nil, fmt.Errorf("entry %q has %T value: %w", key, value, domain.ErrInvalidInput)
		}
	}
	return entries, nil
}

func decodeCSV(data []byte) (map[string]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comment = '#'
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true

	entries := make(map[string]string)
	first := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		if first && strings.EqualFold(record[0], "prefix") && strings.EqualFold(record[1], "digits") {
			first = false
			continue
		}
		first = false
		entries[record[0]] = record[1]
	}
}

func encodeJSON(table *domain.CutterTable) ([]byte, error) {
	data, err := json.MarshalIndent(table.Entries(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func encodeCSV(table *domain.CutterTable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"prefix", "digits"}); err != nil {
		return nil, err
	}
	for _, key := range table.Keys() {
		digits, _ := table.Lookup(key)
		if err := w.Write([]string{key, digits}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
