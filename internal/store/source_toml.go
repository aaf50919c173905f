package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/models"
)

// TOMLFileSource reads sections from a TOML file. The file is re-read on
// every Load; nothing is cached between calls.
//
// Only top-level tables become sections and only scalar fields (string,
// integer, float, boolean) are kept. Nested tables, arrays and datetimes
// inside a section are dropped.
type TOMLFileSource struct {
	path   string
	logger *logger.Logger
}

// NewTOMLFileSource returns a loader for the file at path.
func NewTOMLFileSource(path string, log *logger.Logger) *TOMLFileSource {
	return &TOMLFileSource{
		path:   path,
		logger: log,
	}
}

// Name implements [SourceLoader].
func (s *TOMLFileSource) Name() string {
	return "toml:" + s.path
}

// Path returns the watched file location.
func (s *TOMLFileSource) Path() string {
	return s.path
}

// Load implements [SourceLoader].
func (s *TOMLFileSource) Load(ctx context.Context) (models.Source, error) {
	if err := ctx.Err(); err != nil {
		return models.Source{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Source{}, fmt.Errorf("%w: %s", ErrSourceNotFound, s.path)
		}
		return models.Source{}, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}

	return DecodeTOML(data, s.logger)
}

// Version implements [SourceLoader]: the file modification time in
// nanoseconds.
func (s *TOMLFileSource) Version(ctx context.Context) (string, bool) {
	info, err := os.Stat(s.path)
	if err != nil {
		return "", false
	}

	return strconv.FormatInt(info.ModTime().UnixNano(), 10), true
}

// DecodeTOML turns a TOML document into a [models.Source], keeping the
// section and field order of the document.
func DecodeTOML(data []byte, log *logger.Logger) (models.Source, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return models.Source{}, fmt.Errorf("%w: %w", ErrSourceMalformed, err)
	}

	d := &tomlDecoder{raw: raw, index: make(map[string]int), logger: log}
	for _, key := range md.Keys() {
		switch len(key) {
		case 1:
			d.section(key[0])
		case 2:
			d.field(key[0], key[1])
		}
	}
	d.completeUnordered()

	return models.NewSource(d.sections...), nil
}

type tomlDecoder struct {
	raw      map[string]any
	sections []models.Section
	index    map[string]int
	logger   *logger.Logger
}

func (d *tomlDecoder) table(name string) (map[string]any, bool) {
	table, ok := d.raw[name].(map[string]any)
	return table, ok
}

func (d *tomlDecoder) section(name string) (int, bool) {
	if i, ok := d.index[name]; ok {
		return i, true
	}
	if _, ok := d.table(name); !ok {
		d.logger.Debug().Str("key", name).Msg("skipping top-level value outside any section")
		return 0, false
	}

	d.index[name] = len(d.sections)
	d.sections = append(d.sections, models.Section{Name: name})
	return d.index[name], true
}

func (d *tomlDecoder) field(section, key string) {
	i, ok := d.section(section)
	if !ok {
		return
	}
	if _, seen := d.sections[i].Record.Get(key); seen {
		return
	}

	table, _ := d.table(section)
	value, err := models.ValueOf(table[key])
	if err != nil {
		d.logger.Debug().
			Str("section", section).
			Str("key", key).
			Str("type", fmt.Sprintf("%T", table[key])).
			Msg("dropping non-scalar field")
		return
	}

	d.sections[i].Record = d.sections[i].Record.With(key, value)
}

// completeUnordered appends scalar fields the metadata did not list (inline
// tables), sorted by key.
func (d *tomlDecoder) completeUnordered() {
	for i, sec := range d.sections {
		table, _ := d.table(sec.Name)
		if len(table) == sec.Record.Len() {
			continue
		}

		missing := make([]string, 0, len(table))
		for key := range table {
			if _, ok := sec.Record.Get(key); !ok {
				missing = append(missing, key)
			}
		}
		sort.Strings(missing)

		for _, key := range missing {
			if value, err := models.ValueOf(table[key]); err == nil {
				d.sections[i].Record = d.sections[i].Record.With(key, value)
			}
		}
	}
}
