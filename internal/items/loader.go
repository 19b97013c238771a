// Package items loads selectable records from JSON, JSON-lines and YAML files.
package items

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/selectkit/internal/logging"
	"github.com/rshade/selectkit/internal/searchutil"
)

// StdinSource is the source name that reads JSON from standard input.
const StdinSource = "-"

// Source formats.
const (
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
)

// maxLineSize bounds a single JSON-lines record.
const maxLineSize = 4 * 1024 * 1024

// Loader errors.
var (
	ErrNoSources         = errors.New("no item sources given")
	ErrUnsupportedFormat = errors.New("unsupported item file format")
	ErrNotAList          = errors.New("item source must contain a list of records")
)

// Loader reads item sources. Stdin is injectable for tests.
type Loader struct {
	Stdin io.Reader
}

// NewLoader returns a Loader reading standard input from os.Stdin.
func NewLoader() *Loader {
	return &Loader{Stdin: os.Stdin}
}

// DetectFormat picks the format from a source's extension.
func DetectFormat(source string) (string, error) {
	if source == StdinSource {
		return FormatJSON, nil
	}
	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		return FormatJSON, nil
	case ".jsonl", ".ndjson":
		return FormatJSONL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, source)
	}
}

// LoadAll loads every source concurrently and concatenates the records in
// argument order.
func (l *Loader) LoadAll(ctx context.Context, sources []string) ([]searchutil.Item, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	results := make([][]searchutil.Item, len(sources))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, source := range sources {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			loaded, err := l.Load(gCtx, source)
			if err != nil {
				return err
			}
			results[i] = loaded
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]searchutil.Item, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

// Load reads a single source.
func (l *Loader) Load(ctx context.Context, source string) ([]searchutil.Item, error) {
	format, err := DetectFormat(source)
	if err != nil {
		return nil, err
	}

	var r io.Reader
	if source == StdinSource {
		if l.Stdin == nil {
			return nil, errors.New("stdin is not available")
		}
		r = l.Stdin
	} else {
		f, openErr := os.Open(source)
		if openErr != nil {
			return nil, fmt.Errorf("opening item source: %w", openErr)
		}
		defer f.Close()
		r = f
	}

	loaded, err := Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	logging.FromContext(ctx).Debug().
		Str("component", "items").
		Str("source", source).
		Str("format", format).
		Int("count", len(loaded)).
		Msg("items loaded")
	return loaded, nil
}

// Decode reads records in the given format.
func Decode(r io.Reader, format string) ([]searchutil.Item, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(r)
	case FormatJSONL:
		return decodeJSONLines(r)
	case FormatYAML:
		return decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func decodeJSON(r io.Reader) ([]searchutil.Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []searchutil.Item{}, nil
	}

	var raw any
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return toItems(raw)
}

func decodeJSONLines(r io.Reader) ([]searchutil.Item, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	out := []searchutil.Item{}
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var item searchutil.Item
		if err := json.Unmarshal([]byte(text), &item); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeYAML(r io.Reader) ([]searchutil.Item, error) {
	var raw any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return []searchutil.Item{}, nil
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return toItems(raw)
}

// toItems accepts either a list of records or an object with an "items" list.
func toItems(raw any) ([]searchutil.Item, error) {
	if obj, ok := raw.(map[string]any); ok {
		inner, found := obj["items"]
		if !found {
			return nil, ErrNotAList
		}
		raw = inner
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, ErrNotAList
	}

	out := make([]searchutil.Item, 0, len(list))
	for i, entry := range list {
		record, isMap := entry.(map[string]any)
		if !isMap {
			return nil, fmt.Errorf("%w: entry %d is %T", ErrNotAList, i, entry)
		}
		out = append(out, searchutil.Item(record))
	}
	return out, nil
}
