// Package prefsfunc loads and saves the per-user preferences file:
// the bulk replace pairs and the selected theme.
package prefsfunc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"textscrub/replacefunc"
	"textscrub/themefunc"
)

const (
	AppDirName    = "textscrub"
	PrefsFileName = "textscrub-prefs.json"
)

var (
	ErrMalformed = errors.New("malformed preferences file")
	ErrLoad      = errors.New("failed to load preferences")
	ErrSave      = errors.New("failed to save preferences")
)

// Document is everything the preferences file holds.
type Document struct {
	Pairs replacefunc.PairList
	Theme themefunc.Theme
}

// Default returns an empty pair list and the Standard theme.
func Default() Document {
	return Document{Theme: themefunc.Standard}
}

// wireDocument is the on-disk shape:
// {"bulk_replace_pairs": [[key, value], ...], "selected_theme": "Standard"}
type wireDocument struct {
	BulkReplacePairs [][]string `json:"bulk_replace_pairs"`
	SelectedTheme    *string    `json:"selected_theme,omitempty"`
}

// ConfigDir returns ~/.config/textscrub.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", AppDirName), nil
}

// DefaultPath returns the fixed per-user preferences path.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, PrefsFileName), nil
}

// Load reads the preferences at path. A missing file yields the defaults
// and no error. Any content that cannot be decoded yields the defaults and
// an error wrapping ErrMalformed.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses the wire format.
func Decode(data []byte) (Document, error) {
	var wire wireDocument
	if err := json.Unmarshal(data, &wire); err != nil {
		return Default(), fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	doc := Default()
	pairs := make([]replacefunc.Pair, 0, len(wire.BulkReplacePairs))
	for i, kv := range wire.BulkReplacePairs {
		if len(kv) != 2 {
			return Default(), fmt.Errorf("%w: pair %d has %d elements", ErrMalformed, i, len(kv))
		}
		p, err := replacefunc.NewPair(kv[0], kv[1])
		if err != nil {
			return Default(), fmt.Errorf("%w: pair %d: %w", ErrMalformed, i, err)
		}
		pairs = append(pairs, p)
	}
	doc.Pairs = replacefunc.NewPairList(pairs...)

	if wire.SelectedTheme != nil {
		theme, err := themefunc.ParseTheme(*wire.SelectedTheme)
		if err != nil {
			return Default(), fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		doc.Theme = theme
	}
	return doc, nil
}

// Encode renders doc in the wire format. The output is deterministic.
func Encode(doc Document) ([]byte, error) {
	theme := doc.Theme.String()
	wire := wireDocument{
		BulkReplacePairs: make([][]string, 0, doc.Pairs.Len()),
		SelectedTheme:    &theme,
	}
	for _, p := range doc.Pairs.Pairs() {
		wire.BulkReplacePairs = append(wire.BulkReplacePairs, []string{p.Key, p.Value})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(wire); err != nil {
		return nil, fmt.Errorf("error serializing preferences: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes doc to path, creating the directory if needed. The file is
// overwritten in place.
func Save(path string, doc Document) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("%w: error creating config directory: %w", ErrSave, err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}
