// Package catalog loads the static interview question pools.
//
// The catalog is a YAML document mapping an interview type ("hr", "technical")
// to an ordered list of question strings. It is read once at startup and
// immutable afterwards. A missing file or a missing type yields an empty pool
// rather than an error; only a malformed document fails.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var embeddedCatalog []byte

// Catalog holds the immutable question pools keyed by interview type.
type Catalog struct {
	pools map[string][]string
}

// Load returns the catalog for the given path. An empty path selects the
// built-in catalog; a nonexistent file yields an empty catalog.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return LoadFile(path)
}

// Default parses the catalog embedded in the binary.
func Default() (*Catalog, error) {
	cat, err := parse(embeddedCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return cat, nil
}

// LoadFile reads a catalog document from disk. Absence of the file is not an
// error: practice simply proceeds with empty pools.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Catalog{pools: map[string][]string{}}, nil
		}
		return nil, fmt.Errorf("read catalog %q: %w", path, err)
	}
	cat, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	return cat, nil
}

func parse(data []byte) (*Catalog, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	pools := make(map[string][]string, len(raw))
	for key, questions := range raw {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		kept := make([]string, 0, len(questions))
		for _, question := range questions {
			if question = strings.TrimSpace(question); question != "" {
				kept = append(kept, question)
			}
		}
		pools[key] = kept
	}
	return &Catalog{pools: pools}, nil
}

// Pool returns the question list for an interview type. The returned slice is
// a copy; callers may not mutate catalog state.
func (c *Catalog) Pool(interviewType string) []string {
	if c == nil {
		return nil
	}
	questions := c.pools[strings.ToLower(strings.TrimSpace(interviewType))]
	if len(questions) == 0 {
		return nil
	}
	out := make([]string, len(questions))
	copy(out, questions)
	return out
}

// Types returns the interview types with at least one question, sorted.
func (c *Catalog) Types() []string {
	if c == nil {
		return nil
	}
	types := make([]string, 0, len(c.pools))
	for key, questions := range c.pools {
		if len(questions) > 0 {
			types = append(types, key)
		}
	}
	sort.Strings(types)
	return types
}
