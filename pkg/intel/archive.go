package intel

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Archive persists saved summaries under the configured base path, one
// JSON document per analysis. Everything else in the back office is
// session-only; a saved analysis is the one thing worth keeping.
type Archive struct {
	d *diskv.Diskv
}

// OpenArchive returns an Archive rooted at basePath.
func OpenArchive(basePath string) (*Archive, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("intel: archive path required")
	}
	return &Archive{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

// Save writes a summary and returns its key.
func (a *Archive) Save(s Summary) (string, error) {
	key := toKey(s)
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", err
	}
	if err := a.d.Write(key, data); err != nil {
		return "", fmt.Errorf("intel: save %s: %w", key, err)
	}
	return key, nil
}

// Load reads a saved summary back by key.
func (a *Archive) Load(key string) (Summary, error) {
	data, err := a.d.Read(key)
	if err != nil {
		return Summary{}, fmt.Errorf("intel: load %s: %w", key, err)
	}
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return Summary{}, fmt.Errorf("intel: decode %s: %w", key, err)
	}
	return s, nil
}

// Keys lists saved summary keys, sorted.
func (a *Archive) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range a.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Erase removes a saved summary.
func (a *Archive) Erase(key string) error {
	return a.d.Erase(key)
}

// toKey makes `source-date`, good enough to tell saved analyses apart.
func toKey(s Summary) string {
	source := strings.TrimSuffix(s.Source, ".pdf")
	if source == "" {
		source = "analysis"
	}
	return fmt.Sprintf("%s-%s", source, s.AnalyzedAt.UTC().Format("2006-01-02T15-04-05"))
}
