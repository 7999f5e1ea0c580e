// Package narrative provides the report texts (score details, findings, and
// career guidance) as externalized templates. Templates are stored as JSON
// files and embedded at compile time.
package narrative

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Template files.
const (
	ScoringFile    = "scoring.json"
	StrengthsFile  = "strengths.json"
	WeaknessesFile = "weaknesses.json"
	MatchingFile   = "matching.json"
)

//go:embed *.json
var templateFiles embed.FS

// cache stores parsed template files to avoid repeated JSON parsing
var (
	cache   = make(map[string]map[string]string)
	cacheMu sync.RWMutex
)

// Vars holds placeholder values for Format
type Vars map[string]string

// Get retrieves a template by filename and key.
// The filename should not include the path (e.g., "scoring.json").
// Returns an error if the file or key is not found.
func Get(filename, key string) (string, error) {
	templates, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	tmpl, exists := templates[key]
	if !exists {
		return "", fmt.Errorf("template key %q not found in %s", key, filename)
	}

	return tmpl, nil
}

// MustGet retrieves a template by filename and key, panicking if not found.
// Every key used by the analysis packages is covered by tests, so a panic
// here means an embedded file is out of sync with the code.
func MustGet(filename, key string) string {
	tmpl, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load template: %v", err))
	}
	return tmpl
}

// Format replaces template placeholders in the form {{.Key}} with values from data.
func Format(template string, data Vars) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// Render is MustGet followed by Format.
func Render(filename, key string, data Vars) string {
	return Format(MustGet(filename, key), data)
}

// loadFile loads and caches a template file.
func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	if templates, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return templates, nil
	}
	cacheMu.RUnlock()

	data, err := templateFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", filename, err)
	}

	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse template file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = templates
	cacheMu.Unlock()

	return templates, nil
}

// List returns all template keys in a file, sorted.
func List(filename string) ([]string, error) {
	templates, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(templates))
	for key := range templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Lines returns the templates whose keys start with prefix, ordered by key.
// Numbered keys such as "steps.1".."steps.4" form a list this way.
func Lines(filename, prefix string) []string {
	keys, err := List(filename)
	if err != nil {
		panic(fmt.Sprintf("failed to load template: %v", err))
	}

	var out []string
	for _, key := range keys {
		if strings.HasPrefix(key, prefix) {
			out = append(out, MustGet(filename, key))
		}
	}
	return out
}
