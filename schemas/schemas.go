// Package schemas embeds the JSON Schema documents shipped with resume-ats.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema file names.
const (
	CatalogSchema = "catalog.schema.json"
	ReportSchema  = "report.schema.json"
)

// Load returns the content of an embedded schema file.
func Load(name string) (string, error) {
	data, err := schemaFiles.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read schema %s: %w", name, err)
	}
	return string(data), nil
}

// MustLoad returns an embedded schema, panicking if it does not exist.
func MustLoad(name string) string {
	s, err := Load(name)
	if err != nil {
		panic(err)
	}
	return s
}
