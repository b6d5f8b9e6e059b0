package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/agenda/pkg/core"
)

// ExportPrefix starts every export file name.
const ExportPrefix = "meeting-agenda-"

// Format selects an export serializer.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Serializer converts a session snapshot into an export artifact.
type Serializer interface {
	Serialize(s core.Session) ([]byte, error)
	// Ext is the file extension, including the leading dot.
	Ext() string
}

// Serializers returns the standard set of export serializers.
func Serializers() map[Format]Serializer {
	return map[Format]Serializer{
		FormatJSON: JSONSerializer{},
		FormatYAML: YAMLSerializer{},
	}
}

// ParseFormat resolves a format name ("json", "yaml" or "yml").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// JSONSerializer writes the session as JSON indented by two spaces.
type JSONSerializer struct{}

func (JSONSerializer) Serialize(s core.Session) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

func (JSONSerializer) Ext() string { return ".json" }

// YAMLSerializer writes the session as YAML indented by two spaces.
type YAMLSerializer struct{}

func (YAMLSerializer) Serialize(s core.Session) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (YAMLSerializer) Ext() string { return ".yaml" }

func serializerFor(f Format) (Serializer, error) {
	s, ok := Serializers()[f]
	if !ok {
		return nil, fmt.Errorf("unknown export format %q", f)
	}
	return s, nil
}

// ExportFilename names the export artifact after the meeting date: meeting-agenda-<date><ext>.
func ExportFilename(s core.Session, f Format) string {
	ext := ".json"
	if ser, err := serializerFor(f); err == nil {
		ext = ser.Ext()
	}
	date := strings.NewReplacer("/", "-", `\`, "-").Replace(s.MeetingInfo.Date)
	return ExportPrefix + date + ext
}

// Export writes the current session to w. Nothing is persisted.
func (t *Tracker) Export(w io.Writer, f Format) error {
	ser, err := serializerFor(f)
	if err != nil {
		return err
	}
	data, err := ser.Serialize(t.Session())
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportToDir writes the export artifact into dir and returns its path.
func (t *Tracker) ExportToDir(dir string, f Format) (string, error) {
	ser, err := serializerFor(f)
	if err != nil {
		return "", err
	}
	s := t.Session()
	data, err := ser.Serialize(s)
	if err != nil {
		return "", fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, ExportFilename(s, f))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

// ListExports returns the export artifacts found in dir, sorted by name.
func ListExports(dir string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), ExportPrefix+"*.{json,yaml}")
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}
