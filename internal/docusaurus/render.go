package docusaurus

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docuconf/internal/foundation"
)

// Format selects how a SiteConfig is serialised.
type Format string

const (
	FormatJS   Format = "js"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var formatNames = foundation.NewNormalizer(map[string]Format{
	"js":         FormatJS,
	"javascript": FormatJS,
	"json":       FormatJSON,
	"yaml":       FormatYAML,
	"yml":        FormatYAML,
})

// ParseFormat normalises a user supplied format name.
func ParseFormat(raw string) (Format, error) {
	return formatNames.NormalizeWithError(raw)
}

// FileName returns the conventional output file name for the format.
func (f Format) FileName() string {
	switch f {
	case FormatJSON:
		return "docusaurus.config.json"
	case FormatYAML:
		return "docusaurus.config.yaml"
	default:
		return "docusaurus.config.js"
	}
}

// Render serialises cfg. The js format is a CommonJS module exporting the
// configuration object, which is what the site build loads.
func Render(cfg *SiteConfig, format Format) ([]byte, error) {
	root := cfg.ToMap()

	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(root)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config as yaml: %w", err)
		}
		return data, nil
	case FormatJSON, FormatJS:
		data, err := marshalJSON(root)
		if err != nil {
			return nil, err
		}
		if format == FormatJSON {
			return append(data, '\n'), nil
		}
		var buf bytes.Buffer
		buf.WriteString("module.exports = ")
		buf.Write(data)
		buf.WriteString(";\n")
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal config as json: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
