package output

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/mj1618/nc-clear/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatNone Format = ""
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Summary is the result of one run.
type Summary struct {
	Mode      string          `yaml:"mode"              json:"mode"`
	DryRun    bool            `yaml:"dry_run,omitempty" json:"dry_run,omitempty"`
	Found     int             `yaml:"found"             json:"found"`
	Closed    int             `yaml:"closed"            json:"closed"`
	ElapsedMs int64           `yaml:"elapsed_ms"        json:"elapsed_ms"`
	Groups    []model.Element `yaml:"groups,omitempty"  json:"groups,omitempty"`
}

// Print serializes v to w in the given format. FormatNone prints nothing.
func Print(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatNone:
		return nil
	case FormatJSON:
		return PrintJSON(w, v)
	case FormatYAML:
		return PrintYAML(w, v)
	default:
		return errors.Newf("unsupported output format: %s", format)
	}
}

// PrintJSON serializes v to w as indented JSON.
func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "json encode")
	}
	return nil
}

// PrintYAML serializes v to w as YAML.
func PrintYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "yaml encode")
	}
	return enc.Close()
}
