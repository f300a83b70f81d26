package citefile

import "log/slog"

// ParseOpt bundles decoding options. The zero value is the lenient default.
type ParseOpt struct {
	// Strict turns unknown fields from warnings into errors.
	Strict bool
	// Logger receives debug records about decode decisions (variant
	// selection, defaults applied). Nil discards them.
	Logger *slog.Logger
}

// Format names the serialization of a citation file.
type Format int

const (
	FormatYAML Format = iota // CITATION.cff and other YAML files.
	FormatJSON               // JSON, with comments and trailing commas tolerated.
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "yaml"
}
