package stash

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Codec encodes and decodes whole artifacts. Codecs are stateless; the same
// value is shared by every operation that needs the format.
type Codec interface {
	// Name is the codec's short name ("toml", "yaml", "json").
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Registered codecs. TOML is the Settings default, JSON the Data default;
// the artifact name's extension can select any of them.
var (
	TOML Codec = tomlCodec{}
	YAML Codec = yamlCodec{}
	JSON Codec = jsonCodec{}
)

type tomlCodec struct{}

func (tomlCodec) Name() string                       { return "toml" }
func (tomlCodec) Marshal(v any) ([]byte, error)      { return toml.Marshal(v) }
func (tomlCodec) Unmarshal(data []byte, v any) error { return toml.Unmarshal(data, v) }

type yamlCodec struct{}

func (yamlCodec) Name() string                       { return "yaml" }
func (yamlCodec) Marshal(v any) ([]byte, error)      { return yaml.Marshal(v) }
func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

var codecByExt = map[string]Codec{
	".toml": TOML,
	".yaml": YAML,
	".yml":  YAML,
	".json": JSON,
}

// CodecByName returns a registered codec by its short name.
func CodecByName(name string) (Codec, bool) {
	switch strings.ToLower(name) {
	case "toml":
		return TOML, true
	case "yaml", "yml":
		return YAML, true
	case "json":
		return JSON, true
	default:
		return nil, false
	}
}

// codecFor picks the codec for an artifact name. The file extension wins;
// an unrecognized extension falls back to the role's default.
func codecFor(name string, fallback Codec) Codec {
	if c, ok := codecByExt[filepath.Ext(name)]; ok {
		return c
	}
	return fallback
}
