package stash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecFor(t *testing.T) {
	tests := []struct {
		name     string
		artifact string
		fallback Codec
		want     string
	}{
		{"toml extension", "config.toml", JSON, "toml"},
		{"yaml extension", "prefs.yaml", TOML, "yaml"},
		{"yml extension", "prefs.yml", TOML, "yaml"},
		{"json extension", "mapping.json", TOML, "json"},
		{"unknown extension falls back", "state.conf", JSON, "json"},
		{"no extension falls back", "state", TOML, "toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codecFor(tt.artifact, tt.fallback).Name())
		})
	}
}

func TestCodecByName(t *testing.T) {
	for name, want := range map[string]Codec{
		"toml": TOML,
		"yaml": YAML,
		"yml":  YAML,
		"YAML": YAML,
		"json": JSON,
	} {
		c, ok := CodecByName(name)
		require.True(t, ok, name)
		assert.Equal(t, want, c)
	}

	_, ok := CodecByName("xml")
	assert.False(t, ok)
}

func TestJSONCodec_Indented(t *testing.T) {
	data, err := JSON.Marshal(map[string]string{"a": "1"})
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")
}

func TestCodecs_RejectMalformed(t *testing.T) {
	var out map[string]any
	assert.Error(t, TOML.Unmarshal([]byte("= broken"), &out))
	assert.Error(t, JSON.Unmarshal([]byte("{broken"), &out))
	assert.Error(t, YAML.Unmarshal([]byte("\t: broken"), &out))
}
