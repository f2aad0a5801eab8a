package stash

import (
	"os"
	"strings"

	"github.com/subosito/gotenv"
)

// LoadEnv parses a dotenv file, applies its entries to the process
// environment, and returns them. A missing file is not an error: the current
// process environment is returned unchanged instead.
func LoadEnv(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return environMap(), nil
		}
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	env, err := gotenv.StrictParse(f)
	if err != nil {
		return nil, &DecodeError{Codec: "dotenv", Path: path, Err: err}
	}
	for k, v := range env {
		os.Setenv(k, v)
	}
	return env, nil
}

// Getenv returns key from a .env file in the working directory when one
// defines it, falling back to the process environment. Unlike LoadEnv, an
// unreadable or malformed .env is not an error here: lookups degrade to the
// plain environment, so a broken overlay file never breaks variable reads.
func Getenv(key string) string {
	f, err := os.Open(".env")
	if err != nil {
		return os.Getenv(key)
	}
	defer f.Close()
	if env, err := gotenv.StrictParse(f); err == nil {
		if v, ok := env[key]; ok {
			return v
		}
	}
	return os.Getenv(key)
}

func environMap() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
