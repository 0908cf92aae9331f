package frame

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultName is the distinguished library entry used when a requested
// frame does not exist.
const DefaultName = "default"

// ErrMalformedConfig reports a frames file that could not be parsed.
// Callers are expected to fall back to an empty Library and keep serving.
var ErrMalformedConfig = errors.New("malformed frame configuration")

// Config is a single frame's style mapping: property key → CSS value,
// e.g. "image_box_top" → "10%".
type Config map[string]string

// Library maps frame names to their configurations. One entry is usually
// named "default" and acts as the fallback for unknown frame names.
type Library map[string]Config

// ParseLibrary decodes a JSON frames document of the shape
// {"frameName": {"property": "value", ...}, ...}.
func ParseLibrary(data []byte) (Library, error) {
	var lib Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return Library{}, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}
	if lib == nil {
		lib = Library{}
	}
	return lib, nil
}

// LoadLibrary reads and parses the frames file at path. On any failure it
// returns an empty Library together with the error, so callers can log and
// degrade instead of aborting.
func LoadLibrary(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Library{}, fmt.Errorf("read frames file: %w", err)
	}
	return ParseLibrary(data)
}
