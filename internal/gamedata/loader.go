package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// DataDirEnv names a directory whose JSON files are read instead of the
// embedded ones. Files missing there fall back to the embedded copy.
const DataDirEnv = "ARLQ_DATA_DIR"

// Load decodes a data file, preferring the directory named by DataDirEnv.
func Load[T any](filename string) (T, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		if _, err := fs.Stat(os.DirFS(dir), filename); err == nil {
			return LoadFrom[T](os.DirFS(dir), filename)
		}
	}
	return LoadFrom[T](dataFS, filename)
}

// LoadFrom decodes a JSON file from fsys. Unknown keys are an error.
func LoadFrom[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("read data file %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("parse %s: %w", filename, err)
	}
	return result, nil
}
