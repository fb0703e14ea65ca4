package ranking

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileSource reads a ranked envelope from a YAML or JSON file.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading path on every fetch.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// FetchRanked loads and decodes the file. YAML is a superset of JSON, so both
// encodings are accepted.
func (s *FileSource) FetchRanked(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Result{}, fmt.Errorf("read ranking file: %w", err)
	}
	var res Result
	if err := yaml.Unmarshal(data, &res); err != nil {
		return Result{}, fmt.Errorf("decode ranking file %s: %w", s.path, err)
	}
	return res, nil
}
