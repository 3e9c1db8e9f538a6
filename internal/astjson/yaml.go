package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/tiger-compiler/core/internal/ast"
)

// DecodeYAML accepts a YAML-authored AST fixture (the same "kind"-tagged
// shape as Decode, just friendlier to hand-edit as testdata), converts
// it to JSON via github.com/goccy/go-yaml, and decodes the result the
// same way Decode does. YAML fixtures and JSON fixtures therefore share
// one decoding path.
func DecodeYAML(raw []byte) (ast.Expression, error) {
	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("astjson: invalid YAML: %w", err)
	}
	asJSON, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("astjson: re-encoding YAML as JSON: %w", err)
	}
	return Decode(string(asJSON))
}
