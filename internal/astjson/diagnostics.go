package astjson

import (
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// EncodeDiagnostics renders diagnostics as a pretty-printed JSON object
// of the form {"diagnostics":["...", ...]}, built incrementally with
// github.com/tidwall/sjson (one Set call per message) rather than
// encoding/json, so cmd/tigerc's --format=json path exercises the same
// tidwall family the AST decoder uses for parsing. The result is passed
// through github.com/tidwall/pretty for stable indentation.
func EncodeDiagnostics(diagnostics []string) (string, error) {
	raw := `{"diagnostics":[]}`
	var err error
	for _, msg := range diagnostics {
		raw, err = sjson.Set(raw, "diagnostics.-1", msg)
		if err != nil {
			return "", err
		}
	}
	return string(pretty.Pretty([]byte(raw))), nil
}
