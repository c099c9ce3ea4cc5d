package output

import (
	"encoding/json"
	"unicode/utf8"
)

// JSONFormatter formats results as JSON Lines (one JSON object per file).
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// jsonResult is the JSON serialization format for a file.
// Text is set for valid UTF-8 data, Data (base64) otherwise.
type jsonResult struct {
	Type   string `json:"type"`
	File   string `json:"file"`
	Bytes  int    `json:"bytes"`
	Binary bool   `json:"binary,omitempty"`
	Text   string `json:"text,omitempty"`
	Data   []byte `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (f *JSONFormatter) Format(buf []byte, result Result, multiFile bool) []byte {
	jr := jsonResult{
		Type:   "file",
		File:   result.Path,
		Bytes:  len(result.Data),
		Binary: result.Binary,
	}
	switch {
	case result.Err != nil:
		jr.Type = "error"
		jr.Error = result.Err.Error()
	case result.ReadErr != nil:
		jr.Error = result.ReadErr.Error()
	}
	if !result.Binary && utf8.Valid(result.Data) {
		jr.Text = string(result.Data)
	} else {
		jr.Data = result.Data
	}

	data, _ := json.Marshal(jr)
	buf = append(buf, data...)
	buf = append(buf, '\n')
	return buf
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
