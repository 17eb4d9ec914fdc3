package logx

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewWritesStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Info().Str("root", "BU").Msg("derived")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v (%q)", err, buf.String())
	}
	if entry["root"] != "BU" {
		t.Errorf("entry[\"root\"] = %v, want \"BU\"", entry["root"])
	}
	if entry["message"] != "derived" {
		t.Errorf("entry[\"message\"] = %v, want \"derived\"", entry["message"])
	}
}
