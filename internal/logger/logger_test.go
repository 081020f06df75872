package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rogerio-castellano/inventory-store/internal/config"
)

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.LoggerConfig{Level: "info", Format: "console"}, &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Debug("hidden")
	log.Infof("Added %d of %s", 10, "apple")
	log.Warn("careful")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], " - INFO - Added 10 of apple") {
		t.Errorf("unexpected info line %q", lines[0])
	}
	if !strings.Contains(lines[1], " - WARN - careful") {
		t.Errorf("unexpected warn line %q", lines[1])
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.LoggerConfig{Level: "debug", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.WithComponent("repo").Errorw("Could not decode JSON", "path", "inventory.json")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected a JSON record, got %q: %v", buf.String(), err)
	}
	if record["level"] != "error" {
		t.Errorf("expected level error, got %v", record["level"])
	}
	if record["component"] != "repo" || record["path"] != "inventory.json" {
		t.Errorf("missing fields in %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Errorf("expected a timestamp in %v", record)
	}
}

func TestNew_Invalid(t *testing.T) {
	if _, err := New(config.LoggerConfig{Level: "loud", Format: "console"}, &bytes.Buffer{}); err == nil {
		t.Error("expected an error for an unknown level")
	}
	if _, err := New(config.LoggerConfig{Level: "info", Format: "xml"}, &bytes.Buffer{}); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
