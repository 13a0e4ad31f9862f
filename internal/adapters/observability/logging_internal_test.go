package observability

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger_ProdIsJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("prod", &buf)

	l.Debug().Msg("hidden")
	l.Info().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked in prod: %s", out)
	}
	if !strings.Contains(out, `"message":"shown"`) || !strings.Contains(out, `"app":"hbnb-web"`) {
		t.Fatalf("unexpected JSON output: %s", out)
	}
}

func TestNewLogger_DevLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("dev", &buf)

	l.Debug().Msg("element missing")

	if !strings.Contains(buf.String(), "element missing") {
		t.Fatalf("expected debug line in dev output, got %q", buf.String())
	}
}
