package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/modu-ai/cppnew/internal/config"
	"github.com/modu-ai/cppnew/internal/core/git"
)

func TestNewDependencies(t *testing.T) {
	d, err := NewDependencies(config.NewDefaultSettings(), afero.NewMemMapFs(), io.Discard)
	if err != nil {
		t.Fatalf("NewDependencies() error = %v", err)
	}
	if d.Registry == nil || d.Renderer == nil || d.Materializer == nil || d.Logger == nil {
		t.Errorf("missing dependency: %+v", d)
	}
	if d.VCS != nil {
		t.Error("version control is disabled by default")
	}
	if len(d.Registry.Describe()) != 2 {
		t.Errorf("Describe() = %v, want two templates", d.Registry.Describe())
	}
}

func TestNewDependencies_VCS(t *testing.T) {
	settings := config.NewDefaultSettings()
	settings.VCS.Enabled = true
	settings.VCS.Backend = config.VCSBackendGit

	d, err := NewDependencies(settings, afero.NewMemMapFs(), io.Discard)
	if err != nil {
		t.Fatalf("NewDependencies() error = %v", err)
	}
	if d.VCS == nil {
		t.Error("expected a version control backend")
	}

	settings.VCS.Backend = "svn"
	if _, err := NewDependencies(settings, afero.NewMemMapFs(), io.Discard); !errors.Is(err, git.ErrUnknownBackend) {
		t.Errorf("error = %v, want git.ErrUnknownBackend", err)
	}
}

func TestSetDeps(t *testing.T) {
	orig := GetDeps()
	defer SetDeps(orig)

	d := &Dependencies{}
	SetDeps(d)
	if GetDeps() != d {
		t.Error("GetDeps() should return the dependencies passed to SetDeps")
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(config.LogSettings{Level: "info", Format: config.LogFormatJSON}, &buf)
		logger.Info("hello", "key", "value")

		var record map[string]any
		if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
			t.Fatalf("log output is not JSON: %v: %q", err, buf.String())
		}
		if record["msg"] != "hello" || record["key"] != "value" {
			t.Errorf("record = %v", record)
		}
	})

	t.Run("level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(config.LogSettings{Level: "error", Format: config.LogFormatText}, &buf)
		logger.Warn("dropped")
		logger.Error("kept")

		out := buf.String()
		if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("invalid level falls back to warn", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(config.LogSettings{Level: "loud"}, &buf)
		logger.Info("dropped")
		logger.Warn("kept")

		out := buf.String()
		if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
			t.Errorf("output = %q", out)
		}
	})
}
