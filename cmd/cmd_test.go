package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mhmaidi/folio/internal/content"
)

func TestWriteStarterContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site", "content.yml")
	if err := writeStarterContent(path); err != nil {
		t.Fatalf("writeStarterContent: %v", err)
	}
	p, err := content.Load(path)
	if err != nil {
		t.Fatalf("starter content does not load: %v", err)
	}
	if p.Profile.Name == "" {
		t.Error("starter content has no profile name")
	}
}

func TestWriteStarterContentKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	if err := os.WriteFile(path, []byte("mine"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := writeStarterContent(path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "mine" {
		t.Errorf("existing file overwritten: %q", data)
	}
}

func TestSweepInterval(t *testing.T) {
	tests := []struct {
		ttl  time.Duration
		want time.Duration
	}{
		{30 * time.Minute, 7*time.Minute + 30*time.Second},
		{2 * time.Second, time.Second},
	}
	for _, tt := range tests {
		if got := sweepInterval(tt.ttl); got != tt.want {
			t.Errorf("sweepInterval(%v) = %v, want %v", tt.ttl, got, tt.want)
		}
	}
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".folio.yml")
	if err := os.WriteFile(cfgPath, []byte("site:\n  title: Test\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"validate", "--config", cfgPath})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out.String(), "Content OK: built-in sample content") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Projects:       3 (8 gallery images)") {
		t.Errorf("unexpected summary:\n%s", out.String())
	}
}
