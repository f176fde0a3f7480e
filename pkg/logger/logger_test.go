package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		level   string
		wantErr bool
	}{
		{name: "production", env: "production", level: "info"},
		{name: "development default level", env: "development"},
		{name: "empty env", env: "", level: "debug"},
		{name: "unknown env", env: "staging", wantErr: true},
		{name: "bad level", env: "development", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLogger(tt.env, tt.level)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for env=%q level=%q", tt.env, tt.level)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.Zap() == nil {
				t.Fatal("expected underlying zap logger")
			}
		})
	}
}

func TestPrintfHelpers(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := New(zap.New(core))

	l.Printf("search %s", "hit")
	l.Errorf("cache %s failed", "set")
	l.Debugf("key=%s", "hypergo:search:1")
	l.Println("server", "started")

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	if entries[0].Message != "search hit" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
	if entries[1].Level != zap.ErrorLevel {
		t.Errorf("expected error level, got %v", entries[1].Level)
	}
	if entries[3].Message != "server started" {
		t.Errorf("unexpected message %q", entries[3].Message)
	}
}
