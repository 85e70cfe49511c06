package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestLoadTuningOverridesOnlyGivenFields(t *testing.T) {
	path := writeFile(t, `{"initial_lives": 5, "shoot_rate": 0.25}`)

	got, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	want := DefaultTuning()
	want.InitialLives = 5
	want.ShootRate = 0.25
	if got != want {
		t.Errorf("LoadTuning = %+v, want %+v", got, want)
	}
}

func TestLoadTuningErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"bad json", `{"initial_lives": }`, "unmarshal"},
		{"zero lives", `{"initial_lives": 0}`, "initial_lives"},
		{"negative cooldown", `{"bomb_cooldown": -1}`, "bomb_cooldown"},
		{"two problems", `{"shoot_rate": 0, "boss_score_step": -5}`, "boss_score_step"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTuning(writeFile(t, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want wrapped fs.ErrNotExist", err)
	}
}
