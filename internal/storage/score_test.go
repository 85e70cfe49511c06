package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestLoadMissingFile(t *testing.T) {
	s := NewScoreStore(filepath.Join(t.TempDir(), "none", "score.msgpack"))
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != 0 {
		t.Errorf("Load = %d, want 0", got)
	}
}

func TestSaveKeepsHighest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "score.msgpack")
	s := NewScoreStore(path)

	steps := []struct {
		save int
		want int
	}{
		{500, 500},
		{300, 500},
		{1200, 1200},
		{1200, 1200},
	}
	for _, step := range steps {
		if err := s.Save(step.save); err != nil {
			t.Fatalf("Save(%d): %v", step.save, err)
		}
		got, err := s.Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if got != step.want {
			t.Errorf("after Save(%d): Load = %d, want %d", step.save, got, step.want)
		}
	}
}

func TestRecordFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.msgpack")
	if err := NewScoreStore(path).Save(4200); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var rec Record
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.HighestScore != 4200 {
		t.Errorf("HighestScore = %d, want 4200", rec.HighestScore)
	}
	if rec.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set")
	}
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.msgpack")
	if err := os.WriteFile(path, []byte{0xc1, 0xff, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewScoreStore(path)
	if _, err := s.Load(); err == nil {
		t.Error("Load of corrupt file returned nil error")
	}
	if err := s.Save(10); err != nil {
		t.Fatalf("Save over corrupt file: %v", err)
	}
	if got, _ := s.Load(); got != 10 {
		t.Errorf("Load = %d, want 10", got)
	}
}

func TestMemoryStore(t *testing.T) {
	var m MemoryStore
	m.Save(30)
	m.Save(10)
	if got, _ := m.Load(); got != 30 {
		t.Errorf("Load = %d, want 30", got)
	}
}
