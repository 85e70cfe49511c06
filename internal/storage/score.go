// internal/storage/score.go
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Record - содержимое файла рекорда
type Record struct {
	HighestScore int       `msgpack:"highest_score"`
	UpdatedAt    time.Time `msgpack:"updated_at"`
}

// ScoreStore хранит лучший результат в файле msgpack
type ScoreStore struct {
	path string
	mu   sync.Mutex
}

func NewScoreStore(path string) *ScoreStore {
	return &ScoreStore{path: path}
}

func (s *ScoreStore) Path() string { return s.path }

// Load возвращает сохранённый рекорд. Отсутствующий файл - это 0.
func (s *ScoreStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.read()
	if err != nil {
		return 0, err
	}
	return rec.HighestScore, nil
}

// Save записывает score, только если он больше сохранённого.
func (s *ScoreStore) Save(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.read()
	if err != nil {
		// Битый файл перезаписываем
		log.Printf("Score file %s unreadable, overwriting: %v", s.path, err)
		rec = Record{}
	}
	if score <= rec.HighestScore {
		return nil
	}
	rec.HighestScore = score
	rec.UpdatedAt = time.Now().UTC()

	data, err := msgpack.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("encode score record: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("save score to %s: %w", s.path, err)
	}
	return nil
}

func (s *ScoreStore) read() (Record, error) {
	var rec Record
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return rec, nil
	}
	if err != nil {
		return rec, fmt.Errorf("read score file %s: %w", s.path, err)
	}
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode score file %s: %w", s.path, err)
	}
	return rec, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// MemoryStore держит рекорд в памяти. Используется при -save="" и в тестах.
type MemoryStore struct {
	mu    sync.Mutex
	score int
}

func (m *MemoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *MemoryStore) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.score {
		m.score = score
	}
	return nil
}
