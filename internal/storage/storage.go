package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrKeyNotFound возвращается при чтении отсутствующего ключа
// Отличается от ошибок ввода-вывода: отсутствие ключа - нормальная ситуация
// при первом запуске
var ErrKeyNotFound = errors.New("storage: key not found")

// Store - локальное durable key-value хранилище
// Каждый ключ сериализуется в отдельный JSON файл внутри базовой директории.
// Запись всегда полная (без дельт) и атомарная: временный файл + rename
type Store struct {
	mu       sync.Mutex
	basePath string
}

// New создает хранилище, при необходимости создавая базовую директорию
func New(basePath string) (*Store, error) {
	if basePath == "" {
		return nil, fmt.Errorf("storage: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create base dir: %w", err)
	}
	return &Store{basePath: basePath}, nil
}

// Put сериализует значение в JSON и атомарно записывает его под ключом
func (s *Store) Put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: marshal %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.path(key)
	tmp, err := os.CreateTemp(s.basePath, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: create temp for %q: %w", key, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: close temp for %q: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: rename %q: %w", key, err)
	}
	return nil
}

// Get читает значение ключа и десериализует его в value
// Возвращает ErrKeyNotFound, если ключ ни разу не записывался
func (s *Store) Get(key string, value interface{}) error {
	s.mu.Lock()
	data, err := os.ReadFile(s.path(key))
	s.mu.Unlock()

	if err != nil {
		if os.IsNotExist(err) {
			return ErrKeyNotFound
		}
		return fmt.Errorf("storage: read %q: %w", key, err)
	}
	if err := json.Unmarshal(data, value); err != nil {
		return fmt.Errorf("storage: unmarshal %q: %w", key, err)
	}
	return nil
}

// Delete удаляет ключ; отсутствие ключа не считается ошибкой
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: delete %q: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.basePath, filepath.Base(key)+".json")
}
