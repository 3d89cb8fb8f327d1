package session

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/frontandrew/cda/internal/domain"
	"github.com/frontandrew/cda/internal/pkg/hash"
	"github.com/frontandrew/cda/internal/pkg/logger"
	"github.com/frontandrew/cda/internal/storage"
)

//go:embed users.yaml
var usersYAML []byte

// credentialsFile - формат встроенного списка учетных записей
type credentialsFile struct {
	Users []struct {
		ID       string          `yaml:"id"`
		Email    string          `yaml:"email"`
		Password string          `yaml:"password"`
		Name     string          `yaml:"name"`
		Role     domain.UserRole `yaml:"role"`
	} `yaml:"users"`
}

// Service держит текущую аутентифицированную сессию
// Одновременно активна максимум одна сессия; при старте она
// восстанавливается из durable хранилища
type Service struct {
	mu      sync.RWMutex
	users   []*domain.User
	current *domain.User
	store   *storage.Store
	delay   time.Duration
	logger  logger.Logger
}

// NewService загружает список учетных записей, хеширует пароли и
// восстанавливает сохраненную сессию, если она есть
func NewService(store *storage.Store, delay time.Duration, log logger.Logger) (*Service, error) {
	var file credentialsFile
	if err := yaml.Unmarshal(usersYAML, &file); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	users := make([]*domain.User, 0, len(file.Users))
	for _, c := range file.Users {
		passwordHash, err := hash.HashPassword(c.Password)
		if err != nil {
			return nil, fmt.Errorf("hash credential for %s: %w", c.Email, err)
		}
		u := &domain.User{
			ID:           c.ID,
			Name:         c.Name,
			Email:        c.Email,
			Role:         c.Role,
			PasswordHash: passwordHash,
		}
		if err := u.Validate(); err != nil {
			return nil, fmt.Errorf("invalid credential for %s: %w", c.Email, err)
		}
		users = append(users, u)
	}

	s := &Service{
		users:  users,
		store:  store,
		delay:  delay,
		logger: log,
	}

	// Восстанавливаем сессию прошлого запуска
	var stored domain.User
	err := store.Get(storage.KeySessionUser, &stored)
	switch {
	case err == nil:
		s.current = &stored
		log.Info("Session restored", map[string]interface{}{
			"user_id": stored.ID,
			"role":    stored.Role,
		})
	case errors.Is(err, storage.ErrKeyNotFound):
		// Первый запуск или после logout
	default:
		return nil, fmt.Errorf("restore session: %w", err)
	}

	return s, nil
}

// Login проверяет учетные данные по статическому списку
// Несуществующий email и неверный пароль неразличимы для вызывающего:
// оба завершаются ErrInvalidCredentials
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	// Имитация сетевой задержки
	if err := sleep(ctx, s.delay); err != nil {
		return nil, err
	}

	var found *domain.User
	for _, u := range s.users {
		if u.Email == email {
			found = u
			break
		}
	}

	if found == nil || !hash.CheckPassword(found.PasswordHash, password) {
		s.logger.Warn("Login failed", map[string]interface{}{
			"email": email,
		})
		return nil, domain.ErrInvalidCredentials
	}

	// Хеш пароля в сессию не попадает
	current := &domain.User{
		ID:    found.ID,
		Name:  found.Name,
		Email: found.Email,
		Role:  found.Role,
	}

	s.mu.Lock()
	s.current = current
	s.mu.Unlock()

	if err := s.store.Put(storage.KeySessionUser, current); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.logger.Info("User logged in", map[string]interface{}{
		"user_id": current.ID,
		"role":    current.Role,
	})

	result := *current
	return &result, nil
}

// Logout завершает текущую сессию и удаляет ее durable копию
func (s *Service) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.store.Delete(storage.KeySessionUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.logger.Info("User logged out")
	return nil
}

// CurrentUser возвращает пользователя активной сессии или nil
func (s *Service) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	current := *s.current
	return &current
}

// sleep ждет delay или отмены контекста
func sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
