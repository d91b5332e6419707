package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/vortexgear/storefront/internal/errors"
	"github.com/vortexgear/storefront/internal/models"
	repository "github.com/vortexgear/storefront/internal/repositories"
)

type SessionService struct {
	mu      sync.Mutex
	repo    repository.SessionRepository
	current *models.User
}

// NewSessionService restores a persisted login. An unreadable record is
// treated as logged out.
func NewSessionService(ctx context.Context, repo repository.SessionRepository) (*SessionService, error) {

	user, err := repo.LoadUser(ctx)
	if err != nil {
		if !isCorrupt(err) {
			return nil, errors.StorageError("Failed to load session").WithError(err)
		}
		slog.Warn("Stored session unreadable, starting logged out", slog.String("error", err.Error()))
		user = nil
	}

	return &SessionService{repo: repo, current: user}, nil
}

// Login accepts any non-blank identifier. No credential check is performed.
func (s *SessionService) Login(ctx context.Context, email string) (models.User, error) {

	email = strings.TrimSpace(email)
	if email == "" {
		return models.User{}, errors.AddValidationError("email", "is required")
	}

	user := NewUser(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveUser(ctx, &user); err != nil {
		return models.User{}, errors.StorageError("Failed to save session").WithError(err)
	}

	s.current = &user

	return user, nil
}

// Logout always ends the in-memory session; a failed delete of the stored
// record is only logged.
func (s *SessionService) Logout(ctx context.Context) {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil

	if err := s.repo.ClearUser(ctx); err != nil {
		slog.Error("Failed to clear stored session", slog.String("error", err.Error()))
	}
}

func (s *SessionService) CurrentUser() (models.User, bool) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.User{}, false
	}

	return *s.current, true
}

// NewUser derives a user from an email. The id is a name-based UUID of the
// normalized email so the same email always maps to the same order history.
func NewUser(email string) models.User {

	email = strings.TrimSpace(email)
	normalized := strings.ToLower(email)

	role := models.RoleCustomer
	if strings.Contains(email, "admin") {
		role = models.RoleAdmin
	}

	name, _, _ := strings.Cut(email, "@")

	return models.User{
		ID:    uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+normalized)).String(),
		Email: email,
		Name:  name,
		Role:  role,
	}
}
