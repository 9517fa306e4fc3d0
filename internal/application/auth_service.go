package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/skatetube/internal/domain/entity"
	repo "github.com/oksasatya/skatetube/internal/domain/repository"
	"github.com/oksasatya/skatetube/pkg/helpers"
)

// MinPasswordLength applies to registration only.
const MinPasswordLength = 6

type AuthService struct {
	Users      repo.UserRepository
	Sessions   repo.SessionStore
	Logger     *logrus.Logger
	SessionTTL time.Duration
	HashCost   int

	now func() time.Time
}

func NewAuthService(users repo.UserRepository, sessions repo.SessionStore, logger *logrus.Logger, ttl time.Duration) *AuthService {
	return &AuthService{
		Users:      users,
		Sessions:   sessions,
		Logger:     logger,
		SessionTTL: ttl,
		HashCost:   bcrypt.DefaultCost,
		now:        time.Now,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Bio      string
}

// Session is the result of a successful register or login.
type Session struct {
	Token string
	User  *entity.User
}

// sessionToken builds the opaque cookie value session_<userId>_<unixMillis>.
func (s *AuthService) sessionToken(userID string) string {
	return fmt.Sprintf("session_%s_%d", userID, s.now().UnixMilli())
}

func (s *AuthService) startSession(ctx context.Context, u *entity.User) (*Session, error) {
	token := s.sessionToken(u.ID)
	if err := s.Sessions.Create(ctx, token, u.ID, s.SessionTTL); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &Session{Token: token, User: u}, nil
}

// Register creates a user with role "user" and signs it in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if len(in.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if _, err := s.Users.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if _, err := s.Users.FindByUsername(ctx, in.Username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPasswordCost(in.Password, s.HashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	id, err := s.Users.NextID(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	u := &entity.User{
		ID:        id,
		Username:  in.Username,
		Email:     in.Email,
		Password:  hash,
		Bio:       in.Bio,
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Users.Insert(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user registered")
	}
	return s.startSession(ctx, u)
}

// Login checks the credentials and opens a new session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.Users.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if u.Password == "" || !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.startSession(ctx, u)
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Sessions.Delete(ctx, token)
}

// CurrentUser resolves the user behind a session token.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	uid, err := s.Sessions.Lookup(ctx, token)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, err
	}
	u, err := s.Users.GetByID(ctx, uid)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}
