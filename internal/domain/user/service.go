package user

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/healthtrack/healthtrack/internal/apperr"
	"github.com/healthtrack/healthtrack/internal/platform/auth"
)

// ErrInvalidCredentials is returned by Login for any bad email/password pair.
// It never distinguishes an unknown account from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

const minPasswordLen = 8

type Service struct {
	repo   UserRepository
	jwtCfg auth.JWTConfig
	jwtTTL time.Duration
	logger zerolog.Logger
}

func NewService(repo UserRepository, jwtCfg auth.JWTConfig, jwtTTL time.Duration, logger zerolog.Logger) *Service {
	return &Service{repo: repo, jwtCfg: jwtCfg, jwtTTL: jwtTTL, logger: logger}
}

// RegisterInput deliberately carries no role field. Registration is public;
// every new account is a paciente, elevated roles are granted out of band.
type RegisterInput struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone,omitempty"`
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, apperr.Validation("email", "must be a valid email address")
	}
	if len(in.Password) < minPasswordLen {
		return nil, apperr.Validation("password", "must be at least 8 characters")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validation("name", "must not be empty")
	}

	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, apperr.Validation("email", "already registered")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:        in.Email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(in.Name),
		Role:         RolePatient,
		Active:       true,
		Phone:        in.Phone,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", u.ID.String()).Str("role", u.Role).Msg("user registered")
	return u, nil
}

// Login verifies the credentials and issues an access token. The last_login_at
// timestamp is updated best-effort; a failed touch does not fail the login.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.jwtCfg, u.ID, u.Role, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}

	if err := s.repo.TouchLastLogin(ctx, u.ID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", u.ID.String()).Msg("updating last login failed")
	}

	return token, u, nil
}

func (s *Service) Me(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
