package service

import (
	"fmt"
	"strings"
	"time"

	"blog-backend/internal/auth"
	"blog-backend/internal/config"
	"blog-backend/internal/logger"
	"blog-backend/internal/models"
	"blog-backend/internal/storage"
)

// Points granted on every successful login. This is gamification policy
// carried over from the existing behavior, not a correctness rule.
const loginPointsBonus = 10

// AuthService handles registration and login. Login consults the
// suspension ledger before the credential is verified, so a suspended
// account cannot authenticate at all.
type AuthService struct {
	users  *storage.UserRepository
	authz  *Authorizer
	ledger *SuspensionLedger
	tokens *auth.TokenManager
}

// NewAuthService creates an auth service.
func NewAuthService(users *storage.UserRepository, authz *Authorizer, ledger *SuspensionLedger, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, authz: authz, ledger: ledger, tokens: tokens}
}

// Register creates a new account and returns a signed token for it.
func (s *AuthService) Register(username, email, password, displayName string) (string, *models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return "", nil, fmt.Errorf("username, email and password are required: %w", ErrValidation)
	}

	existing, err := s.users.GetByUsername(username)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, fmt.Errorf("username already exists: %w", ErrValidation)
	}

	existing, err = s.users.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, fmt.Errorf("email already exists: %w", ErrValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	user := models.NewUser(username, email, hash, displayName, now)
	if err := s.users.Create(user); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.Username, user.Role, now)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login verifies credentials and returns a signed token. The suspension
// check runs first: a blocked account is rejected with ErrSuspended
// before its password is even compared, with a message that tells a
// permanent suspension apart from a dated one.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}

	now := time.Now()
	suspension, err := s.ledger.GetActive(user.ID, now)
	if err != nil {
		return "", nil, err
	}
	if suspension != nil {
		if suspension.Permanent() {
			return "", nil, fmt.Errorf("account is permanently suspended: %w", ErrSuspended)
		}
		return "", nil, fmt.Errorf("account is suspended until %s: %w",
			suspension.EndDate.Format(time.RFC3339), ErrSuspended)
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", nil, fmt.Errorf("invalid credentials: %w", ErrUnauthenticated)
	}

	if err := s.users.AddPoints(user.ID, loginPointsBonus, now); err != nil {
		return "", nil, err
	}
	user.Points += loginPointsBonus

	token, err := s.tokens.Issue(user.Username, user.Role, now)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// CurrentUser returns the account behind an identity.
func (s *AuthService) CurrentUser(identity auth.Identity) (*models.User, error) {
	return s.authz.Resolve(identity)
}

// EnsureAdmin creates the configured administrator account if it does not
// exist yet. Called once at startup.
func (s *AuthService) EnsureAdmin(cfg config.AdminConfig) error {
	if cfg.Username == "" || cfg.Password == "" {
		logger.Warningf("Admin account not configured, skipping seed")
		return nil
	}

	existing, err := s.users.GetByUsername(cfg.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := models.NewUser(cfg.Username, cfg.Email, hash, cfg.Username, now)
	admin.Role = models.RoleAdmin
	if err := s.users.Create(admin); err != nil {
		return err
	}
	logger.Infof("Seeded administrator account %q", cfg.Username)
	return nil
}
