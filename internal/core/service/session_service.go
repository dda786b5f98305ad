package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mealwise/mealplanner/internal/core/domain"
	"github.com/mealwise/mealplanner/internal/core/ports"
)

const (
	defaultProfileLimit = 50
	maxProfileLimit     = 200
)

// SessionConfig carries the tunables of SessionService.
type SessionConfig struct {
	JWTSecret    string
	TokenTTL     time.Duration
	SignupLimit  int
	SignupWindow time.Duration
	AdminEmails  []string
}

// SessionService implements ports.SessionStore on top of the account and
// profile repositories.
type SessionService struct {
	accounts ports.AccountRepository
	profiles ports.ProfileRepository
	changes  ports.ProfileChangeStream
	limiter  ports.RateLimiter
	revoker  ports.TokenRevoker
	cfg      SessionConfig
	admins   map[string]struct{}
	log      zerolog.Logger
	now      func() time.Time
}

func NewSessionService(
	accounts ports.AccountRepository,
	profiles ports.ProfileRepository,
	changes ports.ProfileChangeStream,
	limiter ports.RateLimiter,
	revoker ports.TokenRevoker,
	cfg SessionConfig,
	log zerolog.Logger,
) *SessionService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	admins := make(map[string]struct{}, len(cfg.AdminEmails))
	for _, e := range cfg.AdminEmails {
		if e = normalizeEmail(e); e != "" {
			admins[e] = struct{}{}
		}
	}
	return &SessionService{
		accounts: accounts,
		profiles: profiles,
		changes:  changes,
		limiter:  limiter,
		revoker:  revoker,
		cfg:      cfg,
		admins:   admins,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateAccount registers a new account. The signup rate limit is keyed on the
// lower-cased email; a limiter outage lets the attempt through.
func (s *SessionService) CreateAccount(ctx context.Context, email, password string) (*domain.Account, error) {
	email = normalizeEmail(email)
	if !domain.ValidEmail(email) {
		return nil, domain.ErrInvalidEmail
	}
	if len(password) < domain.MinPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	if s.limiter != nil && s.cfg.SignupLimit > 0 {
		ok, err := s.limiter.Allow(ctx, "signup:"+email, s.cfg.SignupLimit, s.cfg.SignupWindow)
		if err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("signup rate limit check failed, allowing attempt")
		} else if !ok {
			return nil, domain.ErrRateLimited
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("create account: hash password: %w", err)
	}

	role := domain.RoleMember
	if _, ok := s.admins[email]; ok {
		role = domain.RoleAdmin
	}

	now := s.now()
	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("account_id", created.ID).Str("role", created.Role).Msg("account created")
	return created, nil
}

// SignIn checks the credentials and issues a signed access token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *SessionService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueSession(account)
}

// SignOut revokes the session's token until it would have expired anyway.
func (s *SessionService) SignOut(ctx context.Context, session *domain.Session) error {
	if session == nil || session.TokenID == "" {
		return domain.ErrNoSession
	}
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 || s.revoker == nil {
		return nil
	}
	if err := s.revoker.Revoke(ctx, session.TokenID, ttl); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

// CurrentSession resolves an access token into a live session.
func (s *SessionService) CurrentSession(ctx context.Context, accessToken string) (*domain.Session, error) {
	if accessToken == "" {
		return nil, domain.ErrNoSession
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrNoSession
	}

	sub, _ := claims["sub"].(string)
	jti, _ := claims["jti"].(string)
	if sub == "" || jti == "" {
		return nil, domain.ErrNoSession
	}

	if s.revoker != nil {
		revoked, err := s.revoker.IsRevoked(ctx, jti)
		if err != nil {
			return nil, fmt.Errorf("current session: %w", err)
		}
		if revoked {
			return nil, domain.ErrNoSession
		}
	}

	account, err := s.accounts.FindByID(ctx, sub)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrNoSession
		}
		return nil, err
	}

	var expiresAt time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}

	return &domain.Session{
		AccessToken: accessToken,
		TokenID:     jti,
		ExpiresAt:   expiresAt,
		Account:     account,
	}, nil
}

func (s *SessionService) issueSession(account *domain.Account) (*domain.Session, error) {
	now := s.now()
	exp := now.Add(s.cfg.TokenTTL)
	jti := uuid.NewString()

	claims := jwt.MapClaims{
		"sub":   account.ID,
		"email": account.Email,
		"role":  account.Role,
		"jti":   jti,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &domain.Session{
		AccessToken: signed,
		TokenID:     jti,
		ExpiresAt:   time.Unix(exp.Unix(), 0).UTC(),
		Account:     account,
	}, nil
}

// UpsertProfile normalizes and stores profile attributes.
func (s *SessionService) UpsertProfile(ctx context.Context, profile *domain.Profile) error {
	if profile == nil || profile.AccountID == "" {
		return fmt.Errorf("%w: account id is required", domain.ErrInvalidProfile)
	}
	if !profile.ActivityLevel.Valid() {
		return fmt.Errorf("%w: unknown activity level %q", domain.ErrInvalidProfile, profile.ActivityLevel)
	}
	if profile.Membership == "" {
		profile.Membership = domain.TierBasic
	}
	if !profile.Membership.Valid() {
		return fmt.Errorf("%w: unknown membership tier %q", domain.ErrInvalidProfile, profile.Membership)
	}

	profile.Email = normalizeEmail(profile.Email)
	profile.DietaryRestrictions = domain.NormalizeTags(profile.DietaryRestrictions)
	profile.Allergies = domain.NormalizeTags(profile.Allergies)
	profile.DislikedIngredients = domain.NormalizeTags(profile.DislikedIngredients)
	profile.HealthGoals = domain.NormalizeTags(profile.HealthGoals)

	now := s.now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (s *SessionService) GetProfile(ctx context.Context, accountID string) (*domain.Profile, error) {
	if accountID == "" {
		return nil, domain.ErrProfileNotFound
	}
	return s.profiles.FindByAccountID(ctx, accountID)
}

// QueryProfiles lists profiles matching filter, newest first.
func (s *SessionService) QueryProfiles(ctx context.Context, filter domain.ProfileFilter) ([]*domain.Profile, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultProfileLimit
	}
	if filter.Limit > maxProfileLimit {
		filter.Limit = maxProfileLimit
	}
	filter.Search = strings.TrimSpace(filter.Search)
	filter.HealthGoal = strings.TrimSpace(filter.HealthGoal)
	return s.profiles.Query(ctx, filter)
}

func (s *SessionService) SubscribeProfileChanges(ctx context.Context) (<-chan domain.ProfileChange, error) {
	return s.changes.Subscribe(ctx)
}
