package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lalindra-code/clearBillCopy/internal/mailer"
	"github.com/lalindra-code/clearBillCopy/internal/model"
	"github.com/lalindra-code/clearBillCopy/internal/repository"
	"github.com/lalindra-code/clearBillCopy/pkg/random"
)

// Failure categories surfaced by the auth flows. Credential and
// reset-token failures are deliberately generic so callers cannot
// probe which accounts exist.
var (
	ErrEmailExists        = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("this reset link is invalid or has expired")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidEmail       = errors.New("invalid email address")
)

const (
	bcryptCost      = 12
	resetTokenBytes = 32
	resetTokenTTL   = time.Hour

	// Session lifetimes baked into the token at sign-in time; the
	// rememberMe flag is never re-evaluated afterwards.
	sessionTTL         = 24 * time.Hour
	extendedSessionTTL = 30 * 24 * time.Hour
)

// ForgotPasswordMessage is returned for every forgot-password request,
// whether or not the account exists.
const ForgotPasswordMessage = "If an account exists, a reset link has been sent."

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// --- DTOs ---

type SignUpRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type SignInRequest struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type GoogleSignInRequest struct {
	IDToken    string `json:"idToken" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// SessionUser is the identity a session token carries; it is the only
// channel through which downstream code learns the caller's plan.
type SessionUser struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Image *string `json:"image"`
	Plan  string  `json:"plan"`
}

type SessionResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      SessionUser `json:"user"`
}

// GoogleIdentity is a verified third-party identity assertion.
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// IdentityVerifier validates a third-party ID token. The production
// implementation calls Google's tokeninfo verification; tests fake it.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

// --- Interface ---

type AuthService interface {
	SignUp(ctx context.Context, req SignUpRequest) error
	SignInWithPassword(ctx context.Context, req SignInRequest) (*SessionResponse, error)
	SignInWithGoogle(ctx context.Context, req GoogleSignInRequest) (*SessionResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	GetUserByID(ctx context.Context, id string) (*SessionUser, error)
}

type authService struct {
	users     repository.UserRepository
	txManager repository.TransactionManager
	mail      mailer.Mailer
	verifier  IdentityVerifier
	jwtSecret []byte
	baseURL   string
	log       zerolog.Logger
}

func NewAuthService(
	users repository.UserRepository,
	txManager repository.TransactionManager,
	mail mailer.Mailer,
	verifier IdentityVerifier,
	jwtSecret []byte,
	baseURL string,
	log zerolog.Logger,
) AuthService {
	return &authService{
		users:     users,
		txManager: txManager,
		mail:      mail,
		verifier:  verifier,
		jwtSecret: jwtSecret,
		baseURL:   strings.TrimRight(baseURL, "/"),
		log:       log,
	}
}

// --- Implementation ---

func validatePassword(password, confirm string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

func (s *authService) SignUp(ctx context.Context, req SignUpRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	if err := validatePassword(req.Password, req.ConfirmPassword); err != nil {
		return err
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	hash := string(hashed)

	user := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: &hash,
		Plan:         model.PlanFree,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Concurrent signup with the same email loses the unique-index
		// race; report it as the same conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("email", email).Msg("account created")
	return nil
}

func (s *authService) SignInWithPassword(ctx context.Context, req SignInRequest) (*SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil || user.PasswordHash == nil {
		// Unknown email, google-only account, bad password: all the
		// same generic answer.
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(user, req.RememberMe)
}

func (s *authService) SignInWithGoogle(ctx context.Context, req GoogleSignInRequest) (*SessionResponse, error) {
	identity, err := s.verifier.Verify(ctx, req.IDToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	email := strings.ToLower(identity.Email)
	user, err := s.users.GetByEmail(ctx, email)
	switch {
	case err != nil:
		// First Google sign-in: provision an account with no password.
		user = &model.User{
			Name:     identity.Name,
			Email:    email,
			GoogleID: &identity.Subject,
			Plan:     model.PlanFree,
		}
		if identity.Picture != "" {
			pic := identity.Picture
			user.ProfileImage = &pic
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create google user: %w", err)
		}
		s.log.Info().Str("email", email).Msg("account created via google sign-in")

	case user.GoogleID == nil:
		// Existing password account, same email: link the identity.
		// Logged explicitly — merging by email is security sensitive.
		user.GoogleID = &identity.Subject
		if err := s.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("link google identity: %w", err)
		}
		s.log.Warn().
			Str("email", email).
			Str("google_subject", identity.Subject).
			Msg("linked google identity to existing account")
	}

	return s.issueSession(user, req.RememberMe)
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	normalized := strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, normalized)
	if err != nil {
		// Unknown account: report nothing. The caller sees the same
		// generic message either way.
		return nil
	}

	raw, err := random.Bytes(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(raw)
	expiry := time.Now().Add(resetTokenTTL)

	user.ResetToken = &token
	user.ResetTokenExpiry = &expiry
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", s.baseURL, token)
	if err := s.mail.SendPasswordReset(user.Email, user.Name, resetURL); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}

	s.log.Info().Str("email", user.Email).Msg("password reset link sent")
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if req.Token == "" {
		return ErrInvalidResetToken
	}
	if err := validatePassword(req.Password, req.ConfirmPassword); err != nil {
		return err
	}

	user, err := s.users.GetByResetToken(ctx, req.Token, time.Now())
	if err != nil {
		return ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	hash := string(hashed)

	// New hash and token clearing land in one atomic update so a
	// consumed token can never be replayed.
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		user.PasswordHash = &hash
		user.ResetToken = nil
		user.ResetTokenExpiry = nil
		return s.users.Update(txCtx, user)
	})
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	s.log.Info().Str("email", user.Email).Msg("password reset completed")
	return nil
}

func (s *authService) GetUserByID(ctx context.Context, id string) (*SessionUser, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	su := toSessionUser(user)
	return &su, nil
}

func toSessionUser(user *model.User) SessionUser {
	return SessionUser{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Image: user.ProfileImage,
		Plan:  user.Plan,
	}
}

// issueSession signs a JWT carrying the session identity. rememberMe
// extends the lifetime to 30 days; otherwise 24 hours.
func (s *authService) issueSession(user *model.User, rememberMe bool) (*SessionResponse, error) {
	ttl := sessionTTL
	if rememberMe {
		ttl = extendedSessionTTL
	}
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"name":  user.Name,
		"email": user.Email,
		"plan":  user.Plan,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}
	if user.ProfileImage != nil {
		claims["picture"] = *user.ProfileImage
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &SessionResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      toSessionUser(user),
	}, nil
}
