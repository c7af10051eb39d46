package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cargohost/backend/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Messages returned by the auth API.
const (
	MsgCredentialsRequired = "Email и password обязательны"
	MsgEmailTaken          = "Пользователь с таким email уже существует"
	MsgInvalidCredentials  = "Неверный email или password"
	MsgUnknownAction       = "Неизвестное действие"
	MsgInvalidRegistration = "Проверьте email и пароль (не короче 6 символов)"
	MsgRegistered          = "Регистрация успешна"
	MsgLoggedIn            = "Вход выполнен"
)

const tokenTTL = 7 * 24 * time.Hour

// UserStore is the persistence the auth service needs. Email lookups are
// case-insensitive and Create reports a taken address as domain.ErrEmailTaken.
type UserStore interface {
	Create(ctx context.Context, a *domain.Account) error
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	Exists(ctx context.Context, email string) (bool, error)
}

// AuthService handles registration, login and JWT issuance.
type AuthService struct {
	jwtSecret string
	users     UserStore
	validate  *validator.Validate
	now       func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(jwtSecret string, users UserStore) *AuthService {
	return &AuthService{
		jwtSecret: jwtSecret,
		users:     users,
		validate:  validator.New(),
		now:       time.Now,
	}
}

// Handle dispatches a POST /api/auth body by its action.
func (s *AuthService) Handle(ctx context.Context, req *domain.AuthRequest) (*domain.AuthResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, domain.ErrBadRequest(MsgCredentialsRequired)
	}

	switch req.Action {
	case domain.ActionRegister:
		return s.Register(ctx, &domain.RegisterRequest{Email: req.Email, Password: req.Password, FullName: req.FullName})
	case domain.ActionLogin:
		return s.Login(ctx, &domain.LoginRequest{Email: req.Email, Password: req.Password})
	default:
		return nil, domain.ErrBadRequest(MsgUnknownAction)
	}
}

// Register creates an account with a bcrypt password hash.
func (s *AuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(MsgInvalidRegistration, err)
	}

	exists, err := s.users.Exists(ctx, req.Email)
	if err != nil {
		return nil, domain.ErrInternal("failed to check user", err)
	}
	if exists {
		return nil, domain.ErrBadRequest(MsgEmailTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.ErrInternal("failed to hash password", err)
	}

	account := &domain.Account{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
	}
	if err := s.users.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrBadRequest(MsgEmailTaken)
		}
		return nil, domain.ErrInternal("failed to create user", err)
	}

	log.WithField("user_id", account.ID).Info("user registered")
	return s.respond(account, MsgRegistered)
}

// Login validates credentials and returns the user with a signed token.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrUnauthorized(MsgInvalidCredentials)
	}

	account, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.ErrInternal("failed to find user", err)
	}
	if account == nil || !verifyPassword(account.PasswordHash, req.Password) {
		return nil, domain.ErrUnauthorized(MsgInvalidCredentials)
	}

	return s.respond(account, MsgLoggedIn)
}

func (s *AuthService) respond(account *domain.Account, msg string) (*domain.AuthResponse, error) {
	token, err := s.issueToken(account)
	if err != nil {
		return nil, domain.ErrInternal("failed to sign token", err)
	}
	return &domain.AuthResponse{
		Success: true,
		User:    account.User(),
		Message: msg,
		Token:   token,
	}, nil
}

func (s *AuthService) issueToken(account *domain.Account) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(account.ID, 10),
		"email": account.Email,
		"exp":   now.Add(tokenTTL).Unix(),
		"iat":   now.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
}

// VerifyToken validates a JWT token and returns the claims.
func (s *AuthService) VerifyToken(tokenStr string) (*domain.JWTClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, domain.ErrUnauthorized("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrUnauthorized("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, domain.ErrUnauthorized("invalid token subject")
	}
	email, _ := claims["email"].(string)

	return &domain.JWTClaims{Sub: id, Email: email}, nil
}

// GetUser returns the public identity for an account ID (for /api/auth/me).
func (s *AuthService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	account, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, domain.ErrInternal("failed to find user", err)
	}
	if account == nil {
		return nil, domain.ErrNotFound("user not found")
	}
	u := account.User()
	return &u, nil
}

// normalizeEmail only trims: addresses are stored as entered and the store
// matches them case-insensitively.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// verifyPassword accepts bcrypt hashes and the legacy "salt$sha256hex" format
// where the digest covers password+salt.
func verifyPassword(stored, password string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}

	salt, digest, ok := strings.Cut(stored, "$")
	if !ok || salt == "" || digest == "" {
		return false
	}
	sum := sha256.Sum256([]byte(password + salt))
	return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(digest)) == 1
}
