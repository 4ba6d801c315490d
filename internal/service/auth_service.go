package service

import (
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"cartly-be/internal/apperr"
	"cartly-be/internal/models"
	"cartly-be/internal/repository"
	"cartly-be/internal/token"
)

// bcryptCost is deliberately fixed; raising it is a deployment decision, not a
// per-request one.
const bcryptCost = 10

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// passwordSymbols is the fixed set of accepted special characters
const passwordSymbols = "@$!%*?&"

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	userRepo     repository.UserRepository
	tokenService *token.Service
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, tokenService *token.Service) AuthService {
	return &authService{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// validatePassword enforces the strength policy: at least 8 characters with at
// least one lowercase letter, one uppercase letter, one digit and one symbol
// from the fixed set, and nothing outside those classes.
func validatePassword(password string) error {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, c):
			hasSymbol = true
		default:
			return apperr.Validation("Password contains an invalid character")
		}
	}

	if len(password) < 8 || !hasLower || !hasUpper || !hasDigit || !hasSymbol {
		return apperr.Validation("Password must contain at least one lowercase letter, one uppercase letter, one number, and one special character.")
	}

	return nil
}

// Register creates a new user account. Duplicate emails are rejected by the
// repository's unique constraint, not by a lookup here.
func (s *authService) Register(req *models.RegisterRequest) (*models.RegisterResponse, error) {
	if !emailPattern.MatchString(req.Email) {
		return nil, apperr.Validation("Please enter a valid email")
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	user, err := s.userRepo.Create(req.Email, string(hashedPassword))
	if err != nil {
		return nil, err
	}

	return &models.RegisterResponse{
		ID:    user.ID,
		Email: user.Email,
	}, nil
}

// Login authenticates a user and returns user info with a signed token. The
// failure is a single generic error whether the email is unknown or the
// password is wrong.
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.InvalidCredentials()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.InvalidCredentials()
	}

	tok, err := s.tokenService.Issue(user.ID)
	if err != nil {
		return nil, apperr.Internal("failed to generate token", err)
	}

	return &models.LoginResponse{
		ID:    user.ID,
		Email: user.Email,
		Token: tok,
	}, nil
}
