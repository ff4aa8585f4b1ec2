package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
	"github.com/sbilibin2017/gw-trading-hub/internal/models"
	"github.com/sbilibin2017/gw-trading-hub/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password does not meet the strength policy")
)

// bcryptCost is the bcrypt work factor used for password hashing.
const bcryptCost = 10

// Welcome email contents sent after a successful registration.
const (
	welcomeSubject = "Welcome to TRADING HUB Tech Hub"
	welcomeBody    = "Thank you for choosing us!"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) (*models.UserDB, error)
}

// EmailSender delivers a message to a recipient address.
type EmailSender interface {
	Send(to, subject, body string) error
}

// RegisterInput carries all caller-supplied fields for registration.
// Role and creation timestamp are defaulted by the service and store.
type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
	Age       int
	Country   string
	Gender    string
}

// AuthenticatedUser is the projection returned by a successful login:
// enough to drive authorization decisions, never the password hash.
type AuthenticatedUser struct {
	Username string
	Role     string
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	mailer EmailSender
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, mailer EmailSender) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		mailer: mailer,
	}
}

// Register creates a new user with a bcrypt-hashed password and sends a
// welcome email. The email is dispatched only after the save succeeds and
// its failure does not fail the registration: the two outcomes are
// independent.
func (svc *AuthService) Register(ctx context.Context, in RegisterInput) (*models.UserDB, error) {
	if !models.ValidatePassword(in.Password) {
		logger.Log.Errorw("password rejected by strength policy", "username", in.Username)
		return nil, ErrWeakPassword
	}

	existing, err := svc.reader.GetByUsername(ctx, in.Username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", in.Username)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := models.UserDB{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: string(hashedPassword),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Age:          in.Age,
		Country:      in.Country,
		Gender:       in.Gender,
		Role:         models.RoleUser,
	}

	saved, err := svc.writer.Save(ctx, user)
	if err != nil {
		// The unique constraint is authoritative: concurrent registrations
		// racing past the existence check still surface as a duplicate.
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	if err := svc.mailer.Send(in.Email, welcomeSubject, welcomeBody); err != nil {
		logger.Log.Errorw("failed to send welcome email", "username", in.Username, "err", err)
	}

	return saved, nil
}

// Login authenticates a user and returns the username and role.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*AuthenticatedUser, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return nil, ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	return &AuthenticatedUser{
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
