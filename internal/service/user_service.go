package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/repository"
)

// Registration is the input of Register.
type Registration struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"min=6"`
}

// Credentials is the input of Authenticate.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// fieldMessages maps a field to the message reported when any of its rules fail.
var fieldMessages = map[string]string{
	"Name":     "Name is required",
	"Email":    "Valid email is required",
	"Password": "Password must be at least 6 characters long",
}

var loginMessages = map[string]string{
	"Email":    "Valid email is required",
	"Password": "Password is required",
}

var (
	validate  = validator.New(validator.WithRequiredStructEnabled())
	lowerCase = cases.Lower(language.Und)
)

// NormalizeEmail trims and lower-cases an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return lowerCase.String(strings.TrimSpace(email))
}

// firstViolation validates v and returns the message of the first failing
// field, or nil.
func firstViolation(v any, messages map[string]string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		if msg, ok := messages[fields[0].Field()]; ok {
			return invalid(msg)
		}
		return invalid(fields[0].Error())
	}
	return err
}

// UserService registers and authenticates accounts.
type UserService struct {
	DB         *gorm.DB
	BcryptCost int
	Timeout    time.Duration

	// dummyHash is compared against when the email is unknown so both
	// failure paths cost one bcrypt comparison.
	dummyHash []byte
}

// NewUserService returns a UserService. A cost outside bcrypt's range falls
// back to bcrypt.DefaultCost.
func NewUserService(db *gorm.DB, cost int, timeout time.Duration) *UserService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	return &UserService{DB: db, BcryptCost: cost, Timeout: timeout, dummyHash: dummy}
}

// Register validates r, rejects an existing email and stores a new user with
// a bcrypt hash of the password.
func (s *UserService) Register(ctx context.Context, r Registration) (*models.User, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = NormalizeEmail(r.Email)
	if err := firstViolation(r, fieldMessages); err != nil {
		return nil, err
	}

	if _, err := s.FindByEmail(ctx, r.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), s.BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, invalid("Password must be at most 72 bytes long")
	}
	if err != nil {
		return nil, err
	}

	u := &models.User{Name: r.Name, Email: r.Email, PasswordHash: string(hash)}
	ctx, cancel := storeContext(ctx, s.Timeout)
	defer cancel()
	if err := repository.CreateUser(ctx, s.DB, u); err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, classify(err)
	}
	return u, nil
}

// Authenticate validates c and returns the matching user. An unknown email
// and a wrong password both yield ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, c Credentials) (*models.User, error) {
	c.Email = NormalizeEmail(c.Email)
	if err := firstViolation(c, loginMessages); err != nil {
		return nil, err
	}

	u, err := s.FindByEmail(ctx, c.Email)
	if errors.Is(err, ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(c.Password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !s.Verify(u, c.Password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Verify reports whether password matches the user's stored hash.
func (s *UserService) Verify(u *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// FindByEmail returns the user with the given (already normalized) email.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := storeContext(ctx, s.Timeout)
	defer cancel()
	u, err := repository.FindUserByEmail(ctx, s.DB, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, classify(err)
}

// FindByID returns the user with the given id.
func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	ctx, cancel := storeContext(ctx, s.Timeout)
	defer cancel()
	u, err := repository.FindUserByID(ctx, s.DB, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, classify(err)
}
