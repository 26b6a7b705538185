// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/userdir/userdir/internal/events"
	"github.com/userdir/userdir/internal/metrics"
	"github.com/userdir/userdir/internal/model"
	"github.com/userdir/userdir/internal/repository"
)

const (
	// Version is reported by the welcome endpoint.
	Version = "1.0.0"

	maxIDRetries = 3
)

// UserRepository is the storage the service depends on.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

// UserService handles user directory business logic.
type UserService struct {
	repo      UserRepository
	publisher events.Publisher
	metrics   metrics.Recorder
	logger    *slog.Logger
	validate  *validator.Validate

	newID func() (string, error)
	now   func() time.Time
}

// Option customizes a UserService.
type Option func(*UserService)

// WithPublisher sets the event publisher notified after each create.
func WithPublisher(p events.Publisher) Option {
	return func(s *UserService) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r metrics.Recorder) Option {
	return func(s *UserService) {
		if r != nil {
			s.metrics = r
		}
	}
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(s *UserService) { s.newID = fn }
}

// WithClock replaces time.Now.
func WithClock(fn func() time.Time) Option {
	return func(s *UserService) { s.now = fn }
}

// NewUserService creates a new UserService.
func NewUserService(repo UserRepository, logger *slog.Logger, opts ...Option) *UserService {
	s := &UserService{
		repo:      repo,
		publisher: events.NewNoop(),
		metrics:   metrics.NewNoop(),
		logger:    logger.With("component", "service.user"),
		validate:  validator.New(),
		newID:     newUUID,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Info is the static welcome payload.
type Info struct {
	Message   string
	Version   string
	Endpoints map[string]string
}

// WelcomeInfo describes the service and its endpoints.
func (s *UserService) WelcomeInfo() Info {
	return Info{
		Message: "Bem-vindo à API de usuários!",
		Version: Version,
		Endpoints: map[string]string{
			"GET /":              "Página inicial",
			"GET /usuarios":      "Lista todos os usuários",
			"GET /usuarios/<id>": "Busca usuário por ID",
			"POST /usuarios":     "Cria um novo usuário",
		},
	}
}

// ListResult holds every user and the total count.
type ListResult struct {
	Users []model.User
	Total int
}

// ListUsers returns all users in insertion order.
func (s *UserService) ListUsers(ctx context.Context) (*ListResult, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &ListResult{Users: users, Total: len(users)}, nil
}

// GetUser returns the user with the given id.
func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncUserLookupMiss()
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// CreateUserInput carries the optional fields of a create request.
// A nil *CreateUserInput means no payload was supplied.
type CreateUserInput struct {
	Name  *string
	Email *string
}

// createFields is checked by the validator; field order is check order.
type createFields struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
}

// CreateUser validates input and appends a new user.
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*model.User, error) {
	fields, err := s.validateInput(input)
	if err != nil {
		s.reject(err)
		return nil, err
	}

	user := &model.User{
		Name:      fields.Name,
		Email:     fields.Email,
		CreatedAt: s.now(),
	}

	if err := s.insert(ctx, user); err != nil {
		s.reject(err)
		return nil, err
	}

	s.metrics.IncUserCreated()

	if err := s.publisher.PublishUserCreated(ctx, *user); err != nil {
		s.logger.Warn("failed to publish user event",
			"user_id", user.ID,
			"error", err,
		)
	}

	return user, nil
}

func (s *UserService) validateInput(input *CreateUserInput) (createFields, error) {
	var fields createFields
	if input == nil {
		return fields, invalid(ReasonNoData)
	}
	if input.Name != nil {
		fields.Name = *input.Name
	}
	if input.Email != nil {
		fields.Email = *input.Email
	}

	err := s.validate.Struct(fields)
	if err == nil {
		return fields, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fields, fmt.Errorf("validate input: %w", err)
	}
	if verrs[0].StructField() == "Name" {
		return fields, invalid(ReasonNameRequired)
	}
	return fields, invalid(ReasonEmailRequired)
}

// insert assigns a fresh id and stores user, retrying on id collision.
func (s *UserService) insert(ctx context.Context, user *model.User) error {
	for i := 0; i < maxIDRetries; i++ {
		id, err := s.newID()
		if err != nil {
			return fmt.Errorf("failed to generate user id: %w", err)
		}
		user.ID = id

		err = s.repo.CreateUser(ctx, user)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, repository.ErrEmailExists):
			return invalid(ReasonEmailInUse)
		case errors.Is(err, repository.ErrIDExists):
			s.logger.Warn("user id collision, retrying", "attempt", i+1)
		default:
			return fmt.Errorf("failed to create user: %w", err)
		}
	}
	return fmt.Errorf("failed to create user after %d attempts: %w", maxIDRetries, repository.ErrIDExists)
}

func (s *UserService) reject(err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		s.metrics.IncUserRejected(string(verr.Reason))
	}
}

func newUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
