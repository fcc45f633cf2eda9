package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventsync/internal/domain"
)

const minPasswordLen = 6

type userService struct {
	userRepo       domain.UserRepository
	regRepo        domain.EventRegistrationRepository
	hasher         domain.PasswordHasher
	tokenIssuer    domain.TokenIssuer
	tokenExpiry    time.Duration
	contextTimeout time.Duration
}

// NewUserService creates a UserService with the given repositories and auth ports.
func NewUserService(userRepo domain.UserRepository, regRepo domain.EventRegistrationRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry, timeout time.Duration) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		regRepo:        regRepo,
		hasher:         hasher,
		tokenIssuer:    tokenIssuer,
		tokenExpiry:    tokenExpiry,
		contextTimeout: timeout,
	}
}

func (s *userService) Register(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	var problems []string
	if name == "" {
		problems = append(problems, "name is required")
	}
	if email == "" {
		problems = append(problems, "email is required")
	} else if !emailRegexp.MatchString(email) {
		problems = append(problems, "invalid email format")
	}
	if len(password) < minPasswordLen {
		problems = append(problems, fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	if err := domain.NewValidationError(problems...); err != nil {
		return "", nil, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	salt, hash, err := s.hashPassword(password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	user := domain.NewUser(name, email, domain.RoleUser, now, now)
	user.Salt = salt
	user.PasswordHash = hash
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.NewValidationError("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) RegisteredEvents(ctx context.Context, userID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	events, err := s.regRepo.ListEventsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registered events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *userService) Update(ctx context.Context, userID string, upd domain.UserUpdate) (string, *domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}

	var problems []string
	if v := strings.TrimSpace(upd.Name); v != "" {
		user.Name = v
	}
	if v := normalizeEmail(upd.Email); v != "" {
		if !emailRegexp.MatchString(v) {
			problems = append(problems, "invalid email format")
		}
		user.Email = v
	}
	if v := strings.TrimSpace(upd.Phone); v != "" {
		user.Phone = v
	}
	if v := strings.TrimSpace(upd.College); v != "" {
		user.College = v
	}
	if v := strings.TrimSpace(upd.ProfilePicture); v != "" {
		if !isImageRef(v) {
			problems = append(problems, "profile_picture must be an image URL or upload path")
		}
		user.ProfilePicture = v
	}
	if upd.Password != "" && len(upd.Password) < minPasswordLen {
		problems = append(problems, fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	if err := domain.NewValidationError(problems...); err != nil {
		return "", nil, err
	}

	if upd.Password != "" {
		salt, hash, err := s.hashPassword(upd.Password)
		if err != nil {
			return "", nil, err
		}
		user.Salt = salt
		user.PasswordHash = hash
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) || errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("failed to update user: %w", err)
	}

	token, err := s.issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *userService) hashPassword(password string) (salt, hash string, err error) {
	salt, err = s.hasher.GenerateSalt()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err = s.hasher.Hash(salt, password)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash password: %w", err)
	}
	return salt, hash, nil
}

func (s *userService) issue(user *domain.User) (string, error) {
	token, err := s.tokenIssuer.Issue(domain.ClaimsFor(user), s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
