// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package auth

import (
	"context"
	"fmt"

	"github.com/safetour/api/internal/platform/apperr"
	"github.com/safetour/api/internal/platform/sec"
	"github.com/safetour/api/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for minting bearer tokens.
type TokenProvider interface {
	// GenerateToken creates a signed JWT string carrying the given claims.
	// role may be empty; registration tokens omit it.
	GenerateToken(userID, email, role string) (string, error)
}

// Service implements the registration and login use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new auth [Service] with its dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    *string
}

// AuthSession is the transport-ready result of a successful register or login.
type AuthSession struct {
	User  *User
	Token string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Checks email availability, hashes the password (bcrypt, cost 10),
persists the account with the default 'user' role, and mints a bearer token
carrying the new subject id and email. The registration token intentionally
carries no role claim. The role is always RoleUser — the endpoint offers no
way to self-elevate to admin.

Parameters:
  - context: context.Context
  - input: RegisterInput (already shape-validated by the handler)

Returns:
  - *AuthSession: Created user (hash omitted from JSON) and signed token
  - error: apperr.Conflict if the email is taken, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*AuthSession, error) {

	// Pre-check email availability for a friendly fast-path error. The
	// authoritative guard is the unique constraint surfaced by Create: two
	// concurrent registrations can both pass this check, and exactly one
	// insert will then win.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("User already exists")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Phone:        input.Phone,
		Role:         sec.RoleUser,
	}

	// Persist the user. A concurrent duplicate comes back as Conflict here.
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	// Mint the bearer token: subject + email only on registration.
	token, err := service.tokenProvider.GenerateToken(user.ID, user.Email, "")
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &AuthSession{User: user, Token: token}, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login validates user credentials and issues a bearer token.

Description: Looks the account up by email and verifies the password hash.
An unknown email and a wrong password both return the identical
InvalidCredentials error — the response shape never reveals which half
failed, preventing account enumeration.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *AuthSession: User profile and signed token (with role claim)
  - error: apperr.InvalidCredentials or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*AuthSession, error) {
	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.InvalidCredentials()
	}

	// bcrypt's comparison is constant-time over the hash internals.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.InvalidCredentials()
	}

	// Login tokens carry the role claim in addition to subject and email.
	token, err := service.tokenProvider.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &AuthSession{User: user, Token: token}, nil
}
