package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

const (
	maxNameLength  = 255
	maxEmailLength = 255
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created through
	// NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	emailValidator = validator.New()
)

// User is an actor of the workflow. Its role decides which operations it may perform
// and an inactive user may perform none.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	active       bool
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// Profile holds the editable attributes of a user.
type Profile struct {
	Name   string
	Email  string
	Role   Role
	Active bool
}

// NewUser creates a user. The password must already be hashed.
func NewUser(id kernel.UUID, profile Profile, passwordHash string, now time.Time) (*User, error) {
	user := &User{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setProfile(profile),
		user.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUserParams carries a persisted user back into the domain.
type RestoreUserParams struct {
	ID           kernel.UUID
	Profile      Profile
	PasswordHash string
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RestoreUser rebuilds a user from storage, applying the same validation as NewUser.
func RestoreUser(p RestoreUserParams) (*User, error) {
	user, err := NewUser(p.ID, p.Profile, p.PasswordHash, p.CreatedAt)
	if err != nil {
		return nil, err
	}
	user.lastLoginAt = p.LastLoginAt
	user.updatedAt = p.UpdatedAt
	return user, nil
}

// Validate ensures the user was built by its constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) LastLoginAt() *time.Time {
	return u.lastLoginAt
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// Can reports whether the user may currently exercise the capability.
func (u *User) Can(c Capability) bool {
	return u.active && u.role.Can(c)
}

// Authorize returns a CapabilityError unless the user is active and its role grants c.
func (u *User) Authorize(c Capability) error {
	if !u.active {
		return errs.NewCapabilityErrorWithReason(u.email, c.String(), "account is inactive")
	}
	if !u.role.Can(c) {
		return errs.NewCapabilityErrorWithReason(u.email, c.String(), "role "+u.role.String()+" lacks it")
	}
	return nil
}

// EnsureActive fails for deactivated accounts. Operations that need no specific
// capability still require an active actor.
func (u *User) EnsureActive() error {
	if !u.active {
		return errs.NewCapabilityErrorWithReason(u.email, "act", "account is inactive")
	}
	return nil
}

// Update replaces the profile. The password is left untouched.
func (u *User) Update(profile Profile, now time.Time) error {
	if err := u.setProfile(profile); err != nil {
		return err
	}
	u.updatedAt = now
	return nil
}

// ChangePasswordHash stores a new, already hashed password.
func (u *User) ChangePasswordHash(hash string, now time.Time) error {
	if err := u.setPasswordHash(hash); err != nil {
		return err
	}
	u.updatedAt = now
	return nil
}

// RecordLogin stamps the last successful authentication.
func (u *User) RecordLogin(now time.Time) {
	u.lastLoginAt = &now
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setProfile(p Profile) error {
	name := strings.TrimSpace(p.Name)
	email := strings.ToLower(strings.TrimSpace(p.Email))

	var problems []error
	switch {
	case name == "":
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	case utf8.RuneCountInString(name) > maxNameLength:
		problems = append(problems, errs.NewValueIsOutOfRangeError("name", utf8.RuneCountInString(name), 1, maxNameLength))
	}
	switch {
	case email == "":
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	case len(email) > maxEmailLength:
		problems = append(problems, errs.NewValueIsOutOfRangeError("email", len(email), 1, maxEmailLength))
	case emailValidator.Var(email, "email") != nil:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email)))
	}
	if err := p.Role.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	u.name = name
	u.email = email
	u.role = p.Role
	u.active = p.Active
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}
