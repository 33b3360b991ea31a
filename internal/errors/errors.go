package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this calling"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// PreconditionFailedError represents a workflow rule that blocks a transition
type PreconditionFailedError struct {
	Message string
}

func (e *PreconditionFailedError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for PreconditionFailedError
func (e *PreconditionFailedError) Is(target error) bool {
	t, ok := target.(*PreconditionFailedError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCallingChangeNotFound = &NotFoundError{Entity: "calling change"}
	ErrConsiderationNotFound = &NotFoundError{Entity: "consideration"}
	ErrTaskNotFound          = &NotFoundError{Entity: "task"}
	ErrAssignmentNotFound    = &NotFoundError{Entity: "calling assignment"}
	ErrCallingNotFound       = &NotFoundError{Entity: "calling"}
	ErrMemberNotFound        = &NotFoundError{Entity: "member"}
	ErrOrganizationNotFound  = &NotFoundError{Entity: "organization"}
)

// Already Exists Errors
var (
	ErrOpenCallingChangeExists = &AlreadyExistsError{Entity: "open calling change", Context: "for this calling"}
	ErrSyncAlreadyRunning      = &AlreadyExistsError{Entity: "sync job", Context: "and is still running"}
)

// Workflow Precondition Errors
var (
	ErrNoPersonSelected        = &PreconditionFailedError{Message: "no person selected"}
	ErrNoNewMemberSelected     = &PreconditionFailedError{Message: "no new member selected"}
	ErrIncompleteTasks         = &PreconditionFailedError{Message: "all tasks must be completed before finalizing"}
	ErrTasksAlreadyGenerated   = &PreconditionFailedError{Message: "tasks have already been generated for this calling change"}
	ErrCallingChangeCompleted  = &PreconditionFailedError{Message: "calling change is already completed"}
	ErrMultiplePersonsSelected = &PreconditionFailedError{Message: "more than one person is selected"}
)

// Business Logic Errors
var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// Authentication Errors
var (
	ErrSessionMissing = &AuthenticationError{Message: "session is required"}
	ErrSessionInvalid = &AuthenticationError{Message: "session is invalid or expired"}
)

// Configuration Errors
var (
	ErrSyncNotConfigured = &ConfigurationError{Message: "sync command is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsPreconditionFailed checks if an error is a PreconditionFailedError
func IsPreconditionFailed(err error) bool {
	var preconditionErr *PreconditionFailedError
	return errors.As(err, &preconditionErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewPreconditionFailedError creates a new PreconditionFailedError
func NewPreconditionFailedError(message string) error {
	return &PreconditionFailedError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
