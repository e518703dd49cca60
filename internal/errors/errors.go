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

// InvalidRelationError is returned when a relation would be malformed,
// most commonly a product related to itself.
type InvalidRelationError struct {
	ProductID        uint64
	RelatedProductID uint64
	Reason           string
}

func (e *InvalidRelationError) Error() string {
	return fmt.Sprintf("invalid relation %d -> %d: %s", e.ProductID, e.RelatedProductID, e.Reason)
}

// Is matches any InvalidRelationError
func (e *InvalidRelationError) Is(target error) bool {
	_, ok := target.(*InvalidRelationError)
	return ok
}

// UnknownGroupError is returned when a relation group id does not resolve
type UnknownGroupError struct {
	GroupID uint64
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("relation group %d does not exist", e.GroupID)
}

// Is matches any UnknownGroupError
func (e *UnknownGroupError) Is(target error) bool {
	_, ok := target.(*UnknownGroupError)
	return ok
}

// GroupInUseError is returned when a group still referenced by relations is
// deleted without cascade confirmation.
type GroupInUseError struct {
	GroupID   uint64
	Relations int64
}

func (e *GroupInUseError) Error() string {
	return fmt.Sprintf("relation group %d is referenced by %d relations; confirm cascade to delete", e.GroupID, e.Relations)
}

// Is matches any GroupInUseError
func (e *GroupInUseError) Is(target error) bool {
	_, ok := target.(*GroupInUseError)
	return ok
}

// StorageError wraps a failed storage round-trip or transaction
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
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
	ErrRelationGroupNotFound    = &NotFoundError{Entity: "relation group"}
	ErrRelationNotFound         = &NotFoundError{Entity: "product relation"}
	ErrRelationSettingsNotFound = &NotFoundError{Entity: "relation settings"}
	ErrProductNotFound          = &NotFoundError{Entity: "product"}
)

// Business Logic Errors
var (
	ErrInvalidContext          = errors.New("invalid display context")
	ErrInvalidDisplayStyle     = errors.New("invalid display style")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidPeriod           = errors.New("invalid price history period")
)

// Authentication Errors
var (
	ErrMissingToken      = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken      = &AuthenticationError{Message: "invalid token"}
	ErrAdminRoleRequired = &AuthorizationError{Message: "admin role required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidRelation checks if an error is an InvalidRelationError
func IsInvalidRelation(err error) bool {
	return errors.Is(err, &InvalidRelationError{})
}

// IsUnknownGroup checks if an error is an UnknownGroupError
func IsUnknownGroup(err error) bool {
	return errors.Is(err, &UnknownGroupError{})
}

// IsGroupInUse checks if an error is a GroupInUseError
func IsGroupInUse(err error) bool {
	return errors.Is(err, &GroupInUseError{})
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
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

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewStorageError wraps err as a StorageError, passing nil and existing
// StorageErrors through untouched.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
