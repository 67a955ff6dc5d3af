package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrProfileNotFound        = errors.New("profile not found")
	ErrMatchNotFound          = errors.New("match not found")
	ErrPromptNotFound         = errors.New("prompt not found")
	ErrPromptResponseNotFound = errors.New("prompt response not found")

	ErrEmailTaken            = errors.New("a user with that email already exists")
	ErrMatchExists           = errors.New("match already exists")
	ErrPromptAlreadyAnswered = errors.New("prompt already answered")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	ErrInvalidToken = errors.New("invalid or expired token")
	ErrTokenRevoked = errors.New("token has been blacklisted")

	ErrIncorrectPassword = errors.New("incorrect old password")
	ErrCapacityExceeded  = errors.New("this operation would exceed the maximum number of photos")

	ErrStorageUnavailable = errors.New("photo storage unavailable")
)

// ValidationError collects per-field messages. It is rendered as {field: [messages]}.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError(field, msg string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, msg)
	return v
}

func (v *ValidationError) Add(field, msg string) {
	if v.Fields == nil {
		v.Fields = make(map[string][]string)
	}
	v.Fields[field] = append(v.Fields[field], msg)
}

// Empty reports whether no field failed.
func (v *ValidationError) Empty() bool {
	return v == nil || len(v.Fields) == 0
}

// OrNil returns nil when nothing was collected, so callers can return it directly as an error.
func (v *ValidationError) OrNil() error {
	if v.Empty() {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(v.Fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
