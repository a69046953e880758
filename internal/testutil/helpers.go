package testutil

import (
	"errors"
)

const DatabaseError = "database error occurred"

// RepoGetData is the result of a mocked or real repository call.
type RepoGetData[T any] struct {
	Data T
	Err  error
}

// Return a generic typed error return for a Database call.
func GetMockRepoError[T any]() *RepoGetData[T] {
	return GetRepoError[T](DatabaseError)
}

// GetRepoError wraps the given message as the expected error.
func GetRepoError[T any](err string) *RepoGetData[T] {
	return &RepoGetData[T]{
		Data: *new(T),
		Err:  errors.New(err),
	}
}

// Wrap a generic Data into a RepoGetData struct.
func ToRepoGetData[T any](data T) *RepoGetData[T] {
	return &RepoGetData[T]{
		Data: data,
		Err:  nil,
	}
}
