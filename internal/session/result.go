package session

import (
	"encoding/json"
	"errors"
)

// Failure is the structured payload returned instead of a crash.
type Failure struct {
	Error   bool   `json:"error" yaml:"error"`
	Message string `json:"message" yaml:"message"`
}

// Result carries either a success payload or a Failure.
type Result[T any] struct {
	Value   T
	Failure *Failure
}

// OK reports whether the operation succeeded.
func (r Result[T]) OK() bool {
	return r.Failure == nil
}

// Err converts a failure into an error.
func (r Result[T]) Err() error {
	if r.Failure == nil {
		return nil
	}
	return errors.New(r.Failure.Message)
}

// MarshalJSON encodes the payload or the failure.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Failure != nil {
		return json.Marshal(r.Failure)
	}
	return json.Marshal(r.Value)
}

// MarshalYAML encodes the payload or the failure.
func (r Result[T]) MarshalYAML() (any, error) {
	if r.Failure != nil {
		return r.Failure, nil
	}
	return r.Value, nil
}

func fail[T any](message string) Result[T] {
	return Result[T]{Failure: &Failure{Error: true, Message: message}}
}
