package domain

import (
	"errors"
	"fmt"
)

// ResourceKind names the type of resource an operation acted on.
type ResourceKind string

const (
	ResourceImage     ResourceKind = "image"
	ResourceContainer ResourceKind = "container"
	ResourceNetwork   ResourceKind = "network"
	ResourceVolume    ResourceKind = "volume"
)

// ErrorKind classifies why an operation failed.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindPrecondition means the failure was detected locally and no runtime call was made.
	KindPrecondition
	// KindRemote means the runtime engine rejected or failed the call.
	KindRemote
	// KindConfig means persisted state or configuration could not be read or written.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindRemote:
		return "remote"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// OpError is the error returned by every resource and manager operation.
type OpError struct {
	Kind     ErrorKind
	Resource ResourceKind
	Name     string
	Op       string
	Err      error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s %q: %v", e.Op, e.Resource, e.Name, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// NewPreconditionError builds an OpError for a locally detected violation.
func NewPreconditionError(resource ResourceKind, name, op string, err error) *OpError {
	return &OpError{Kind: KindPrecondition, Resource: resource, Name: name, Op: op, Err: err}
}

// NewRemoteError builds an OpError for a failed runtime call.
func NewRemoteError(resource ResourceKind, name, op string, err error) *OpError {
	return &OpError{Kind: KindRemote, Resource: resource, Name: name, Op: op, Err: err}
}

// NewConfigError builds an OpError for a state or configuration failure.
func NewConfigError(resource ResourceKind, name, op string, err error) *OpError {
	return &OpError{Kind: KindConfig, Resource: resource, Name: name, Op: op, Err: err}
}

// KindOf returns the ErrorKind carried by err, or KindUnknown.
func KindOf(err error) ErrorKind {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return KindUnknown
}

// IsPrecondition reports whether err is a precondition failure.
func IsPrecondition(err error) bool {
	return KindOf(err) == KindPrecondition
}
