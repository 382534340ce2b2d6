/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error classes used throughout the module so that
// failures can be matched on their class rather than on their description.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrNoLogSource    = errors.New("missing log source")
	ErrUndefined      = errors.New("undefined")
	ErrInvalid        = errors.New("invalid")
	ErrNotFound       = errors.New("not found")
	ErrIO             = errors.New("i/o failure")
	ErrEOF            = errors.New("end of file")
	ErrEmpty          = errors.New("empty")
	ErrExists         = errors.New("already exists")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnexpected     = errors.New("unexpected")
	ErrUnknown        = errors.New("unknown")
	ErrCancelled      = errors.New("cancelled")
	ErrTimeout        = errors.New("timeout")
	ErrCondition      = errors.New("failed condition")
	ErrConflict       = errors.New("conflict")
	ErrTooLarge       = errors.New("too large")
)

// New returns an error of type `errType` described by `description`.
func New(errType error, description string) error {
	return fmt.Errorf("%w: %v", errType, description)
}

// Newf returns an error of type `errType` with a formatted description.
func Newf(errType error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %v", errType, fmt.Sprintf(format, args...))
}

// WrapError wraps `err` into an error of type `errType` whilst retaining its description.
func WrapError(errType error, err error, description string) error {
	if err == nil {
		return New(errType, description)
	}
	if description == "" {
		return fmt.Errorf("%w: %v", errType, err.Error())
	}
	return fmt.Errorf("%w: %v: %v", errType, description, err.Error())
}

// WrapErrorf wraps `err` into an error of type `errType` with a formatted description.
func WrapErrorf(errType error, err error, format string, args ...interface{}) error {
	return WrapError(errType, err, fmt.Sprintf(format, args...))
}

// Any states whether the error is matching any of the provided error types.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None states whether the error is matching none of the provided error types.
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo states whether the error description contains any of the provided
// descriptions (case insensitively).
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// IsEmpty states whether an error is empty or not. An error is considered empty when
// it is nil or has neither type nor description.
func IsEmpty(err error) bool {
	if err == nil {
		return true
	}
	return strings.TrimSpace(err.Error()) == ""
}

// ConvertContextError converts errors from the context package into common errors.
func ConvertContextError(err error) error {
	if err == nil {
		return nil
	}
	if Any(err, ErrCancelled, ErrTimeout) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return WrapError(ErrCancelled, err, "")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return WrapError(ErrTimeout, err, "")
	}
	return err
}

// ErrFromContext returns the error a context was cancelled with, converted into
// common errors. It returns nil when the context is still live.
func ErrFromContext(ctx context.Context) error {
	if ctx == nil {
		return ErrUndefined
	}
	return ConvertContextError(ctx.Err())
}
