/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package safecast converts between numeric types without overflow: values outside
// the destination range are clamped to the closest boundary instead of wrapping.
package safecast

import "math"

// INumber is an alias for the numeric types safecast can convert.
type INumber interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ToInt converts any numeric value to an int, clamped to the int range.
func ToInt[N INumber](i N) int {
	if lessThanLowerBoundary(i, math.MinInt) {
		return math.MinInt
	}
	if greaterThanUpperBoundary(i, uint64(math.MaxInt)) {
		return math.MaxInt
	}
	return int(i)
}

// ToUint converts any numeric value to a uint, clamped to the uint range.
func ToUint[N INumber](i N) uint {
	if lessThanLowerBoundary(i, 0) {
		return 0
	}
	if greaterThanUpperBoundary(i, uint64(math.MaxUint)) {
		return math.MaxUint
	}
	return uint(i)
}

// ToInt64 converts any numeric value to an int64, clamped to the int64 range.
func ToInt64[N INumber](i N) int64 {
	if lessThanLowerBoundary(i, math.MinInt64) {
		return math.MinInt64
	}
	if greaterThanUpperBoundary(i, uint64(math.MaxInt64)) {
		return math.MaxInt64
	}
	return int64(i)
}

// ToUint64 converts any numeric value to a uint64, clamped to the uint64 range.
func ToUint64[N INumber](i N) uint64 {
	if lessThanLowerBoundary(i, 0) {
		return 0
	}
	return uint64(i)
}

func greaterThanUpperBoundary[N INumber](value N, upperBoundary uint64) (greater bool) {
	if value <= 0 {
		return
	}
	switch f := any(value).(type) {
	case float64:
		greater = f >= float64(upperBoundary)
	case float32:
		greater = float64(f) >= float64(upperBoundary)
	default:
		// Integer types fit in a uint64 without overflow since value is positive.
		greater = uint64(value) > upperBoundary
	}
	return
}

func lessThanLowerBoundary[N INumber](value N, boundary int64) (lower bool) {
	if value >= 0 {
		return
	}
	switch f := any(value).(type) {
	case float64:
		lower = f <= float64(boundary)
	case float32:
		lower = float64(f) <= float64(boundary)
	default:
		lower = int64(value) < boundary
	}
	return
}
