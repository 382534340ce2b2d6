/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/evidencelab/hashcalc/commonerrors"
)

// IValidationError is an error raised when a configuration structure fails
// validation. It keeps track of where in the structure the failure happened, both
// as a field path and as the environment variable the failing entry is loaded from.
type IValidationError interface {
	error
	// GetTreePath returns the path of the failing field in the structure, e.g. Store->Port.
	GetTreePath() string
	// GetMapStructurePath returns the environment variable path of the failing entry.
	GetMapStructurePath() string
	// GetReason returns why the validation failed.
	GetReason() string
	Unwrap() error
	RecordField(fieldName string, mapStructureFieldName *string, mapStructurePrefix *string)
	RecordPrefix(mapStructurePrefix string)
}

// WrapFieldValidationError creates an error resulting from the validation of a field in a structure
func WrapFieldValidationError(fieldName string, mapStructure, prefix *string, err error) IValidationError {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	vErr.RecordField(fieldName, mapStructure, prefix)
	return vErr
}

// WrapValidationError creates an error resulting from the validation of a structure
func WrapValidationError(prefix *string, err error) IValidationError {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	if prefix != nil && *prefix != "" {
		vErr.RecordPrefix(*prefix)
	}
	return vErr
}

type validationError struct {
	tree               []string
	mapStructureTree   []string
	mapStructurePrefix *string
	reason             string
}

func (v *validationError) RecordField(fieldName string, mapStructureFieldName *string, mapStructurePrefix *string) {
	tree := make([]string, 0, len(v.tree)+1)
	tree = append(tree, strings.TrimSpace(fieldName))
	tree = append(tree, v.tree...)
	v.tree = tree
	if mapStructureFieldName != nil {
		treeMap := make([]string, 0, len(v.mapStructureTree)+1)
		treeMap = append(treeMap, strings.ToUpper(strings.TrimSpace(*mapStructureFieldName)))
		treeMap = append(treeMap, v.mapStructureTree...)
		v.mapStructureTree = treeMap
	}
	v.mapStructurePrefix = mapStructurePrefix
}

func (v *validationError) RecordPrefix(mapStructurePrefix string) {
	v.mapStructurePrefix = &mapStructurePrefix
}

func (v *validationError) Error() string {
	mapstructureStr := v.GetMapStructurePath()
	if mapstructureStr != "" {
		mapstructureStr = fmt.Sprintf(" [%v]", mapstructureStr)
	}
	treeStr := v.GetTreePath()
	if treeStr != "" {
		treeStr = fmt.Sprintf(" (%v)", treeStr)
	}
	reasonStr := v.GetReason()
	if reasonStr != "" {
		reasonStr = fmt.Sprintf(" %v", reasonStr)
	}

	return commonerrors.Newf(v.Unwrap(), "structure failed validation:%v%v%v", treeStr, mapstructureStr, reasonStr).Error()
}

func (v *validationError) GetMapStructurePath() string {
	mapstructureStr := ""
	if len(v.mapStructureTree) > 0 {
		mapstructureStr = strings.Join(v.mapStructureTree, "_")
		mapstructureStr = strings.ReplaceAll(mapstructureStr, "-", "_")
		if v.mapStructurePrefix != nil {
			mapstructureStr = fmt.Sprintf("%v_%v", strings.ToUpper(strings.TrimSpace(*v.mapStructurePrefix)), mapstructureStr)
		}
	}
	return mapstructureStr
}

func (v *validationError) GetTreePath() string {
	treeStr := ""
	if len(v.tree) > 0 {
		treeStr = strings.Join(v.tree, "->")
	}
	return treeStr
}

func (v *validationError) GetReason() string {
	return v.reason
}

func (v *validationError) Unwrap() error {
	return commonerrors.ErrInvalid
}

func (v *validationError) String() string {
	return v.Error()
}

func newValidationError(err error) *validationError {
	if err == nil {
		return nil
	}
	var vErr *validationError
	if errors.As(err, &vErr) {
		return vErr
	}
	var oe validation.Error
	if errors.As(err, &oe) {
		return newValidationErrorFromOzzoValidation(oe)
	}
	var oes validation.Errors
	if errors.As(err, &oes) {
		return newValidationErrorFromOzzoValidationErrors(oes)
	}
	return &validationError{
		reason: err.Error(),
	}
}

func newValidationErrorFromOzzoValidationErrors(oes validation.Errors) *validationError {
	if len(oes) == 0 {
		return &validationError{
			reason: oes.Error(),
		}
	}
	// Only store the one parameter
	params := make([]string, 0, len(oes))
	for param := range oes {
		params = append(params, param)
	}
	sort.Strings(params)
	param := params[0]
	veo := &validationError{
		reason: oes[param].Error(),
	}
	veo.RecordField(param, nil, nil)
	return veo
}

func newValidationErrorFromOzzoValidation(oe validation.Error) *validationError {
	veo := &validationError{
		reason: oe.Message(),
	}
	// Only store the one parameter
	params := make([]string, 0, len(oe.Params()))
	for param := range oe.Params() {
		params = append(params, param)
	}
	sort.Strings(params)
	if len(params) > 0 {
		veo.RecordField(params[0], nil, nil)
	}
	return veo
}
