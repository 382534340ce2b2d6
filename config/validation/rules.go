/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package validation provides extra rules for validating configuration entries.
package validation

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/evidencelab/hashcalc/commonerrors"
	"github.com/evidencelab/hashcalc/digest"
)

// IsAlgorithmSelection validates that a selection string enables at least one
// registered digest algorithm. The empty selection is valid and means the defaults.
func IsAlgorithmSelection() validation.Rule {
	return validation.By(func(vRaw any) error {
		selection, ok := vRaw.(string)
		if !ok {
			return commonerrors.Newf(commonerrors.ErrUnsupported, "unsupported type for an algorithm selection: %T", vRaw)
		}
		if selection == "" {
			return nil
		}
		_, err := digest.ParseSet(selection)
		return err
	})
}

// IsDatabaseURL validates that a value is a URL a database connection can be opened
// from. The empty string is valid: persistence is optional.
func IsDatabaseURL() validation.Rule {
	return validation.By(func(vRaw any) (err error) {
		url, ok := vRaw.(string)
		if !ok {
			return commonerrors.Newf(commonerrors.ErrUnsupported, "unsupported type for a database URL: %T", vRaw)
		}
		if url == "" {
			return nil
		}
		err = is.URL.Validate(url)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "")
		}
		return
	})
}
