/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import "github.com/evidencelab/hashcalc/cmd/hashcalc/cmd"

func main() {
	cmd.Execute()
}
