/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/evidencelab/hashcalc/digest"
	"github.com/evidencelab/hashcalc/pipeline"
)

const noDigest = "-"

// renderSummary prints one row per processed file followed by a line about the run.
// Digest columns follow the algorithm identifier order so that two runs over the
// same tree render identically.
func renderSummary(out io.Writer, algorithms digest.Set, summary *pipeline.Summary) {
	algos := algorithms.List()
	header := []string{"PATH", "STATUS"}
	for i := range algos {
		header = append(header, string(algos[i]))
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	// Digests are longer than the default wrapping width and must stay on one line.
	table.SetAutoWrapText(false)
	for i := range summary.Reports {
		report := summary.Reports[i]
		row := []string{report.Path, report.Status.String()}
		for j := range algos {
			hexDigest, found := report.Digests[algos[j]]
			if !found {
				hexDigest = noDigest
			}
			row = append(row, hexDigest)
		}
		table.Append(row)
	}
	table.Render()

	fmt.Fprintf(out, "run %v: %v file(s) hashed (%v bytes) in %v, %v failed\n",
		summary.RunID, summary.Succeeded(), summary.Bytes(), summary.Duration.Round(time.Millisecond), summary.Failed())
}
