// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dnssec

import (
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// maxValueWidth bounds the record value column; key material is abbreviated.
const maxValueWidth = 48

// RenderTable renders reports as a markdown table, one row per key, DS record
// and finding, with names in sorted order.
//
// Parameters:
//   - reports: Reports keyed by name
//
// Returns:
//   - string: Markdown table representation of the reports
func RenderTable(reports map[string]*Report) string {
	if len(reports) == 0 {
		return "No names inspected"
	}

	names := make([]string, 0, len(reports))
	for name := range reports {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Name", "Record", "ID", "Status", "Value"})

	var rows [][]string
	for _, name := range names {
		rep := reports[name]
		for _, k := range rep.DNSKEYRecords {
			status := string(k.Detail.Type)
			if status == "" {
				status = "unknown flags"
			}
			rows = append(rows, []string{name, "DNSKEY", strconv.Itoa(int(k.ID)), status, abbreviate(k.Detail.Value)})
		}
		for _, d := range rep.DSRecords {
			rows = append(rows, []string{name, "DS", d.ID, dsStatus(d.Detail), abbreviate(d.Detail.Value)})
		}
		for _, f := range rep.Errors {
			rows = append(rows, []string{name, "error", "", f.Kind.String(), f.String()})
		}
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

func dsStatus(d DSDetail) string {
	switch {
	case d.Dangling:
		return "dangling"
	case d.ValidKeyDigest != nil && *d.ValidKeyDigest:
		return "valid digest"
	default:
		return "invalid digest"
	}
}

func abbreviate(s string) string {
	if len(s) <= maxValueWidth {
		return s
	}
	return s[:maxValueWidth-3] + "..."
}
