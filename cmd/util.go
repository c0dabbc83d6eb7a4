package cmd

import (
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	greenCheck = color.GreenString("✓")
	redCross   = color.RedString("✗")
)

func applyTableFormat(t table.Writer) {
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// statusCell colors well-known lifecycle states for table output.
func statusCell(status string) string {
	switch status {
	case "linked", "active":
		return color.GreenString(status)
	case "pending":
		return color.YellowString(status)
	case "unlinked", "inactive", "disabled":
		return color.RedString(status)
	default:
		return status
	}
}
