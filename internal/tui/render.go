package tui

import (
	"fmt"
	"strings"

	"githelper.dev/githelper/internal/git"
)

// shortHashLength is the number of hash characters shown in log output
const shortHashLength = 7

// RenderLog formats a log summary one commit per block, most recent first
func RenderLog(summary *git.LogSummary) string {
	if summary == nil || summary.Total == 0 {
		return ColorDim("No commits") + "\n"
	}

	var b strings.Builder
	for i, entry := range summary.All {
		if i > 0 {
			b.WriteString("\n")
		}
		hash := entry.Hash
		if len(hash) > shortHashLength {
			hash = hash[:shortHashLength]
		}
		subject, body, _ := strings.Cut(entry.Message, "\n")
		fmt.Fprintf(&b, "%s %s\n", ColorYellow(hash), subject)
		fmt.Fprintf(&b, "  %s\n", ColorDim(fmt.Sprintf("%s <%s>, %s", entry.AuthorName, entry.AuthorEmail, entry.Date)))
		if body = strings.TrimSpace(body); body != "" {
			for _, line := range strings.Split(body, "\n") {
				fmt.Fprintf(&b, "  %s\n", line)
			}
		}
	}
	fmt.Fprintf(&b, "\n%s\n", ColorDim(fmt.Sprintf("%d commit(s)", summary.Total)))
	return b.String()
}

// RenderStatus formats a status snapshot in the style of git status --short --branch
func RenderStatus(status *git.StatusSummary) string {
	var b strings.Builder

	b.WriteString("On branch " + ColorBranch(status.Current))
	if status.Tracking != "" {
		b.WriteString(" tracking " + ColorCyan(status.Tracking))
	}
	b.WriteString("\n")

	if status.Ahead > 0 || status.Behind > 0 {
		fmt.Fprintf(&b, "%s\n", ColorDim(fmt.Sprintf("ahead %d, behind %d", status.Ahead, status.Behind)))
	}

	if status.IsClean() {
		b.WriteString(ColorGreen("Working tree clean") + "\n")
		return b.String()
	}

	for _, file := range status.Files {
		code := file.Index + file.WorkingDir
		path := file.Path
		if file.From != "" {
			path = file.From + " -> " + file.Path
		}
		switch {
		case code == "??":
			fmt.Fprintf(&b, "%s %s\n", ColorRed(code), path)
		case file.Index == "U" || file.WorkingDir == "U" || code == "AA" || code == "DD":
			fmt.Fprintf(&b, "%s %s\n", ColorRed(code), path)
		default:
			fmt.Fprintf(&b, "%s %s\n", ColorGreen(code), path)
		}
	}
	return b.String()
}
