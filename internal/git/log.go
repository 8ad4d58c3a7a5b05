package git

import "strings"

const (
	// fieldSeparator separates the fields of one log record. Commit messages
	// cannot contain it without corrupting the terminal, so it is safe to split on.
	fieldSeparator = "\x1f"
	// recordSeparator starts every log record
	recordSeparator = "\x1e"

	// logFormat maps author email, author name, ISO-like date, full hash and
	// full message body, in that order.
	logFormat = "%x1e%ae%x1f%aN%x1f%ai%x1f%H%x1f%B"

	logFieldCount = 5
)

// LogEntry is a single commit from git log
type LogEntry struct {
	AuthorEmail string `json:"author_email"`
	AuthorName  string `json:"author_name"`
	Date        string `json:"date"`
	Hash        string `json:"hash"`
	Message     string `json:"message"`
}

// LogSummary is the result of a git log request, most recent commit first
type LogSummary struct {
	All    []LogEntry `json:"all"`
	Latest *LogEntry  `json:"latest"`
	Total  int        `json:"total"`
}

// ParseLog parses output produced with logFormat
func ParseLog(output string) *LogSummary {
	summary := &LogSummary{All: []LogEntry{}}

	for _, record := range strings.Split(output, recordSeparator) {
		if strings.TrimSpace(record) == "" {
			continue
		}
		fields := strings.SplitN(record, fieldSeparator, logFieldCount)
		for len(fields) < logFieldCount {
			fields = append(fields, "")
		}
		summary.All = append(summary.All, LogEntry{
			AuthorEmail: fields[0],
			AuthorName:  fields[1],
			Date:        fields[2],
			Hash:        fields[3],
			Message:     strings.TrimRight(fields[4], "\n"),
		})
	}

	summary.Total = len(summary.All)
	if summary.Total > 0 {
		summary.Latest = &summary.All[0]
	}
	return summary
}
