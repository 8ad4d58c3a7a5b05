package git

import (
	"regexp"
	"strconv"
	"strings"
)

// FileStatus is the two-column porcelain state of one path
type FileStatus struct {
	Path       string `json:"path"`
	Index      string `json:"index"`
	WorkingDir string `json:"working_dir"`
	// From is the original path of a rename or copy
	From string `json:"from,omitempty"`
}

// StatusSummary is a parsed git status snapshot
type StatusSummary struct {
	Ahead      int          `json:"ahead"`
	Behind     int          `json:"behind"`
	Conflicted []string     `json:"conflicted"`
	Created    []string     `json:"created"`
	Deleted    []string     `json:"deleted"`
	Modified   []string     `json:"modified"`
	Renamed    []string     `json:"renamed"`
	NotAdded   []string     `json:"not_added"`
	Files      []FileStatus `json:"files"`
	Current    string       `json:"current"`
	Tracking   string       `json:"tracking"`
	Detached   bool         `json:"detached"`
}

// IsClean reports whether the working copy has no changes of any kind
func (s *StatusSummary) IsClean() bool {
	return len(s.Files) == 0
}

var (
	aheadPattern  = regexp.MustCompile(`ahead (\d+)`)
	behindPattern = regexp.MustCompile(`behind (\d+)`)
)

// conflictCodes are the XY pairs git uses for unmerged paths
var conflictCodes = map[string]bool{
	"DD": true, "AU": true, "UD": true, "UA": true,
	"DU": true, "AA": true, "UU": true,
}

func newStatusSummary() *StatusSummary {
	return &StatusSummary{
		Conflicted: []string{},
		Created:    []string{},
		Deleted:    []string{},
		Modified:   []string{},
		Renamed:    []string{},
		NotAdded:   []string{},
		Files:      []FileStatus{},
	}
}

// ParseStatus parses the output of git status --porcelain=v1 -b -u -z
func ParseStatus(output string) *StatusSummary {
	summary := newStatusSummary()

	entries := strings.Split(output, "\x00")
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if entry == "" {
			continue
		}
		if strings.HasPrefix(entry, "## ") {
			summary.parseBranchLine(strings.TrimPrefix(entry, "## "))
			continue
		}
		if len(entry) < 4 {
			continue
		}

		file := FileStatus{
			Index:      entry[0:1],
			WorkingDir: entry[1:2],
			Path:       entry[3:],
		}
		// Renames and copies carry the source path as the next entry
		if (file.Index == "R" || file.Index == "C") && i+1 < len(entries) {
			i++
			file.From = entries[i]
		}
		summary.addFile(file)
	}

	return summary
}

func (s *StatusSummary) parseBranchLine(line string) {
	switch {
	case strings.HasPrefix(line, "HEAD (no branch)"):
		s.Current = "HEAD"
		s.Detached = true
		return
	case strings.HasPrefix(line, "No commits yet on "):
		s.Current = strings.TrimPrefix(line, "No commits yet on ")
		return
	case strings.HasPrefix(line, "Initial commit on "):
		s.Current = strings.TrimPrefix(line, "Initial commit on ")
		return
	}

	branchPart := line
	if idx := strings.Index(line, " ["); idx >= 0 {
		counts := line[idx:]
		branchPart = line[:idx]
		if m := aheadPattern.FindStringSubmatch(counts); m != nil {
			s.Ahead, _ = strconv.Atoi(m[1])
		}
		if m := behindPattern.FindStringSubmatch(counts); m != nil {
			s.Behind, _ = strconv.Atoi(m[1])
		}
	}

	if current, tracking, ok := strings.Cut(branchPart, "..."); ok {
		s.Current = current
		s.Tracking = tracking
		return
	}
	s.Current = branchPart
}

func (s *StatusSummary) addFile(file FileStatus) {
	s.Files = append(s.Files, file)
	code := file.Index + file.WorkingDir

	switch {
	case code == "??":
		s.NotAdded = appendUnique(s.NotAdded, file.Path)
		return
	case code == "!!":
		return
	case conflictCodes[code]:
		s.Conflicted = appendUnique(s.Conflicted, file.Path)
		return
	}

	switch file.Index {
	case "A", "C":
		s.Created = appendUnique(s.Created, file.Path)
	case "R":
		s.Renamed = appendUnique(s.Renamed, file.Path)
	case "D":
		s.Deleted = appendUnique(s.Deleted, file.Path)
	case "M":
		s.Modified = appendUnique(s.Modified, file.Path)
	}

	switch file.WorkingDir {
	case "A":
		s.Created = appendUnique(s.Created, file.Path)
	case "D":
		s.Deleted = appendUnique(s.Deleted, file.Path)
	case "M":
		s.Modified = appendUnique(s.Modified, file.Path)
	}
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
