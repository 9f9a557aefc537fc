package vaultfs

import (
	"io/fs"
	"regexp"
	"strings"
	"unicode/utf8"

	"chief-of-staff-api/internal/draft"
)

const previewLength = 200

var (
	priorityPattern   = regexp.MustCompile(`(?i)priority:\s*(high|medium|low|urgent)`)
	actionTypePattern = regexp.MustCompile(`(?i)action[_-]?type:\s*(\w+)`)
)

// parseDraft builds a Draft record from a file's name, content and stat info.
func parseDraft(filename, content string, info fs.FileInfo) draft.Draft {
	title := filename
	if line, _, _ := strings.Cut(content, "\n"); line != "" {
		title = strings.TrimLeft(line, "# ")
	}
	if title == "" {
		title = filename
	}

	priority := draft.PriorityMedium
	if m := priorityPattern.FindStringSubmatch(content); m != nil {
		priority = strings.ToLower(m[1])
	}

	actionType := "unknown"
	if m := actionTypePattern.FindStringSubmatch(content); m != nil {
		actionType = m[1]
	}

	preview := content
	if utf8.RuneCountInString(preview) > previewLength {
		// Truncate on a rune boundary so multi-byte content stays
		// valid UTF-8 on the wire.
		preview = string([]rune(preview)[:previewLength])
	}

	return draft.Draft{
		ID:         strings.TrimSuffix(filename, ".md"),
		Filename:   filename,
		Title:      title,
		Priority:   priority,
		ActionType: actionType,
		CreatedAt:  createdTime(info),
		ModifiedAt: info.ModTime(),
		Preview:    preview,
	}
}
