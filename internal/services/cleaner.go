package services

import (
	"regexp"
	"strings"
)

// Cleaner normalizes markdown before it reaches a generation stage. The
// sourceHint is the MIME or source type of the original upload, used to pick
// extraction-specific cleanups.
type Cleaner interface {
	Clean(markdown, sourceHint string) string
}

// MarkdownCleaner is a local, model-free normalizer. It smooths the usual
// extraction artifacts: inconsistent bullets, stray HTML comments, page
// numbers left over from paginated sources, and runaway blank lines.
type MarkdownCleaner struct{}

func NewMarkdownCleaner() *MarkdownCleaner {
	return &MarkdownCleaner{}
}

var (
	htmlCommentRegex   = regexp.MustCompile(`(?s)<!--.*?-->`)
	bulletRegex        = regexp.MustCompile(`(?m)^(\s*)[*+] `)
	headingSpaceRegex  = regexp.MustCompile(`(?m)^(#{1,6})([^#\s])`)
	trailingSpaceRegex = regexp.MustCompile(`(?m)[ \t]+$`)
	blankRunRegex      = regexp.MustCompile(`\n{3,}`)
	pageNumberRegex    = regexp.MustCompile(`(?m)^\s*\d{1,4}\s*$`)
)

func (c *MarkdownCleaner) Clean(markdown, sourceHint string) string {
	out := strings.ReplaceAll(markdown, "\r\n", "\n")

	out = htmlCommentRegex.ReplaceAllString(out, "")
	out = bulletRegex.ReplaceAllString(out, "$1- ")
	out = headingSpaceRegex.ReplaceAllString(out, "$1 $2")
	out = trailingSpaceRegex.ReplaceAllString(out, "")

	// Paginated sources leave bare page numbers between pages.
	if isPaginatedSource(sourceHint) {
		out = pageNumberRegex.ReplaceAllString(out, "")
	}

	out = blankRunRegex.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

func isPaginatedSource(hint string) bool {
	hint = strings.ToLower(hint)
	return strings.Contains(hint, "pdf") || strings.Contains(hint, "presentation") || strings.Contains(hint, "powerpoint")
}
