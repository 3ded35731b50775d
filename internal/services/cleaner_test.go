package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanNormalizesBulletsAndHeadings(t *testing.T) {
	c := NewMarkdownCleaner()

	in := "#Topic\r\n* first\r\n+ second\r\n- third\r\n"
	out := c.Clean(in, "text/markdown")

	assert.Equal(t, "# Topic\n- first\n- second\n- third", out)
}

func TestCleanStripsCommentsAndBlankRuns(t *testing.T) {
	c := NewMarkdownCleaner()

	in := "Intro text\n\n\n\n<!-- page break\nartifact -->\n\nMore text   \n"
	out := c.Clean(in, "")

	assert.Equal(t, "Intro text\n\nMore text", out)
}

func TestCleanDropsPageNumbersForPaginatedSources(t *testing.T) {
	c := NewMarkdownCleaner()
	in := "First page content\n\n12\n\nSecond page content"

	pdf := c.Clean(in, "application/pdf")
	assert.NotContains(t, pdf, "12")

	// Plain markdown keeps numeric lines: they may be real content.
	md := c.Clean(in, "text/markdown")
	assert.Contains(t, md, "12")
}
