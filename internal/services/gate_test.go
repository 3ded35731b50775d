package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContentRejectsEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		err := ValidateContent(text)
		require.Error(t, err)
		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Contains(t, inputErr.Reason, "no content")
	}
}

func TestValidateContentWordBoundary(t *testing.T) {
	// 19 words of 3 letters each: under the word minimum.
	nineteen := strings.TrimSpace(strings.Repeat("abc ", 19))
	err := ValidateContent(nineteen)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")

	// 20 words, 60 letters: both thresholds met.
	twenty := strings.TrimSpace(strings.Repeat("abc ", 20))
	assert.NoError(t, ValidateContent(twenty))
}

func TestValidateContentLetterBoundary(t *testing.T) {
	// 25 words but only 40 letters: passes the word check, fails the letter
	// check.
	words := make([]string, 0, 25)
	for i := 0; i < 20; i++ {
		words = append(words, "ab")
	}
	for i := 0; i < 5; i++ {
		words = append(words, "123")
	}
	text := strings.Join(words, " ")

	err := ValidateContent(text)
	require.Error(t, err)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Reason, "meaningless")
}

func TestValidateContentChecksAreIndependent(t *testing.T) {
	// Few long words: enough letters, too few words.
	longWords := strings.TrimSpace(strings.Repeat("abcdefghijklmnop ", 5))
	require.Error(t, ValidateContent(longWords))
}
