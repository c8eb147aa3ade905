package sanitizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		id        string
		input     string
		maxLength int
		expected  string
	}{
		{
			id:        "plain text untouched",
			input:     "hello world",
			maxLength: 100,
			expected:  "hello world",
		},
		{
			id:        "script tag escaped",
			input:     "<script>alert('x')</script>",
			maxLength: 100,
			expected:  "&lt;script&gt;alert(&#039;x&#039;)&lt;/script&gt;",
		},
		{
			id:        "all five significant characters",
			input:     `&<>"'`,
			maxLength: 100,
			expected:  "&amp;&lt;&gt;&quot;&#039;",
		},
		{
			id:        "nul and control characters dropped",
			input:     "a\x00b\x01c\x7fd",
			maxLength: 100,
			expected:  "abcd",
		},
		{
			id:        "tab and newline kept",
			input:     "a\tb\nc",
			maxLength: 100,
			expected:  "a\tb\nc",
		},
		{
			id:        "surrounding whitespace trimmed",
			input:     "  padded  ",
			maxLength: 100,
			expected:  "padded",
		},
		{
			id:        "truncated to max length",
			input:     "abcdefgh",
			maxLength: 3,
			expected:  "abc",
		},
		{
			id:        "empty input",
			input:     "",
			maxLength: 100,
			expected:  "",
		},
	}

	for _, testcase := range cases {
		actual := Sanitize(testcase.input, testcase.maxLength)
		assert.Equal(t, testcase.expected, actual, testcase.id)
	}
}

func TestSanitizeScriptOutputIsMarkupSafe(t *testing.T) {
	actual := Sanitize("<script>alert('x')</script>", 2000)

	assert.NotContains(t, actual, "<")
	assert.NotContains(t, actual, ">")
	assert.NotContains(t, actual, "'")
}

func TestSanitizeTruncatesAfterEscaping(t *testing.T) {
	// "&&" escapes to 10 runes; a cut at 7 lands inside the second entity.
	actual := Sanitize("&&", 7)

	assert.Equal(t, "&amp;&a", actual)
}

func TestSanitizeIsNotIdempotent(t *testing.T) {
	once := Sanitize("a & b", 100)
	twice := Sanitize(once, 100)

	assert.Equal(t, "a &amp; b", once)
	assert.NotEqual(t, once, twice)
	assert.True(t, strings.Contains(twice, "&amp;amp;"))
}
