package antispam

import (
	"testing"

	c "expwall/internal/core/domain/common"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	cases := []struct {
		id       string
		fields   Fields
		expected error
	}{
		{
			id:       "empty payload passes",
			fields:   Fields{},
			expected: nil,
		},
		{
			id:       "website honeypot filled",
			fields:   Fields{Website: "https://spam.example.com"},
			expected: ErrSpamDetected,
		},
		{
			id:       "email honeypot filled",
			fields:   Fields{Email: "bot@example.com"},
			expected: ErrSpamDetected,
		},
		{
			id:       "phone honeypot filled",
			fields:   Fields{Phone: "555-0100"},
			expected: ErrSpamDetected,
		},
		{
			id:       "user_email honeypot filled",
			fields:   Fields{UserEmail: "bot@example.com"},
			expected: ErrSpamDetected,
		},
		{
			id:       "phone_number honeypot filled",
			fields:   Fields{PhoneNumber: "555-0100"},
			expected: ErrSpamDetected,
		},
		{
			id:       "honeypot wins over valid timing",
			fields:   Fields{Website: "x", ElapsedMs: c.NewOptional("10000", true)},
			expected: ErrSpamDetected,
		},
		{
			id:       "timing below threshold",
			fields:   Fields{ElapsedMs: c.NewOptional("2999", true)},
			expected: ErrSubmittedTooFast,
		},
		{
			id:       "timing at threshold passes",
			fields:   Fields{ElapsedMs: c.NewOptional("3000", true)},
			expected: nil,
		},
		{
			id:       "timing above threshold passes",
			fields:   Fields{ElapsedMs: c.NewOptional("45000", true)},
			expected: nil,
		},
		{
			id:       "non-numeric timing",
			fields:   Fields{ElapsedMs: c.NewOptional("fast", true)},
			expected: ErrSubmittedTooFast,
		},
		{
			id:       "timing absent passes",
			fields:   Fields{ElapsedMs: c.NewOptional("", false)},
			expected: nil,
		},
	}

	for _, testcase := range cases {
		actual := Check(testcase.fields)
		assert.ErrorIs(t, actual, testcase.expected, testcase.id)
	}
}
