package antispam

import (
	"errors"
	"strconv"
	"strings"

	c "expwall/internal/core/domain/common"
)

// MinSubmitTimeMs is the minimum client-reported time (in milliseconds) a
// human is expected to spend before submitting.
const MinSubmitTimeMs = 3000

var (
	ErrSpamDetected     = errors.New("unable to process the request")
	ErrSubmittedTooFast = errors.New("please take your time to write your experience")
)

// Fields carries the honeypot and timing values decoded from a submission
// body. The honeypot fields are invisible to legitimate users, so any
// non-empty value marks an automated client. ElapsedMs is the raw value of
// the client-reported timing field, if present.
//
// This gate is advisory defense against naive bots, not a security boundary:
// a client that knows about the timing field can forge it.
type Fields struct {
	Website     string
	Email       string
	Phone       string
	UserEmail   string
	PhoneNumber string
	ElapsedMs   c.Optional[string]
}

// Check rejects a submission that looks automated. ErrSpamDetected never
// reveals which honeypot fired.
func Check(fields Fields) error {
	if fields.Website != "" ||
		fields.Email != "" ||
		fields.Phone != "" ||
		fields.UserEmail != "" ||
		fields.PhoneNumber != "" {
		return ErrSpamDetected
	}

	if !fields.ElapsedMs.IsPresent {
		return nil
	}
	elapsed, err := strconv.ParseInt(strings.TrimSpace(fields.ElapsedMs.Value), 10, 64)
	if err != nil || elapsed < MinSubmitTimeMs {
		return ErrSubmittedTooFast
	}
	return nil
}
