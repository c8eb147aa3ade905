package fingerprint

// Fingerprint is a salted one-way digest identifying a submitter or viewer
// without revealing their network address. It is stored, compared and used
// as a rate-limiting key, but never exposed through the API.
type Fingerprint string

// Unknown is the sentinel fingerprint used when no usable client address is
// available. All such clients are conflated: together they accrue a single
// counted view per experience and share one submission budget.
const Unknown Fingerprint = "unknown"

func (f Fingerprint) String() string {
	return string(f)
}

type Fingerprinter interface {
	Fingerprint(address string) Fingerprint
}
