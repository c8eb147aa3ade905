package fingerprint

// FakeFingerprinter maps every non-empty address to itself with a fixed
// prefix so tests can predict fingerprints without hashing.
type FakeFingerprinter struct{}

func NewFakeFingerprinter() *FakeFingerprinter {
	return &FakeFingerprinter{}
}

func (f *FakeFingerprinter) Fingerprint(address string) Fingerprint {
	if address == "" {
		return Unknown
	}
	return Fingerprint("fp::" + address)
}
