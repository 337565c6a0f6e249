package mrpack

import (
	"crypto/sha1"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
)

// Hashes holds the expected digests for a declared file. Both SHA1 and
// SHA512 must match for content to be considered valid. Other carries
// additional algorithms verbatim; they are preserved but not verified.
type Hashes struct {
	SHA1   [sha1.Size]byte
	SHA512 [sha512.Size]byte
	Other  map[string]string

	// decoded records that the digests came from an actual hashes
	// object, so ParseIndex can reject entries that omit it.
	decoded bool
}

// ValidationError reports malformed index data rejected at parse time.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (h *Hashes) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if err := decodeDigest(h.SHA1[:], "sha1", m); err != nil {
		return err
	}
	if err := decodeDigest(h.SHA512[:], "sha512", m); err != nil {
		return err
	}
	delete(m, "sha1")
	delete(m, "sha512")
	if len(m) > 0 {
		h.Other = m
	}
	h.decoded = true
	return nil
}

func (h Hashes) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(h.Other)+2)
	for algo, sum := range h.Other {
		m[algo] = sum
	}
	m["sha1"] = hex.EncodeToString(h.SHA1[:])
	m["sha512"] = hex.EncodeToString(h.SHA512[:])
	return json.Marshal(m)
}

func decodeDigest(dst []byte, algo string, m map[string]string) error {
	s, ok := m[algo]
	if !ok {
		return &ValidationError{
			Field:  "hashes." + algo,
			Reason: "missing digest",
		}
	}
	if len(s) != hex.EncodedLen(len(dst)) {
		return &ValidationError{
			Field:  "hashes." + algo,
			Reason: fmt.Sprintf("digest must be %d hex characters, got %d", hex.EncodedLen(len(dst)), len(s)),
		}
	}
	if _, err := hex.Decode(dst, []byte(s)); err != nil {
		return &ValidationError{
			Field:  "hashes." + algo,
			Reason: err.Error(),
		}
	}
	return nil
}
