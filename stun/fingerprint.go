package stun

import (
	"fmt"
	"hash/crc32"
)

// FingerprintAttr represents FINGERPRINT attribute.
//
// RFC 8489 Section 14.7.
type FingerprintAttr byte

// CRCMismatch represents CRC check error.
type CRCMismatch struct {
	Expected uint32
	Actual   uint32
}

func (m CRCMismatch) Error() string {
	return fmt.Sprintf("CRC mismatch: %x (expected) != %x (actual)",
		m.Expected,
		m.Actual,
	)
}

// Fingerprint is shorthand for FingerprintAttr.
//
// Example:
//
//	b := NewBuilder(BindingRequest, NewTransactionID())
//	b.Add(Fingerprint)
var Fingerprint FingerprintAttr

const (
	fingerprintXORValue uint32 = 0x5354554e
	fingerprintSize            = 4 // 32 bit
)

// FingerprintValue returns CRC-32 of b XOR-ed by 0x5354554e.
//
// The value of the attribute is computed as the CRC-32 of the STUN message
// up to (but excluding) the FINGERPRINT attribute itself, XOR'ed with
// the 32-bit value 0x5354554e (the XOR helps in cases where an
// application packet is also using CRC-32 in it).
func FingerprintValue(b []byte) uint32 {
	return crc32.ChecksumIEEE(b) ^ fingerprintXORValue // XOR
}

// Type returns AttrFingerprint.
func (FingerprintAttr) Type() AttrType {
	return AttrFingerprint
}

// EncodeLen returns the FINGERPRINT value size.
func (FingerprintAttr) EncodeLen() (uint16, error) {
	return fingerprintSize, nil
}

// Encode appends the checksum of everything before the attribute header.
// The builder keeps the header length field covering this attribute, so
// the hashed bytes are exactly what Decode will see.
func (FingerprintAttr) Encode(_ Void, b *Builder) error {
	val := FingerprintValue(b.Raw[:len(b.Raw)-attributeHeaderSize])
	var v [fingerprintSize]byte
	bin.PutUint32(v[:], val)
	b.Raw = append(b.Raw, v[:]...)
	return nil
}

// Decode verifies the checksum over m.Raw up to the attribute header.
// Returns *CRCMismatch if the transmitted value differs from the
// computed one.
func (FingerprintAttr) Decode(_ Void, m *Message, s AttrSpan) error {
	if err := CheckSize(AttrFingerprint, s.ValueEnd-s.ValueBegin, fingerprintSize); err != nil {
		return err
	}
	val := bin.Uint32(s.Value(m.Raw))
	expected := FingerprintValue(m.Raw[:s.Begin])
	if expected != val {
		return &CRCMismatch{Expected: expected, Actual: val}
	}
	return nil
}
