package stun

import (
	"crypto/md5" // nolint:gosec
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"

	"github.com/pkg/errors"

	"github.com/jason-shen/ezk/stun/internal/hmac"
)

// separator for credentials.
const credentialsSep = ":"

// MessageIntegrityKey is an opaque HMAC key for the MESSAGE-INTEGRITY
// and MESSAGE-INTEGRITY-SHA256 attributes.
type MessageIntegrityKey []byte

// NewLongTermMD5Key returns a key for long-term credentials with the MD5
// password algorithm, RFC 8489 Section 9.2.2. Username, realm, and
// password must be SASL-prepared.
func NewLongTermMD5Key(username, realm, password string) MessageIntegrityKey {
	k := strings.Join([]string{username, realm, password}, credentialsSep)
	h := md5.New()   // nolint:gosec
	fmt.Fprint(h, k) // nolint:errcheck
	return MessageIntegrityKey(h.Sum(nil))
}

// NewLongTermSHA256Key returns a key for long-term credentials with the
// SHA-256 password algorithm.
func NewLongTermSHA256Key(username, realm, password string) MessageIntegrityKey {
	k := strings.Join([]string{username, realm, password}, credentialsSep)
	h := sha256.New()
	fmt.Fprint(h, k) // nolint:errcheck
	return MessageIntegrityKey(h.Sum(nil))
}

// NewShortTermKey returns a key for short-term credentials. Password
// must be SASL-prepared.
func NewShortTermKey(password string) MessageIntegrityKey {
	return MessageIntegrityKey(password)
}

// NewRawKey uses key bytes as-is.
func NewRawKey(key []byte) MessageIntegrityKey {
	return MessageIntegrityKey(key)
}

func (k MessageIntegrityKey) String() string {
	return fmt.Sprintf("KEY: 0x%x", []byte(k))
}

// MessageIntegrity represents MESSAGE-INTEGRITY attribute.
//
// Encode and Decode are using zero-allocation version of hmac, see
// internal/hmac/pool.go. Decode never writes to the received buffer: the
// header length field value that covered the attribute when the digest
// was produced is fed to the HMAC separately.
//
// RFC 8489 Section 14.5.
type MessageIntegrity struct{}

const messageIntegritySize = 20

// Type returns AttrMessageIntegrity.
func (MessageIntegrity) Type() AttrType {
	return AttrMessageIntegrity
}

// EncodeLen returns the HMAC-SHA1 digest size.
func (MessageIntegrity) EncodeLen() (uint16, error) {
	return messageIntegritySize, nil
}

// Encode rewrites the header length field to cover this attribute and
// appends the HMAC of everything before the attribute header.
//
// CPU costly, see BenchmarkMessageIntegrity_Encode.
func (MessageIntegrity) Encode(key MessageIntegrityKey, b *Builder) error {
	l := len(b.Raw) + messageIntegritySize - messageHeaderSize
	if l > maxMessageLength {
		return errors.Wrap(ErrMessageSizeOverflow, AttrMessageIntegrity.String())
	}
	b.SetLength(uint16(l))
	mac := hmac.AcquireSHA1(key)
	defer hmac.PutSHA1(mac)
	writeOrPanic(mac, b.Raw[:len(b.Raw)-attributeHeaderSize])
	b.Raw = mac.Sum(b.Raw)
	return nil
}

// Decode verifies the HMAC over the message bytes before the attribute
// header, under a header length field ending at this attribute. A value
// of the wrong size fails the check before any HMAC work.
//
// CPU costly, see BenchmarkMessageIntegrity_Decode.
func (MessageIntegrity) Decode(key MessageIntegrityKey, m *Message, s AttrSpan) error {
	if s.ValueEnd-s.ValueBegin != messageIntegritySize {
		return ErrIntegrityMismatch
	}
	mac := hmac.AcquireSHA1(key)
	defer hmac.PutSHA1(mac)
	var digest [messageIntegritySize]byte
	expected := integritySum(mac, m.Raw, s, digest[:0])
	return checkHMAC(s.Value(m.Raw), expected)
}

// integritySum feeds mac the message bytes before the attribute header
// at s, with the header length field replaced by the value that covered
// the attribute when the digest was produced, and appends the digest
// to buf.
func integritySum(mac hash.Hash, raw []byte, s AttrSpan, buf []byte) []byte {
	writeOrPanic(mac, raw[0:2])
	var l [2]byte
	bin.PutUint16(l[:], uint16(s.PaddingEnd-messageHeaderSize))
	writeOrPanic(mac, l[:])
	writeOrPanic(mac, raw[4:s.Begin])
	return mac.Sum(buf)
}

// MessageIntegritySHA256 represents MESSAGE-INTEGRITY-SHA256 attribute.
//
// The full 32-byte digest is always produced, the truncation permitted
// by the RFC is not supported.
//
// RFC 8489 Section 14.6.
type MessageIntegritySHA256 struct{}

const messageIntegritySHA256Size = 32

// Type returns AttrMessageIntegritySHA256.
func (MessageIntegritySHA256) Type() AttrType {
	return AttrMessageIntegritySHA256
}

// EncodeLen returns the HMAC-SHA256 digest size.
func (MessageIntegritySHA256) EncodeLen() (uint16, error) {
	return messageIntegritySHA256Size, nil
}

// Encode rewrites the header length field to cover this attribute and
// appends the HMAC of everything before the attribute header.
func (MessageIntegritySHA256) Encode(key MessageIntegrityKey, b *Builder) error {
	l := len(b.Raw) + messageIntegritySHA256Size - messageHeaderSize
	if l > maxMessageLength {
		return errors.Wrap(ErrMessageSizeOverflow, AttrMessageIntegritySHA256.String())
	}
	b.SetLength(uint16(l))
	mac := hmac.AcquireSHA256(key)
	defer hmac.PutSHA256(mac)
	writeOrPanic(mac, b.Raw[:len(b.Raw)-attributeHeaderSize])
	b.Raw = mac.Sum(b.Raw)
	return nil
}

// Decode verifies the HMAC the same way MessageIntegrity.Decode does,
// with a 32-byte digest.
func (MessageIntegritySHA256) Decode(key MessageIntegrityKey, m *Message, s AttrSpan) error {
	if s.ValueEnd-s.ValueBegin != messageIntegritySHA256Size {
		return ErrIntegrityMismatch
	}
	mac := hmac.AcquireSHA256(key)
	defer hmac.PutSHA256(mac)
	var digest [messageIntegritySHA256Size]byte
	expected := integritySum(mac, m.Raw, s, digest[:0])
	return checkHMAC(s.Value(m.Raw), expected)
}
