package stun

import (
	"crypto/sha256"
	"fmt"
)

// Userhash represents USERHASH attribute, a SHA-256 of "username:realm"
// used instead of USERNAME to hide the username in long-term credential
// requests.
//
// RFC 8489 Section 14.4.
type Userhash []byte

const userhashSize = sha256.Size

// NewUserhash computes the USERHASH value for username and realm.
// Both must be SASL-prepared.
func NewUserhash(username, realm string) *Userhash {
	h := sha256.Sum256([]byte(username + credentialsSep + realm))
	u := Userhash(h[:])
	return &u
}

func (u Userhash) String() string {
	return fmt.Sprintf("0x%x", []byte(u))
}

// Type returns AttrUserhash.
func (Userhash) Type() AttrType {
	return AttrUserhash
}

// EncodeLen returns the USERHASH value size. The value must be a full
// SHA-256 digest.
func (u Userhash) EncodeLen() (uint16, error) {
	if err := CheckSize(AttrUserhash, len(u), userhashSize); err != nil {
		return 0, err
	}
	return userhashSize, nil
}

// Encode appends the hash bytes.
func (u Userhash) Encode(_ Void, b *Builder) error {
	b.Raw = append(b.Raw, u...)
	return nil
}

// Decode points u at the hash bytes inside m.Raw.
func (u *Userhash) Decode(_ Void, m *Message, s AttrSpan) error {
	v := s.Value(m.Raw)
	if err := CheckSize(AttrUserhash, len(v), userhashSize); err != nil {
		return err
	}
	*u = Userhash(v)
	return nil
}
