package stun

import (
	"strings"
)

// UnknownAttributes represents UNKNOWN-ATTRIBUTES attribute, a list of
// 16-bit attribute type codes.
//
// RFC 8489 Section 14.13.
type UnknownAttributes []AttrType

func (a UnknownAttributes) String() string {
	if len(a) == 0 {
		return "<nil>"
	}
	s := make([]string, len(a))
	for i, t := range a {
		s[i] = t.String()
	}
	return strings.Join(s, ", ")
}

// type size is 16 bit.
const attrTypeSize = 2

// ErrBadUnknownAttrsSize means that UNKNOWN-ATTRIBUTES attribute value
// has invalid length.
const ErrBadUnknownAttrsSize Error = "bad UNKNOWN-ATTRIBUTES size"

// Type returns AttrUnknownAttributes.
func (UnknownAttributes) Type() AttrType {
	return AttrUnknownAttributes
}

// EncodeLen returns the packed list size.
func (a UnknownAttributes) EncodeLen() (uint16, error) {
	n := attrTypeSize * len(a)
	if err := CheckOverflow(AttrUnknownAttributes, n, maxMessageLength); err != nil {
		return 0, err
	}
	return uint16(n), nil // nolint:gosec // G115, checked above
}

// Encode appends the attribute types densely packed.
func (a UnknownAttributes) Encode(_ Void, b *Builder) error {
	var v [attrTypeSize]byte
	for _, t := range a {
		bin.PutUint16(v[:], t.Value())
		b.Raw = append(b.Raw, v[:]...)
	}
	return nil
}

// Decode reads the type list at s into a.
func (a *UnknownAttributes) Decode(_ Void, m *Message, s AttrSpan) error {
	v := s.Value(m.Raw)
	if len(v)%attrTypeSize != 0 {
		return ErrBadUnknownAttrsSize
	}
	*a = (*a)[:0]
	for first := 0; first < len(v); first += attrTypeSize {
		*a = append(*a, AttrType(bin.Uint16(v[first:first+attrTypeSize])))
	}
	return nil
}
