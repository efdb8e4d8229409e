package stun

// Priority represents PRIORITY attribute.
//
// RFC 8445 Section 7.1.1.
type Priority uint32

const prioritySize = 4 // 32 bit

// Type returns AttrPriority.
func (Priority) Type() AttrType {
	return AttrPriority
}

// EncodeLen returns the PRIORITY value size.
func (Priority) EncodeLen() (uint16, error) {
	return prioritySize, nil
}

// Encode appends the priority as big-endian uint32.
func (p Priority) Encode(_ Void, b *Builder) error {
	var v [prioritySize]byte
	bin.PutUint32(v[:], uint32(p))
	b.Raw = append(b.Raw, v[:]...)
	return nil
}

// Decode reads the priority value at s.
func (p *Priority) Decode(_ Void, m *Message, s AttrSpan) error {
	v := s.Value(m.Raw)
	if err := CheckSize(AttrPriority, len(v), prioritySize); err != nil {
		return err
	}
	*p = Priority(bin.Uint32(v))
	return nil
}

// UseCandidate represents USE-CANDIDATE attribute. It has no value.
//
// RFC 8445 Section 7.1.2.
type UseCandidate struct{}

// Type returns AttrUseCandidate.
func (UseCandidate) Type() AttrType {
	return AttrUseCandidate
}

// EncodeLen returns zero.
func (UseCandidate) EncodeLen() (uint16, error) {
	return 0, nil
}

// Encode appends nothing.
func (UseCandidate) Encode(_ Void, _ *Builder) error {
	return nil
}

// Decode checks that the value is empty.
func (UseCandidate) Decode(_ Void, m *Message, s AttrSpan) error {
	return CheckSize(AttrUseCandidate, s.ValueEnd-s.ValueBegin, 0)
}

const tiebreakerSize = 8 // 64 bit

// ICEControlled represents ICE-CONTROLLED attribute, the agent
// tiebreaker value.
//
// RFC 8445 Section 7.1.3.
type ICEControlled uint64

// Type returns AttrICEControlled.
func (ICEControlled) Type() AttrType {
	return AttrICEControlled
}

// EncodeLen returns the tiebreaker size.
func (ICEControlled) EncodeLen() (uint16, error) {
	return tiebreakerSize, nil
}

// Encode appends the tiebreaker as big-endian uint64.
func (c ICEControlled) Encode(_ Void, b *Builder) error {
	var v [tiebreakerSize]byte
	bin.PutUint64(v[:], uint64(c))
	b.Raw = append(b.Raw, v[:]...)
	return nil
}

// Decode reads the tiebreaker value at s.
func (c *ICEControlled) Decode(_ Void, m *Message, s AttrSpan) error {
	v := s.Value(m.Raw)
	if err := CheckSize(AttrICEControlled, len(v), tiebreakerSize); err != nil {
		return err
	}
	*c = ICEControlled(bin.Uint64(v))
	return nil
}

// ICEControlling represents ICE-CONTROLLING attribute, the agent
// tiebreaker value.
//
// RFC 8445 Section 7.1.3.
type ICEControlling uint64

// Type returns AttrICEControlling.
func (ICEControlling) Type() AttrType {
	return AttrICEControlling
}

// EncodeLen returns the tiebreaker size.
func (ICEControlling) EncodeLen() (uint16, error) {
	return tiebreakerSize, nil
}

// Encode appends the tiebreaker as big-endian uint64.
func (c ICEControlling) Encode(_ Void, b *Builder) error {
	var v [tiebreakerSize]byte
	bin.PutUint64(v[:], uint64(c))
	b.Raw = append(b.Raw, v[:]...)
	return nil
}

// Decode reads the tiebreaker value at s.
func (c *ICEControlling) Decode(_ Void, m *Message, s AttrSpan) error {
	v := s.Value(m.Raw)
	if err := CheckSize(AttrICEControlling, len(v), tiebreakerSize); err != nil {
		return err
	}
	*c = ICEControlling(bin.Uint64(v))
	return nil
}
