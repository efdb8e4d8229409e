package stun

const (
	maxUsernameB = 513
	maxRealmB    = 763
	maxSoftwareB = 763
	maxNonceB    = 763
)

func textEncodeLen(t AttrType, v []byte, maxLen int) (uint16, error) {
	if err := CheckOverflow(t, len(v), maxLen); err != nil {
		return 0, err
	}
	return uint16(len(v)), nil // nolint:gosec // G115, bounded by maxLen
}

// Username represents USERNAME attribute.
//
// RFC 8489 Section 14.3.
type Username []byte

// NewUsername returns Username with provided value.
func NewUsername(username string) *Username {
	u := Username(username)
	return &u
}

func (u Username) String() string {
	return string(u)
}

// Type returns AttrUsername.
func (Username) Type() AttrType {
	return AttrUsername
}

// EncodeLen returns the username length, which must not exceed 513 bytes.
func (u Username) EncodeLen() (uint16, error) {
	return textEncodeLen(AttrUsername, u, maxUsernameB)
}

// Encode appends the username bytes.
func (u Username) Encode(_ Void, b *Builder) error {
	b.Raw = append(b.Raw, u...)
	return nil
}

// Decode points u at the value bytes inside m.Raw.
func (u *Username) Decode(_ Void, m *Message, s AttrSpan) error {
	*u = Username(s.Value(m.Raw))
	return nil
}

// Realm represents REALM attribute.
//
// RFC 8489 Section 14.9.
type Realm []byte

// NewRealm returns Realm with provided value.
func NewRealm(realm string) *Realm {
	r := Realm(realm)
	return &r
}

func (r Realm) String() string {
	return string(r)
}

// Type returns AttrRealm.
func (Realm) Type() AttrType {
	return AttrRealm
}

// EncodeLen returns the realm length, which must not exceed 763 bytes.
func (r Realm) EncodeLen() (uint16, error) {
	return textEncodeLen(AttrRealm, r, maxRealmB)
}

// Encode appends the realm bytes.
func (r Realm) Encode(_ Void, b *Builder) error {
	b.Raw = append(b.Raw, r...)
	return nil
}

// Decode points r at the value bytes inside m.Raw.
func (r *Realm) Decode(_ Void, m *Message, s AttrSpan) error {
	*r = Realm(s.Value(m.Raw))
	return nil
}

// Nonce represents NONCE attribute.
//
// RFC 8489 Section 14.10.
type Nonce []byte

// NewNonce returns new Nonce from string.
func NewNonce(nonce string) *Nonce {
	n := Nonce(nonce)
	return &n
}

func (n Nonce) String() string {
	return string(n)
}

// Type returns AttrNonce.
func (Nonce) Type() AttrType {
	return AttrNonce
}

// EncodeLen returns the nonce length, which must not exceed 763 bytes.
func (n Nonce) EncodeLen() (uint16, error) {
	return textEncodeLen(AttrNonce, n, maxNonceB)
}

// Encode appends the nonce bytes.
func (n Nonce) Encode(_ Void, b *Builder) error {
	b.Raw = append(b.Raw, n...)
	return nil
}

// Decode points n at the value bytes inside m.Raw.
func (n *Nonce) Decode(_ Void, m *Message, s AttrSpan) error {
	*n = Nonce(s.Value(m.Raw))
	return nil
}

// Software is SOFTWARE attribute.
//
// RFC 8489 Section 14.14.
type Software []byte

// NewSoftware returns *Software from string.
func NewSoftware(software string) *Software {
	s := Software(software)
	return &s
}

func (s Software) String() string {
	return string(s)
}

// Type returns AttrSoftware.
func (Software) Type() AttrType {
	return AttrSoftware
}

// EncodeLen returns the software length, which must not exceed 763 bytes.
func (s Software) EncodeLen() (uint16, error) {
	return textEncodeLen(AttrSoftware, s, maxSoftwareB)
}

// Encode appends the software bytes.
func (s Software) Encode(_ Void, b *Builder) error {
	b.Raw = append(b.Raw, s...)
	return nil
}

// Decode points s at the value bytes inside m.Raw.
func (s *Software) Decode(_ Void, m *Message, sp AttrSpan) error {
	*s = Software(sp.Value(m.Raw))
	return nil
}
