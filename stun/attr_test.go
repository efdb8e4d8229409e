package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrType_String(t *testing.T) {
	tests := []struct {
		in  AttrType
		out string
	}{
		{AttrMappedAddress, "MAPPED-ADDRESS"},
		{AttrUsername, "USERNAME"},
		{AttrErrorCode, "ERROR-CODE"},
		{AttrMessageIntegrity, "MESSAGE-INTEGRITY"},
		{AttrMessageIntegritySHA256, "MESSAGE-INTEGRITY-SHA256"},
		{AttrUserhash, "USERHASH"},
		{AttrUnknownAttributes, "UNKNOWN-ATTRIBUTES"},
		{AttrXORMappedAddress, "XOR-MAPPED-ADDRESS"},
		{AttrSoftware, "SOFTWARE"},
		{AttrFingerprint, "FINGERPRINT"},
		{AttrPriority, "PRIORITY"},
		{AttrICEControlling, "ICE-CONTROLLING"},
		{AttrType(0x4567), "0x4567"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, tt.in.String())
	}
}

func TestAttrType_Range(t *testing.T) {
	assert.True(t, AttrUsername.Required())
	assert.False(t, AttrUsername.Optional())
	assert.True(t, AttrSoftware.Optional())
	assert.False(t, AttrSoftware.Required())
	assert.True(t, AttrType(0x7FFF).Required(), "0x7FFF is the last required type")
	assert.True(t, AttrType(0x8000).Optional(), "0x8000 is the first optional type")
}

func TestGetWith_NotFound(t *testing.T) {
	b := NewBuilder(BindingRequest, NewTransactionID())
	m, err := Parse(b.Finish())
	require.NoError(t, err)

	software := new(Software)
	err = m.Get(software)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAttributeNotFound)
	assert.Contains(t, err.Error(), "SOFTWARE", "error should name the missing attribute")
}

func TestMessage_Get_StopsAtFirstError(t *testing.T) {
	b := NewBuilder(BindingRequest, NewTransactionID())
	require.NoError(t, b.Add(NewRealm("has realm")))
	m, err := Parse(b.Finish())
	require.NoError(t, err)

	var (
		software Software
		realm    Realm
	)
	err = m.Get(&software, &realm)
	assert.ErrorIs(t, err, ErrAttributeNotFound)
	assert.Empty(t, realm, "attributes after the failed one are left untouched")
}

func TestMessage_UnknownAttributePreserved(t *testing.T) {
	b := NewBuilder(BindingRequest, NewTransactionID())
	require.NoError(t, b.Add(opaqueAttr{}))
	m, err := Parse(b.Finish())
	require.NoError(t, err)
	require.Len(t, m.Attributes, 1)
	s := m.Attributes[0]
	assert.Equal(t, AttrType(0x7f03), s.Type)
	assert.Equal(t, []byte{0xde, 0xad}, s.Value(m.Raw),
		"unknown attributes stay addressable as raw spans",
	)
}

// opaqueAttr is an attribute type this package knows nothing about.
type opaqueAttr struct{}

func (opaqueAttr) Type() AttrType { return AttrType(0x7f03) }

func (opaqueAttr) EncodeLen() (uint16, error) { return 2, nil }

func (opaqueAttr) Encode(_ Void, b *Builder) error {
	b.Raw = append(b.Raw, 0xde, 0xad)
	return nil
}

func (opaqueAttr) Decode(_ Void, _ *Message, _ AttrSpan) error { return nil }

func TestMessage_GetDuplicate(t *testing.T) {
	b := NewBuilder(BindingRequest, NewTransactionID())
	require.NoError(t, b.Add(NewSoftware("first"), NewSoftware("second")))
	m, err := Parse(b.Finish())
	require.NoError(t, err)
	require.Len(t, m.Attributes, 2, "duplicates keep their spans")

	software := new(Software)
	require.NoError(t, m.Get(software))
	assert.Equal(t, "first", software.String(), "decoding picks the first occurrence")
}
