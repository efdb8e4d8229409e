package stun

import (
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXORMappedAddress_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ip   net.IP
		port int
	}{
		{"IPv4", net.IPv4(192, 0, 2, 1).To4(), 32853},
		{"IPv4in16", net.ParseIP("192.0.2.1"), 32853},
		{"IPv6", net.ParseIP("2001:db8:1234:5678:11:2233:4455:6677"), 32853},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(BindingSuccess, NewTransactionID())
			require.NoError(t, b.Add(&XORMappedAddress{IP: tt.ip, Port: tt.port}))
			m, err := Parse(b.Finish())
			require.NoError(t, err)

			got := new(XORMappedAddress)
			require.NoError(t, m.Get(got))
			assert.True(t, got.IP.Equal(tt.ip), "got %s, want %s", got.IP, tt.ip)
			assert.Equal(t, tt.port, got.Port)
		})
	}
}

func TestXORMappedAddress_ValueIsXored(t *testing.T) {
	ip := net.IPv4(192, 0, 2, 1).To4()
	b := NewBuilder(BindingSuccess, NewTransactionID())
	require.NoError(t, b.Add(&XORMappedAddress{IP: ip, Port: 32853}))
	raw := b.Finish()

	value := raw[messageHeaderSize+attributeHeaderSize:]
	assert.Equal(t, uint16(32853^magicCookie>>16), bin.Uint16(value[2:4]))
	for i, addrByte := range value[4:8] {
		assert.Equal(t, ip[i]^raw[4+i], addrByte, "address byte %d must be XOR-ed with the cookie", i)
	}
}

func TestXORMappedAddress_DecodeReuse(t *testing.T) {
	build := func(ip net.IP, port int) *Message {
		b := NewBuilder(BindingSuccess, NewTransactionID())
		require.NoError(t, b.Add(&XORMappedAddress{IP: ip, Port: port}))
		m, err := Parse(b.Finish())
		require.NoError(t, err)
		return m
	}
	ip6 := net.ParseIP("2001:db8::1")
	ip4 := net.IPv4(10, 0, 0, 7).To4()

	got := new(XORMappedAddress)
	require.NoError(t, build(ip6, 1).Get(got))
	assert.True(t, got.IP.Equal(ip6))

	require.NoError(t, build(ip4, 2).Get(got))
	assert.True(t, got.IP.Equal(ip4), "IP slice reuse must not leak previous bytes")
	assert.Len(t, got.IP, net.IPv4len)
}

func TestXORMappedAddress_BadIPLength(t *testing.T) {
	b := NewBuilder(BindingSuccess, NewTransactionID())
	err := b.Add(&XORMappedAddress{IP: net.IP{1, 2, 3, 4, 5}})
	assert.ErrorIs(t, err, ErrBadIPLength)
}

func TestXORMappedAddress_DecodeErrors(t *testing.T) {
	craft := func(value []byte) *Message {
		b := NewBuilder(BindingSuccess, NewTransactionID())
		b.Raw = append(b.Raw, 0x00, 0x20, 0x00, byte(len(value)))
		b.Raw = append(b.Raw, value...)
		b.SetLength(uint16(attributeHeaderSize + len(value)))
		m, err := Parse(b.Finish())
		require.NoError(t, err)
		return m
	}
	t.Run("ShortValue", func(t *testing.T) {
		m := craft([]byte{0, 1, 2, 3})
		err := m.Get(new(XORMappedAddress))
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
	t.Run("BadFamily", func(t *testing.T) {
		m := craft([]byte{0, 3, 0, 0, 1, 2, 3, 4})
		err := m.Get(new(XORMappedAddress))
		dErr, ok := err.(DecodeErr)
		require.True(t, ok)
		assert.True(t, dErr.IsPlace(DecodeErrPlace{Parent: "xor-mapped address", Children: "family"}))
	})
	t.Run("SizeMismatch", func(t *testing.T) {
		v := append([]byte{0, 2, 0, 0}, make([]byte, net.IPv4len)...)
		m := craft(v) // IPv6 family with 4 address bytes
		err := m.Get(new(XORMappedAddress))
		assert.ErrorIs(t, err, ErrAttributeSizeInvalid)
	})
}

func TestXORMappedAddress_String(t *testing.T) {
	a := XORMappedAddress{IP: net.IPv4(192, 0, 2, 1), Port: 32853}
	assert.Equal(t, "192.0.2.1:32853", a.String())
}

func BenchmarkXORMappedAddress_Encode(b *testing.B) {
	bld := NewBuilder(BindingSuccess, NewTransactionID())
	addr := &XORMappedAddress{IP: net.IPv4(122, 12, 14, 43).To4(), Port: 5412}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := bld.Add(addr); err != nil {
			b.Fatal(err)
		}
		bld.Raw = bld.Raw[:messageHeaderSize]
		bld.SetLength(0)
	}
}

func BenchmarkXORMappedAddress_Decode(b *testing.B) {
	bld := NewBuilder(BindingSuccess, NewTransactionID())
	if err := bld.Add(&XORMappedAddress{IP: net.IPv4(122, 12, 14, 43).To4(), Port: 5412}); err != nil {
		b.Fatal(err)
	}
	m, err := Parse(bld.Finish())
	if err != nil {
		b.Fatal(err)
	}
	addr := new(XORMappedAddress)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := m.Get(addr); err != nil {
			b.Fatal(err)
		}
	}
}
