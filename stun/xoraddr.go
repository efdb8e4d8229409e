package stun

import (
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/pion/transport/v3/utils/xor"
)

// XORMappedAddress implements XOR-MAPPED-ADDRESS attribute.
//
// RFC 8489 Section 14.2.
type XORMappedAddress struct {
	IP   net.IP
	Port int
}

func (a XORMappedAddress) String() string {
	return net.JoinHostPort(a.IP.String(), strconv.Itoa(a.Port))
}

// isIPv4 returns true if ip with len of net.IPv6Len seems to be ipv4.
func isIPv4(ip net.IP) bool {
	// Optimized for performance. Copied from net.IP.To4.
	return isZeros(ip[0:10]) && ip[10] == 0xff && ip[11] == 0xff
}

// Is p all zeros?
func isZeros(p net.IP) bool {
	for i := 0; i < len(p); i++ {
		if p[i] != 0 {
			return false
		}
	}

	return true
}

// Type returns AttrXORMappedAddress.
func (*XORMappedAddress) Type() AttrType {
	return AttrXORMappedAddress
}

// EncodeLen returns the encoded address size.
func (a *XORMappedAddress) EncodeLen() (uint16, error) {
	return addrEncodeLen(a.IP)
}

// Encode appends family, the port XOR-ed with the top half of the magic
// cookie, and the address XOR-ed with the concatenation of the cookie
// and the transaction id, both taken from the encoded header in b.
func (a *XORMappedAddress) Encode(_ Void, b *Builder) error {
	var (
		family = familyIPv4
		ip     = a.IP
	)
	if len(a.IP) == net.IPv6len {
		if isIPv4(ip) {
			ip = ip[12:16] // like in ip.To4()
		} else {
			family = familyIPv6
		}
	} else if len(ip) != net.IPv4len {
		return ErrBadIPLength
	}
	first := len(b.Raw)
	b.Raw = append(b.Raw, make([]byte, 4+len(ip))...)
	value := b.Raw[first:]
	value[0] = 0 // first 8 bits are zeroes
	bin.PutUint16(value[0:2], family)
	bin.PutUint16(value[2:4], uint16(a.Port^magicCookie>>16)) // nolint:gosec // G115, port
	xor.XorBytes(value[4:], ip, b.Raw[4:messageHeaderSize])
	return nil
}

// Decode reads the XOR-ed address value at s and un-XORs it using the
// cookie and transaction id from m.Raw. While decoding, a.IP is reused
// if possible and can be rendered to invalid state (e.g. if a.IP was
// set to IPv6 and then IPv4 value were decoded into it), be careful.
func (a *XORMappedAddress) Decode(_ Void, m *Message, s AttrSpan) error {
	value := s.Value(m.Raw)
	if len(value) <= 4 {
		return io.ErrUnexpectedEOF
	}
	family := bin.Uint16(value[0:2])
	if family != familyIPv6 && family != familyIPv4 {
		return newDecodeErr("xor-mapped address", "family",
			fmt.Sprintf("bad value %d", family),
		)
	}
	ipLen := net.IPv4len
	if family == familyIPv6 {
		ipLen = net.IPv6len
	}
	if err := CheckSize(AttrXORMappedAddress, len(value[4:]), ipLen); err != nil {
		return err
	}
	// Ensuring len(a.IP) == ipLen and reusing a.IP.
	if len(a.IP) < ipLen {
		a.IP = make(net.IP, ipLen)
	} else {
		a.IP = a.IP[:ipLen]
		for i := range a.IP {
			a.IP[i] = 0
		}
	}
	a.Port = int(bin.Uint16(value[2:4])) ^ (magicCookie >> 16)
	xor.XorBytes(a.IP, value[4:], m.Raw[4:messageHeaderSize])
	return nil
}
