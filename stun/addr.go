package stun

import (
	"fmt"
	"io"
	"net"
	"strconv"
)

const (
	familyIPv4 uint16 = 0x01
	familyIPv6 uint16 = 0x02
)

// ErrBadIPLength means that len(IP) is not net.{IPv6len,IPv4len}.
const ErrBadIPLength Error = "invalid length of IP value"

// MappedAddress represents MAPPED-ADDRESS attribute.
//
// This attribute is used only by servers for achieving backwards
// compatibility with RFC 3489 clients.
//
// RFC 8489 Section 14.1.
type MappedAddress struct {
	IP   net.IP
	Port int
}

func (a MappedAddress) String() string {
	return net.JoinHostPort(a.IP.String(), strconv.Itoa(a.Port))
}

// Type returns AttrMappedAddress.
func (*MappedAddress) Type() AttrType {
	return AttrMappedAddress
}

// EncodeLen returns the encoded address size.
func (a *MappedAddress) EncodeLen() (uint16, error) {
	return addrEncodeLen(a.IP)
}

// Encode appends family, port, and the raw address.
func (a *MappedAddress) Encode(_ Void, b *Builder) error {
	return addrEncode(b, a.IP, a.Port)
}

// Decode reads the address value at s.
func (a *MappedAddress) Decode(_ Void, m *Message, s AttrSpan) error {
	return addrDecode(AttrMappedAddress, m, s, &a.IP, &a.Port)
}

// AlternateServer represents ALTERNATE-SERVER attribute.
//
// RFC 8489 Section 14.15.
type AlternateServer struct {
	IP   net.IP
	Port int
}

// Type returns AttrAlternateServer.
func (*AlternateServer) Type() AttrType {
	return AttrAlternateServer
}

// EncodeLen returns the encoded address size.
func (a *AlternateServer) EncodeLen() (uint16, error) {
	return addrEncodeLen(a.IP)
}

// Encode appends family, port, and the raw address.
func (a *AlternateServer) Encode(_ Void, b *Builder) error {
	return addrEncode(b, a.IP, a.Port)
}

// Decode reads the address value at s.
func (a *AlternateServer) Decode(_ Void, m *Message, s AttrSpan) error {
	return addrDecode(AttrAlternateServer, m, s, &a.IP, &a.Port)
}

// OtherAddress represents OTHER-ADDRESS attribute.
//
// RFC 5780 Section 7.4.
type OtherAddress struct {
	IP   net.IP
	Port int
}

// Type returns AttrOtherAddress.
func (*OtherAddress) Type() AttrType {
	return AttrOtherAddress
}

// EncodeLen returns the encoded address size.
func (a *OtherAddress) EncodeLen() (uint16, error) {
	return addrEncodeLen(a.IP)
}

// Encode appends family, port, and the raw address.
func (a *OtherAddress) Encode(_ Void, b *Builder) error {
	return addrEncode(b, a.IP, a.Port)
}

// Decode reads the address value at s.
func (a *OtherAddress) Decode(_ Void, m *Message, s AttrSpan) error {
	return addrDecode(AttrOtherAddress, m, s, &a.IP, &a.Port)
}

// ResponseOrigin represents RESPONSE-ORIGIN attribute.
//
// RFC 5780 Section 7.3.
type ResponseOrigin struct {
	IP   net.IP
	Port int
}

// Type returns AttrResponseOrigin.
func (*ResponseOrigin) Type() AttrType {
	return AttrResponseOrigin
}

// EncodeLen returns the encoded address size.
func (a *ResponseOrigin) EncodeLen() (uint16, error) {
	return addrEncodeLen(a.IP)
}

// Encode appends family, port, and the raw address.
func (a *ResponseOrigin) Encode(_ Void, b *Builder) error {
	return addrEncode(b, a.IP, a.Port)
}

// Decode reads the address value at s.
func (a *ResponseOrigin) Decode(_ Void, m *Message, s AttrSpan) error {
	return addrDecode(AttrResponseOrigin, m, s, &a.IP, &a.Port)
}

func addrEncodeLen(ip net.IP) (uint16, error) {
	// 2 bytes of zeroes and family, 2 bytes of port, then the address.
	if len(ip) == net.IPv6len {
		if ip.To4() != nil {
			return 4 + net.IPv4len, nil
		}
		return 4 + net.IPv6len, nil
	}
	if len(ip) != net.IPv4len {
		return 0, ErrBadIPLength
	}
	return 4 + net.IPv4len, nil
}

func addrEncode(b *Builder, ip net.IP, port int) error {
	family := familyIPv4
	if len(ip) == net.IPv6len {
		if ip4 := ip.To4(); ip4 != nil {
			ip = ip4
		} else {
			family = familyIPv6
		}
	} else if len(ip) != net.IPv4len {
		return ErrBadIPLength
	}
	first := len(b.Raw)
	b.Raw = append(b.Raw, 0, 0, 0, 0) // first 8 bits are zeroes
	bin.PutUint16(b.Raw[first:first+2], family)
	bin.PutUint16(b.Raw[first+2:first+4], uint16(port)) // nolint:gosec // G115, port
	b.Raw = append(b.Raw, ip...)
	return nil
}

func addrDecode(t AttrType, m *Message, s AttrSpan, ip *net.IP, port *int) error {
	v := s.Value(m.Raw)
	if len(v) <= 4 {
		return io.ErrUnexpectedEOF
	}
	family := bin.Uint16(v[0:2])
	if family != familyIPv6 && family != familyIPv4 {
		return newDecodeErr("address", "family",
			fmt.Sprintf("bad value %d", family),
		)
	}
	ipLen := net.IPv4len
	if family == familyIPv6 {
		ipLen = net.IPv6len
	}
	if err := CheckSize(t, len(v[4:]), ipLen); err != nil {
		return err
	}
	*port = int(bin.Uint16(v[2:4]))
	*ip = append((*ip)[:0], v[4:]...)
	return nil
}
