package stun

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
)

const (
	// magicCookie is fixed value that aids in distinguishing STUN packets
	// from packets of other protocols when STUN is multiplexed with those
	// other protocols on the same Port.
	//
	// The magic cookie field MUST contain the fixed value 0x2112A442 in
	// network byte order.
	//
	// Defined in "STUN Message Structure", section 5.
	magicCookie         = 0x2112A442
	attributeHeaderSize = 4
	messageHeaderSize   = 20

	// TransactionIDSize is length of transaction id array (in bytes).
	TransactionIDSize = 12 // 96 bit

	// maxMessageLength is the maximum value of the header length field.
	maxMessageLength = 1<<16 - 1
)

// NewTransactionID returns new random transaction ID using crypto/rand
// as source.
func NewTransactionID() (b [TransactionIDSize]byte) {
	_, err := rand.Read(b[:])
	if err != nil {
		panic(err) // nolint
	}
	return b
}

// IsMessage returns true if b looks like STUN message.
// Useful for multiplexing. IsMessage does not guarantee
// that decoding will be successful.
func IsMessage(b []byte) bool {
	return len(b) >= messageHeaderSize &&
		b[0]&0xC0 == 0 &&
		bin.Uint32(b[4:8]) == magicCookie
}

// MaxPacketSize is maximum size of UDP packet that is processable in
// this package for STUN message.
const MaxPacketSize = 2048

// AttrSpan locates one attribute inside Message.Raw.
//
// Begin is the offset of the 4-byte attribute header, ValueBegin and
// ValueEnd bound the value bytes, and PaddingEnd is ValueEnd rounded up
// to a 4-byte boundary. A span stays valid as long as the buffer it was
// decoded from is not modified.
type AttrSpan struct {
	Type       AttrType
	Begin      int
	ValueBegin int
	ValueEnd   int
	PaddingEnd int
}

// Value returns the value bytes of the attribute inside raw.
func (s AttrSpan) Value(raw []byte) []byte {
	return raw[s.ValueBegin:s.ValueEnd]
}

func (s AttrSpan) String() string {
	return fmt.Sprintf("%s l=%d", s.Type, s.ValueEnd-s.ValueBegin)
}

// Attributes is list of attribute spans recorded while decoding a message.
type Attributes []AttrSpan

// Get returns the first attribute of type t. If the attribute is present
// its span is returned and the boolean is true, otherwise the span is
// empty and the boolean is false.
func (a Attributes) Get(t AttrType) (AttrSpan, bool) {
	for _, candidate := range a {
		if candidate.Type == t {
			return candidate, true
		}
	}
	return AttrSpan{}, false
}

// Message represents a single STUN packet. Raw holds the encoded bytes
// and Attributes locate the decoded attribute values inside it, so a
// parsed Message aliases the buffer it was parsed from.
type Message struct {
	Type          MessageType
	Length        uint32 // len(Raw) not including header
	TransactionID [TransactionIDSize]byte
	Attributes    Attributes
	Raw           []byte
}

// Parse decodes raw into a new Message. The message aliases raw, which
// must not be modified while the message or its spans are in use.
func Parse(raw []byte) (*Message, error) {
	m := &Message{Raw: raw}
	if err := m.Decode(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m Message) String() string {
	return fmt.Sprintf("%s l=%d attrs=%d id=%s",
		m.Type,
		m.Length,
		len(m.Attributes),
		base64.StdEncoding.EncodeToString(m.TransactionID[:]),
	)
}

// Equal returns true if Message b equals to m.
// Ignores m.Raw beyond the decoded attribute values.
func (m *Message) Equal(b *Message) bool {
	if m.Type != b.Type {
		return false
	}
	if m.TransactionID != b.TransactionID {
		return false
	}
	if m.Length != b.Length {
		return false
	}
	for _, a := range m.Attributes {
		aB, ok := b.Attributes.Get(a.Type)
		if !ok {
			return false
		}
		if !bytes.Equal(aB.Value(b.Raw), a.Value(m.Raw)) {
			return false
		}
	}
	return true
}

const (
	// ErrUnexpectedHeaderEOF means that there were not enough bytes in
	// m.Raw to read header.
	ErrUnexpectedHeaderEOF Error = "unexpected EOF: not enough bytes to read header"
)

// Decode decodes m.Raw into m. The buffer is only read, never written:
// header fields are copied out and attributes are recorded as spans.
func (m *Message) Decode() error {
	buf := m.Raw
	if len(buf) < messageHeaderSize {
		return ErrUnexpectedHeaderEOF
	}
	var (
		t        = bin.Uint16(buf[0:2])      // first 2 bytes
		size     = int(bin.Uint16(buf[2:4])) // second 2 bytes
		cookie   = bin.Uint32(buf[4:8])
		fullSize = messageHeaderSize + size
	)
	if buf[0]&0xC0 != 0 {
		return newDecodeErr("message", "type",
			"first two bits of message type are not zeroes",
		)
	}
	if cookie != magicCookie {
		msg := fmt.Sprintf(
			"%x is invalid magic cookie (should be %x)",
			cookie, magicCookie,
		)
		return newDecodeErr("message", "cookie", msg)
	}
	if len(buf) < fullSize {
		msg := fmt.Sprintf(
			"buffer length %d is less than %d (expected message size)",
			len(buf), fullSize,
		)
		return newAttrDecodeErr("message", msg)
	}
	// saving header data
	m.Type.ReadValue(t)
	m.Length = uint32(size)
	copy(m.TransactionID[:], buf[8:messageHeaderSize])

	m.Attributes = m.Attributes[:0]
	offset := messageHeaderSize
	for offset < fullSize {
		// checking that we have enough bytes to read header
		if fullSize-offset < attributeHeaderSize {
			msg := fmt.Sprintf(
				"buffer length %d is less than %d (expected header size)",
				fullSize-offset, attributeHeaderSize,
			)
			return newAttrDecodeErr("header", msg)
		}
		s := AttrSpan{
			Type:       AttrType(bin.Uint16(buf[offset : offset+2])), // first 2 bytes
			Begin:      offset,
			ValueBegin: offset + attributeHeaderSize,
		}
		l := int(bin.Uint16(buf[offset+2 : offset+4])) // second 2 bytes
		s.ValueEnd = s.ValueBegin + l
		s.PaddingEnd = s.ValueBegin + nearestPaddedValueLength(l)
		if s.PaddingEnd > fullSize { // checking size
			msg := fmt.Sprintf(
				"buffer length %d is less than %d (expected value size)",
				fullSize-s.ValueBegin, nearestPaddedValueLength(l),
			)
			return newAttrDecodeErr("value", msg)
		}
		m.Attributes = append(m.Attributes, s)
		offset = s.PaddingEnd
	}
	return nil
}

// MessageClass is 8-bit representation of 2-bit class of STUN Message Class.
type MessageClass byte

// Possible values for message class in STUN Message Type.
const (
	ClassRequest         MessageClass = 0x00 // 0b00
	ClassIndication      MessageClass = 0x01 // 0b01
	ClassSuccessResponse MessageClass = 0x02 // 0b10
	ClassErrorResponse   MessageClass = 0x03 // 0b11
)

func (c MessageClass) String() string {
	switch c {
	case ClassRequest:
		return "request"
	case ClassIndication:
		return "indication"
	case ClassSuccessResponse:
		return "success response"
	case ClassErrorResponse:
		return "error response"
	default:
		panic("unknown message class") // nolint
	}
}

// Method is uint16 representation of 12-bit STUN method.
type Method uint16

// Possible methods for STUN Message.
const (
	MethodBinding          Method = 0x001
	MethodAllocate         Method = 0x003
	MethodRefresh          Method = 0x004
	MethodSend             Method = 0x006
	MethodData             Method = 0x007
	MethodCreatePermission Method = 0x008
	MethodChannelBind      Method = 0x009
)

func (m Method) String() string {
	switch m {
	case MethodBinding:
		return "binding"
	case MethodAllocate:
		return "allocate"
	case MethodRefresh:
		return "refresh"
	case MethodSend:
		return "send"
	case MethodData:
		return "data"
	case MethodCreatePermission:
		return "create permission"
	case MethodChannelBind:
		return "channel bind"
	default:
		return fmt.Sprintf("0x%s", strconv.FormatUint(uint64(m), 16))
	}
}

// MessageType is STUN Message Type Field.
type MessageType struct {
	Method Method
	Class  MessageClass
}

// Common STUN message types.
var (
	// BindingRequest is message type for binding request.
	BindingRequest = NewType(MethodBinding, ClassRequest)
	// BindingSuccess is message type for binding success response.
	BindingSuccess = NewType(MethodBinding, ClassSuccessResponse)
	// BindingError is message type for binding error response.
	BindingError = NewType(MethodBinding, ClassErrorResponse)
)

// NewType returns new message type with provided method and class.
func NewType(method Method, class MessageClass) MessageType {
	return MessageType{
		Method: method,
		Class:  class,
	}
}

const (
	methodABits = 0xf   // 0b0000000000001111
	methodBBits = 0x70  // 0b0000000001110000
	methodDBits = 0xf80 // 0b0000111110000000

	methodBShift = 1
	methodDShift = 2

	firstBit  = 0x1
	secondBit = 0x2

	c0Bit = firstBit
	c1Bit = secondBit

	classC0Shift = 4
	classC1Shift = 7
)

// Value returns bit representation of messageType.
func (t MessageType) Value() uint16 {
	//	 0                 1
	//	 2  3  4 5 6 7 8 9 0 1 2 3 4 5
	//	+--+--+-+-+-+-+-+-+-+-+-+-+-+-+
	//	|M |M |M|M|M|C|M|M|M|C|M|M|M|M|
	//	|11|10|9|8|7|1|6|5|4|0|3|2|1|0|
	//	+--+--+-+-+-+-+-+-+-+-+-+-+-+-+
	// Figure 3: Format of STUN Message Type Field

	// Warning: Abandon all hope ye who enter here.
	// Splitting M into A(M0-M3), B(M4-M6), D(M7-M11).
	m := uint16(t.Method)
	a := m & methodABits // A = M * 0b0000000000001111 (right 4 bits)
	b := m & methodBBits // B = M * 0b0000000001110000 (3 bits after A)
	d := m & methodDBits // D = M * 0b0000111110000000 (5 bits after B)

	// Shifting to add "holes" for C0 (at 4 bit) and C1 (8 bit).
	m = a + (b << methodBShift) + (d << methodDShift)

	// C0 is zero bit of C, C1 is first bit.
	// C0 = C * 0b01, C1 = (C * 0b10) >> 1
	// Ct = C0 << 4 + C1 << 8.
	// Optimizations: "((C * 0b10) >> 1) << 8" as "(C * 0b10) << 7"
	// We need C0 shifted by 4, and C1 by 8 to fit "11" and "7" positions
	// (see figure 3).
	c := uint16(t.Class)
	c0 := (c & c0Bit) << classC0Shift
	c1 := (c & c1Bit) << classC1Shift
	class := c0 + c1

	return m + class
}

// ReadValue decodes uint16 into MessageType.
func (t *MessageType) ReadValue(v uint16) {
	// Decoding class.
	// We are taking first bit from v >> 4 and second from v >> 7.
	c0 := (v >> classC0Shift) & c0Bit
	c1 := (v >> classC1Shift) & c1Bit
	class := c0 + c1
	t.Class = MessageClass(class)

	// Decoding method.
	a := v & methodABits                   // A(M0-M3)
	b := (v >> methodBShift) & methodBBits // B(M4-M6)
	d := (v >> methodDShift) & methodDBits // D(M7-M11)
	m := a + b + d
	t.Method = Method(m)
}

func (t MessageType) String() string {
	return fmt.Sprintf("%s %s", t.Method, t.Class)
}
