package stun

import (
	"github.com/pkg/errors"
)

// Builder assembles a STUN message by appending encoded attributes to a
// growing buffer. The zero value is not usable, use NewBuilder.
type Builder struct {
	Raw []byte
}

const defaultRawCapacity = 120

// NewBuilder returns a Builder with the 20-byte message header for t and
// id already encoded. The header length field starts at zero and AddWith
// keeps it covering the last appended attribute, so FINGERPRINT and the
// integrity attributes always hash a message whose declared length ends
// at their own padded end.
func NewBuilder(t MessageType, id [TransactionIDSize]byte) *Builder {
	b := &Builder{
		Raw: make([]byte, messageHeaderSize, defaultRawCapacity),
	}
	bin.PutUint16(b.Raw[0:2], t.Value())
	bin.PutUint32(b.Raw[4:8], magicCookie)
	copy(b.Raw[8:messageHeaderSize], id[:])
	return b
}

// TransactionID returns the transaction id from the encoded header.
func (b *Builder) TransactionID() (id [TransactionIDSize]byte) {
	copy(id[:], b.Raw[8:messageHeaderSize])
	return id
}

// SetLength writes v to the length field of the encoded header.
func (b *Builder) SetLength(v uint16) {
	bin.PutUint16(b.Raw[2:4], v)
}

// Finish returns the encoded message bytes.
func (b *Builder) Finish() []byte {
	return b.Raw
}

// Add encodes attributes and appends them to b, stopping at the first
// error. Shorthand for AddWith with Void context.
func (b *Builder) Add(attrs ...Attribute[Void]) error {
	for _, a := range attrs {
		if err := AddWith(b, a, Void{}); err != nil {
			return err
		}
	}
	return nil
}

// AddWith encodes attr with ctx and appends it to b as a TLV: the header
// length field is rewritten to include the new attribute, the 4-byte
// attribute header is appended, attr.Encode fills in the value and the
// result is zero padded to a 4-byte boundary. On error the buffer is
// restored, so a failed attribute leaves no partial bytes behind.
func AddWith[C any](b *Builder, attr Attribute[C], ctx C) error {
	n, err := attr.EncodeLen()
	if err != nil {
		return err
	}
	paddedLen := nearestPaddedValueLength(int(n))
	newLen := len(b.Raw) - messageHeaderSize + attributeHeaderSize + paddedLen
	if newLen > maxMessageLength {
		return errors.Wrap(ErrMessageSizeOverflow, attr.Type().String())
	}
	prevLen := bin.Uint16(b.Raw[2:4])
	b.SetLength(uint16(newLen))

	first := len(b.Raw)
	b.Raw = append(b.Raw, 0, 0, 0, 0)
	bin.PutUint16(b.Raw[first:first+2], attr.Type().Value()) // T
	bin.PutUint16(b.Raw[first+2:first+4], n)                 // L
	if err := attr.Encode(ctx, b); err != nil {              // V
		b.Raw = b.Raw[:first]
		b.SetLength(prevLen)
		return err
	}
	if wrote := len(b.Raw) - first - attributeHeaderSize; wrote != int(n) {
		b.Raw = b.Raw[:first]
		b.SetLength(prevLen)
		return errors.Wrapf(ErrAttributeSizeInvalid,
			"%s: encoded %d bytes, declared %d", attr.Type(), wrote, n,
		)
	}
	for i := int(n); i < paddedLen; i++ {
		b.Raw = append(b.Raw, 0)
	}
	return nil
}
