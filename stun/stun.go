// Package stun implements encoding and decoding of STUN messages as
// defined in Session Traversal Utilities for NAT (STUN) RFC 8489.
//
// The package covers the wire format only: message header, attribute
// framing, the authentication and integrity attributes (FINGERPRINT,
// MESSAGE-INTEGRITY, MESSAGE-INTEGRITY-SHA256) with their key
// derivation rules, and the common attribute set. Transports, client
// and server transactions are out of scope and live in higher layers.
//
// Messages are built by appending attributes to a Builder and parsed
// into spans over the received buffer:
//
//	b := NewBuilder(BindingRequest, NewTransactionID())
//	b.Add(NewSoftware("ezk"))
//	AddWith(b, MessageIntegrity{}, NewShortTermKey("secret"))
//	b.Add(Fingerprint)
//	packet := b.Finish()
//
//	m, err := Parse(packet)
//	if err != nil {
//		// handle error
//	}
//	err = GetWith(m, MessageIntegrity{}, NewShortTermKey("secret"))
package stun

import (
	"encoding/binary"
	"io"
)

// bin is shorthand to binary.BigEndian.
var bin = binary.BigEndian

// DefaultPort is IANA assigned Port for "stun" protocol.
const DefaultPort = 3478

func writeOrPanic(w io.Writer, b []byte) {
	if _, err := w.Write(b); err != nil {
		panic(err) // nolint
	}
}
