package stun

import (
	"fmt"
	"io"
)

// ErrorCodeAttribute represents ERROR-CODE attribute.
//
// A nil Reason is replaced by the default reason phrase for Code at
// encode time; codes without a default produce ErrNoDefaultReason.
//
// RFC 8489 Section 14.8.
type ErrorCodeAttribute struct {
	Code   ErrorCode
	Reason []byte
}

func (c ErrorCodeAttribute) String() string {
	return fmt.Sprintf("%d: %s", c.Code, c.Reason)
}

const (
	errorCodeReasonStart = 4
	errorCodeReasonMaxB  = 763
	errorCodeModulo      = 100
)

// Type returns AttrErrorCode.
func (*ErrorCodeAttribute) Type() AttrType {
	return AttrErrorCode
}

// EncodeLen returns the encoded size and fills in the default reason
// phrase when none is set.
func (c *ErrorCodeAttribute) EncodeLen() (uint16, error) {
	if c.Reason == nil {
		reason, ok := errorReasons[c.Code]
		if !ok {
			return 0, ErrNoDefaultReason
		}
		c.Reason = reason
	}
	if err := CheckOverflow(AttrErrorCode,
		len(c.Reason)+errorCodeReasonStart,
		errorCodeReasonMaxB+errorCodeReasonStart,
	); err != nil {
		return 0, err
	}
	return uint16(errorCodeReasonStart + len(c.Reason)), nil // nolint:gosec // G115, bounded
}

// Encode appends two reserved zero bytes, the class, the number, and
// the reason phrase.
func (c *ErrorCodeAttribute) Encode(_ Void, b *Builder) error {
	number := byte(c.Code % errorCodeModulo) // error code modulo 100
	class := byte(c.Code / errorCodeModulo)  // hundred digit
	first := len(b.Raw)
	b.Raw = append(b.Raw, 0, 0, 0, 0)
	b.Raw[first+2] = class
	b.Raw[first+3] = number
	b.Raw = append(b.Raw, c.Reason...)
	return nil
}

// Decode reads the code and points Reason at the phrase bytes inside
// m.Raw.
func (c *ErrorCodeAttribute) Decode(_ Void, m *Message, s AttrSpan) error {
	v := s.Value(m.Raw)
	if len(v) < errorCodeReasonStart {
		return io.ErrUnexpectedEOF
	}
	var (
		class  = uint16(v[2])
		number = uint16(v[3])
		code   = int(class*errorCodeModulo + number)
	)
	c.Code = ErrorCode(code)
	c.Reason = v[errorCodeReasonStart:]
	return nil
}

// ErrorCode is code for ERROR-CODE attribute.
type ErrorCode int

// ErrNoDefaultReason means that default reason for provided error code
// is not defined in RFC 8489.
const ErrNoDefaultReason Error = "no default reason for ErrorCode"

// Possible error codes.
const (
	CodeTryAlternate     ErrorCode = 300
	CodeBadRequest       ErrorCode = 400
	CodeUnauthorized     ErrorCode = 401
	CodeUnknownAttribute ErrorCode = 420
	CodeStaleNonce       ErrorCode = 438
	CodeRoleConflict     ErrorCode = 487
	CodeServerError      ErrorCode = 500
)

// Error codes from RFC 5766.
//
// RFC 5766 Section 15.
const (
	CodeForbidden             ErrorCode = 403 // Forbidden
	CodeAllocMismatch         ErrorCode = 437 // Allocation Mismatch
	CodeWrongCredentials      ErrorCode = 441 // Wrong Credentials
	CodeUnsupportedTransProto ErrorCode = 442 // Unsupported Transport Protocol
	CodeAllocQuotaReached     ErrorCode = 486 // Allocation Quota Reached
	CodeInsufficientCapacity  ErrorCode = 508 // Insufficient Capacity
)

var errorReasons = map[ErrorCode][]byte{
	CodeTryAlternate:     []byte("Try Alternate"),
	CodeBadRequest:       []byte("Bad Request"),
	CodeUnauthorized:     []byte("Unauthorized"),
	CodeUnknownAttribute: []byte("Unknown Attribute"),
	CodeStaleNonce:       []byte("Stale Nonce"),
	CodeServerError:      []byte("Server Error"),
	CodeRoleConflict:     []byte("Role Conflict"),

	CodeForbidden:             []byte("Forbidden"),
	CodeAllocMismatch:         []byte("Allocation Mismatch"),
	CodeWrongCredentials:      []byte("Wrong Credentials"),
	CodeUnsupportedTransProto: []byte("Unsupported Transport Protocol"),
	CodeAllocQuotaReached:     []byte("Allocation Quota Reached"),
	CodeInsufficientCapacity:  []byte("Insufficient Capacity"),
}
