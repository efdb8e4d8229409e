package stun

import (
	"github.com/pkg/errors"

	"github.com/jason-shen/ezk/stun/internal/hmac"
)

// CheckSize returns ErrAttributeSizeInvalid if got is not equal to expected.
func CheckSize(t AttrType, got, expected int) error {
	if got == expected {
		return nil
	}
	return errors.Wrapf(ErrAttributeSizeInvalid,
		"%s: got %d, expected %d", t, got, expected,
	)
}

// CheckOverflow returns ErrAttributeSizeOverflow if got is bigger than max.
func CheckOverflow(t AttrType, got, max int) error {
	if got <= max {
		return nil
	}
	return errors.Wrapf(ErrAttributeSizeOverflow,
		"%s: got %d, max %d", t, got, max,
	)
}

func checkHMAC(got, expected []byte) error {
	if hmac.Equal(got, expected) {
		return nil
	}
	return ErrIntegrityMismatch
}
