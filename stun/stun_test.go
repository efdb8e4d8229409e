package stun

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type errorWriter struct{}

var errWriter = errors.New("failed to write")

func (errorWriter) Write([]byte) (int, error) {
	return 0, errWriter
}

func TestWriteOrPanic(t *testing.T) {
	defer func() {
		assert.Equal(t, errWriter, recover(), "writeOrPanic should panic with write error")
	}()
	writeOrPanic(errorWriter{}, []byte{1, 2, 3})
}

func TestNearestPaddedValueLength(t *testing.T) {
	tests := []struct {
		in  int
		out int
	}{
		{0, 0},
		{1, 4},
		{2, 4},
		{3, 4},
		{4, 4},
		{5, 8},
		{20, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, nearestPaddedValueLength(tt.in), "padding of %d", tt.in)
	}
}
