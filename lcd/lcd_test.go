package lcd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBus acks only the configured addresses and records which addresses
// were written to.
type fakeBus struct {
	present map[uint16]bool
	written []uint16
}

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	if !f.present[addr] {
		return errors.New("i2c: no ack")
	}
	if len(w) > 0 {
		f.written = append(f.written, addr)
	}
	return nil
}

func TestProbe_FirstAddress(t *testing.T) {
	bus := &fakeBus{present: map[uint16]bool{0x27: true, 0x3F: true}}
	s, err := Probe(bus)
	require.NoError(t, err)
	require.NotNil(t, s)
	for _, addr := range bus.written {
		assert.Equal(t, uint16(0x27), addr)
	}
}

func TestProbe_FallbackAddress(t *testing.T) {
	bus := &fakeBus{present: map[uint16]bool{0x3F: true}}
	s, err := Probe(bus)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.NotEmpty(t, bus.written, "configure should have written to the device")
	for _, addr := range bus.written {
		assert.Equal(t, uint16(0x3F), addr)
	}
}

func TestProbe_NotFound(t *testing.T) {
	bus := &fakeBus{present: map[uint16]bool{}}
	s, err := Probe(bus)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short", "hello", "hello"},
		{"exact", "0123456789abcdef", "0123456789abcdef"},
		{"long", "0123456789abcdefXYZ", "0123456789abcdef"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(clip([]byte(tt.in))))
		})
	}
}
