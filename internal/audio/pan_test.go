package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanGains(t *testing.T) {
	tests := []struct {
		pan         int
		left, right float64
	}{
		{0, 1, 1},
		{100, 0, 1},
		{-100, 1, 0},
		{50, 0.5, 1},
		{-50, 1, 0.5},
		{300, 0, 1},
	}
	for _, tt := range tests {
		l, r := panGains(tt.pan)
		assert.InDelta(t, tt.left, l, 1e-9, "pan=%d left", tt.pan)
		assert.InDelta(t, tt.right, r, 1e-9, "pan=%d right", tt.pan)
	}
}

func frames(samples ...int16) []byte {
	buf := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}
	return buf
}

func TestPanStream_ScalesChannels(t *testing.T) {
	src := bytes.NewReader(frames(1000, 1000, -2000, -2000, 0, 0))
	out, err := io.ReadAll(NewPanStream(src, 50))
	require.NoError(t, err)
	assert.Equal(t, frames(500, 1000, -1000, -2000, 0, 0), out)
}

func TestPanStream_CenterIsPassThrough(t *testing.T) {
	src := bytes.NewReader(frames(1, 2))
	assert.Same(t, src, NewPanStream(src, 0))
}

func TestPanStream_DropsPartialFrame(t *testing.T) {
	data := append(frames(100, 100), 0x01)
	out, err := io.ReadAll(NewPanStream(bytes.NewReader(data), -100))
	require.NoError(t, err)
	assert.Equal(t, frames(100, 0), out)
}
