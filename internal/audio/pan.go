package audio

import (
	"encoding/binary"
	"io"
	"math"
)

// BytesPerFrame размер кадра 16-бит стерео потока
const BytesPerFrame = 4

// panGains возвращает множители левого и правого каналов для pan -100..100
func panGains(pan int) (left, right float64) {
	p := float64(min(max(pan, -100), 100)) / 100
	left, right = 1, 1
	if p > 0 {
		left = 1 - p
	} else if p < 0 {
		right = 1 + p
	}
	return left, right
}

// panStream смещает стерео-поток 16-бит LE влево или вправо
type panStream struct {
	src         io.ReadSeeker
	left, right float64
}

// NewPanStream оборачивает стерео-поток 16-бит LE. Для pan == 0 src
// возвращается как есть.
func NewPanStream(src io.ReadSeeker, pan int) io.ReadSeeker {
	if pan == 0 {
		return src
	}
	l, r := panGains(pan)
	return &panStream{src: src, left: l, right: r}
}

func (p *panStream) Read(b []byte) (int, error) {
	b = b[:len(b)/BytesPerFrame*BytesPerFrame]
	if len(b) == 0 {
		return 0, nil
	}
	n, err := io.ReadFull(p.src, b)
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	frames := n / BytesPerFrame
	for i := 0; i < frames; i++ {
		off := i * BytesPerFrame
		scaleSample(b[off:off+2], p.left)
		scaleSample(b[off+2:off+4], p.right)
	}
	return frames * BytesPerFrame, err
}

func (p *panStream) Seek(offset int64, whence int) (int64, error) {
	return p.src.Seek(offset, whence)
}

func scaleSample(b []byte, gain float64) {
	if gain == 1 {
		return
	}
	v := float64(int16(binary.LittleEndian.Uint16(b))) * gain
	v = math.Max(math.MinInt16, math.Min(math.MaxInt16, math.Round(v)))
	binary.LittleEndian.PutUint16(b, uint16(int16(v)))
}
