// Package backend воспроизводит звуки через ebiten/audio.
package backend

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"sound-tuner/internal/audio"
)

type stream interface {
	io.ReadSeeker
	Length() int64
}

var _ audio.Backend = (*EbitenBackend)(nil)

// EbitenBackend воспроизводит звуки через ebiten/audio.
// Файлы ищутся как <dir>/<категория>/<имя>.{ogg,wav,mp3}.
type EbitenBackend struct {
	ctx *ebaudio.Context
	dir string

	mu      sync.Mutex
	masters map[audio.Category]float64
	players map[audio.Category][]*channel
	static  []*channel
}

// channel связывает плеер с громкостью клипа
type channel struct {
	player *ebaudio.Player
	volume float64
}

// NewEbitenBackend создает бэкенд. Аудио контекст в процессе один,
// поэтому уже созданный контекст переиспользуется.
func NewEbitenBackend(dir string, sampleRate int) *EbitenBackend {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(sampleRate)
	}
	b := &EbitenBackend{
		ctx:     ctx,
		dir:     dir,
		masters: make(map[audio.Category]float64),
		players: make(map[audio.Category][]*channel),
	}
	for _, cat := range audio.Categories() {
		b.masters[cat] = 1
	}
	return b
}

// Play реализует audio.Backend
func (b *EbitenBackend) Play(cat audio.Category, s *audio.Sound, pos float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	loop := cat == audio.BGM || cat == audio.BGS
	ch, err := b.newChannel(cat, s, loop)
	if err != nil {
		return err
	}

	if cat == audio.SE {
		b.players[audio.SE] = append(prune(b.players[audio.SE]), ch)
	} else {
		_ = closeAll(b.players[cat])
		b.players[cat] = []*channel{ch}
	}

	if loop && pos > 0 {
		if err := ch.player.SetPosition(time.Duration(pos * float64(time.Second))); err != nil {
			return fmt.Errorf("seek %s: %w", s.Name, err)
		}
	}
	ch.player.SetVolume(ch.volume * b.masters[cat])
	ch.player.Play()
	return nil
}

// PlayStatic реализует audio.Backend
func (b *EbitenBackend) PlayStatic(s *audio.Sound) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, err := b.newChannel(audio.SE, s, false)
	if err != nil {
		return err
	}
	b.static = append(prune(b.static), ch)
	ch.player.SetVolume(ch.volume * b.masters[audio.SE])
	ch.player.Play()
	return nil
}

// Stop реализует audio.Backend
func (b *EbitenBackend) Stop(cat audio.Category) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := closeAll(b.players[cat])
	delete(b.players, cat)
	return err
}

// StopStatic реализует audio.Backend
func (b *EbitenBackend) StopStatic() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := closeAll(b.static)
	b.static = nil
	return err
}

// SetMasterVolume реализует audio.Backend
func (b *EbitenBackend) SetMasterVolume(cat audio.Category, volume float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.masters[cat] = volume
	chans := b.players[cat]
	if cat == audio.SE {
		chans = append(chans[:len(chans):len(chans)], b.static...)
	}
	for _, ch := range chans {
		ch.player.SetVolume(ch.volume * volume)
	}
}

// newChannel декодирует клип и применяет высоту тона и панораму
func (b *EbitenBackend) newChannel(cat audio.Category, s *audio.Sound, loop bool) (*channel, error) {
	path, err := audio.FindClip(b.dir, cat, s.Name)
	if err != nil {
		return nil, err
	}
	decoded, err := decodeClip(path, b.ctx.SampleRate())
	if err != nil {
		return nil, err
	}

	var src io.ReadSeeker = decoded
	length := decoded.Length()
	if s.Pitch > 0 && s.Pitch != 100 {
		rate := b.ctx.SampleRate()
		src = ebaudio.Resample(src, length, audio.PitchRate(rate, s.Pitch), rate)
		if r, ok := src.(interface{ Length() int64 }); ok {
			length = r.Length()
		} else {
			length = audio.PitchedLength(length, s.Pitch)
		}
	}
	src = audio.NewPanStream(src, s.Pan)
	if loop {
		src = ebaudio.NewInfiniteLoop(src, length)
	}

	player, err := b.ctx.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("create player for %s: %w", s.Name, err)
	}
	return &channel{
		player: player,
		volume: float64(min(max(s.Volume, 0), 100)) / 100,
	}, nil
}

// decodeClip декодирует файл в 16-бит стерео с частотой sampleRate
func decodeClip(path string, sampleRate int) (stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read clip: %w", err)
	}
	r := bytes.NewReader(data)

	var s stream
	switch filepath.Ext(path) {
	case ".ogg":
		s, err = vorbis.DecodeWithSampleRate(sampleRate, r)
	case ".wav":
		s, err = wav.DecodeWithSampleRate(sampleRate, r)
	case ".mp3":
		s, err = mp3.DecodeWithSampleRate(sampleRate, r)
	default:
		return nil, fmt.Errorf("unsupported clip format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, nil
}

// prune закрывает и убирает доигравшие плееры
func prune(chans []*channel) []*channel {
	alive := chans[:0]
	for _, ch := range chans {
		if ch.player.IsPlaying() {
			alive = append(alive, ch)
			continue
		}
		_ = ch.player.Close()
	}
	return alive
}

func closeAll(chans []*channel) error {
	var errs []error
	for _, ch := range chans {
		errs = append(errs, ch.player.Close())
	}
	return errors.Join(errs...)
}
