// Package audio plays the looping background track.
package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const bufferDuration = 100 * time.Millisecond

// Music is one decoded track, looped forever at a fixed volume.
type Music struct {
	mu       sync.Mutex
	path     string
	streamer beep.StreamSeekCloser
	format   beep.Format
	volume   *effects.Volume
	playing  bool
}

// Load opens and decodes path. The format is chosen from the extension;
// mp3 and wav are supported. volume is linear in [0, 1].
func Load(path string, volume float64) (*Music, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open music: %w", err)
	}

	streamer, format, err := decode(path, f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode music %s: %w", path, err)
	}

	return &Music{
		path:     path,
		streamer: streamer,
		format:   format,
		volume: &effects.Volume{
			Streamer: beep.Loop(-1, streamer),
			Base:     2,
			Volume:   gain(volume),
			Silent:   volume <= 0,
		},
	}, nil
}

func decode(path string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		return mp3.Decode(f)
	case ".wav":
		return wav.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported format %q", ext)
	}
}

// gain converts a linear volume to the base-2 exponent effects.Volume uses.
func gain(volume float64) float64 {
	if volume <= 0 {
		return 0
	}
	return math.Log2(volume)
}

// Play opens the speaker at the track's sample rate and starts the loop.
func (m *Music) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.playing {
		return nil
	}

	sr := m.format.SampleRate
	if err := speaker.Init(sr, sr.N(bufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.volume)
	m.playing = true
	return nil
}

// Stop silences the speaker and releases the track. Safe to call more than once.
func (m *Music) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.playing {
		speaker.Clear()
		speaker.Close()
		m.playing = false
	}
	if m.streamer != nil {
		m.streamer.Close()
		m.streamer = nil
	}
}

func (m *Music) Path() string {
	return m.path
}
