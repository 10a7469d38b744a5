package sound

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ebitengine/oto/v3"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

var (
	ErrNotInitialized = errors.New("sound not initialized")
	errNotReady       = errors.New("audio device not ready")
)

type device struct {
	ctx   *oto.Context
	ready chan struct{}
}

var (
	initOnce sync.Once
	initErr  error
	dev      atomic.Pointer[device]
)

// Init opens the default audio device. Oto allows a single context per
// process so only the first call does any work.
func Init() error {
	initOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: ChannelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		otoCtx, readyChan, err := oto.NewContext(op)
		if err != nil {
			initErr = fmt.Errorf("sound.Init failed: %w", err)
			return
		}
		dev.Store(&device{ctx: otoCtx, ready: readyChan})
	})
	return initErr
}

// waitReady polls the device until it reports ready. Some backends take a
// few seconds after the context is created.
func (d *device) waitReady() error {
	return retry.Do(func() error {
		select {
		case <-d.ready:
			return nil
		default:
			return errNotReady
		}
	},
		retry.DelayType(retry.FixedDelay),
		retry.Delay(250*time.Millisecond),
		retry.Attempts(40),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			if n > 0 && n%10 == 0 {
				log.Printf("sound: retry %d: %v", n, err)
			}
		}),
	)
}

// Tone returns dur of a sine at freq in the device format, with a short
// linear fade at both ends. volume is clamped to [0, 1].
func Tone(freq float64, dur time.Duration, volume float64) []byte {
	volume = max(0, min(1, volume))
	samples := int(int64(dur) * SampleRate / int64(time.Second))
	fade := min(samples/2, SampleRate/200)
	buf := bytes.NewBuffer(make([]byte, 0, samples*ChannelCount*2))
	for i := range samples {
		env := 1.0
		switch {
		case i < fade:
			env = float64(i) / float64(fade)
		case i >= samples-fade:
			env = float64(samples-1-i) / float64(fade)
		}
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/SampleRate) * env * volume * math.MaxInt16)
		for range ChannelCount {
			binary.Write(buf, binary.LittleEndian, v)
		}
	}
	return buf.Bytes()
}

// Chime is the two-note limiter cue.
func Chime(volume float64) []byte {
	out := Tone(880, 120*time.Millisecond, volume)
	out = append(out, Tone(0, 40*time.Millisecond, 0)...)
	return append(out, Tone(1320, 180*time.Millisecond, volume)...)
}

// Play queues pcm on the device and returns without waiting for it. It is
// safe to call while Init is still running on another goroutine.
func Play(pcm []byte) error {
	d := dev.Load()
	if d == nil {
		return ErrNotInitialized
	}
	if err := d.waitReady(); err != nil {
		return err
	}
	player := d.ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	go func() {
		for player.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.Printf("player.Close failed: %v", err)
		}
	}()
	return nil
}

func Beep(volume float64) error {
	return Play(Chime(volume))
}
