package audio

import (
	"fmt"
	"io"

	"github.com/youpy/go-wav"

	"github.com/johnquangdev/convo-coach/internal/domain/entities"
)

const (
	formatPCM     = 1
	bitsPerSample = 16
	maxChannels   = 2
)

// Clip is a decoded clip held in memory as interleaved 16-bit samples
type Clip struct {
	SampleRate float64
	Channels   int
	Samples    []int16
}

// Frames returns the number of sample frames
func (c *Clip) Frames() int {
	if c.Channels == 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// Source is what go-wav reads from
type Source interface {
	io.Reader
	io.ReaderAt
}

// Decode reads a 16-bit PCM WAV clip with one or two channels
func Decode(src Source) (*Clip, error) {
	reader := wav.NewReader(src)

	format, err := reader.Format()
	if err != nil {
		return nil, fmt.Errorf("read wav format: %w", err)
	}
	if format.AudioFormat != formatPCM || format.BitsPerSample != bitsPerSample {
		return nil, fmt.Errorf("%w: format %d, %d bits", entities.ErrUnsupportedFormat, format.AudioFormat, format.BitsPerSample)
	}
	if format.NumChannels == 0 || format.NumChannels > maxChannels {
		return nil, fmt.Errorf("%w: %d channels", entities.ErrUnsupportedFormat, format.NumChannels)
	}

	clip := &Clip{
		SampleRate: float64(format.SampleRate),
		Channels:   int(format.NumChannels),
	}

	for {
		samples, err := reader.ReadSamples()
		for _, s := range samples {
			for ch := 0; ch < clip.Channels; ch++ {
				clip.Samples = append(clip.Samples, int16(s.Values[ch]))
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read wav samples: %w", err)
		}
	}

	if len(clip.Samples) == 0 {
		return nil, entities.ErrEmptyClip
	}
	return clip, nil
}
