// Package device plays decoded clips on a PortAudio output device.
package device

import (
	"context"
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/johnquangdev/convo-coach/errors"
	"github.com/johnquangdev/convo-coach/internal/infrastructure/audio"
	"github.com/johnquangdev/convo-coach/pkg/config"
)

// Info describes an output device as listed by PortAudio
type Info struct {
	Index             int     `json:"index"`
	Name              string  `json:"name"`
	HostAPI           string  `json:"host_api"`
	MaxOutputChannels int     `json:"max_output_channels"`
	DefaultSampleRate float64 `json:"default_sample_rate"`
	Default           bool    `json:"default"`
}

// List returns every device that can play audio
func List() ([]Info, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, errors.ErrAudioFailed("initialize", err)
	}
	defer portaudio.Terminate()

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, errors.ErrAudioFailed("list devices", err)
	}
	def, _ := portaudio.DefaultOutputDevice()

	out := make([]Info, 0, len(devices))
	for i, d := range devices {
		if d.MaxOutputChannels == 0 {
			continue
		}
		item := Info{
			Index:             i,
			Name:              d.Name,
			MaxOutputChannels: d.MaxOutputChannels,
			DefaultSampleRate: d.DefaultSampleRate,
			Default:           def != nil && d.Name == def.Name,
		}
		if d.HostApi != nil {
			item.HostAPI = d.HostApi.Name
		}
		out = append(out, item)
	}
	return out, nil
}

// Output plays clips on a PortAudio output device using blocking writes
type Output struct {
	device          *portaudio.DeviceInfo
	framesPerBuffer int
}

// Open initializes PortAudio and selects the configured device.
// Close must be called to release PortAudio.
func Open(cfg config.AudioConfig) (*Output, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, errors.ErrAudioFailed("initialize", err)
	}

	device, err := selectDevice(cfg.Device)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}

	return &Output{device: device, framesPerBuffer: cfg.FramesPerBuffer}, nil
}

func selectDevice(index int) (*portaudio.DeviceInfo, error) {
	if index < 0 {
		d, err := portaudio.DefaultOutputDevice()
		if err != nil {
			return nil, errors.ErrAudioFailed("default output device", err)
		}
		return d, nil
	}

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, errors.ErrAudioFailed("list devices", err)
	}
	if index >= len(devices) {
		return nil, errors.ErrAudioFailed("select device", fmt.Errorf("no device %d", index))
	}
	d := devices[index]
	if d.MaxOutputChannels == 0 {
		return nil, errors.ErrAudioFailed("select device", fmt.Errorf("%s is not an output device", d.Name))
	}
	return d, nil
}

// Name returns the selected device name
func (o *Output) Name() string {
	return o.device.Name
}

// Write plays clip to completion. Cancellation stops it between buffers.
func (o *Output) Write(ctx context.Context, clip *audio.Clip) error {
	params := portaudio.HighLatencyParameters(nil, o.device)
	params.Output.Channels = clip.Channels
	params.SampleRate = clip.SampleRate
	params.FramesPerBuffer = o.framesPerBuffer

	buffer := make([]int16, o.framesPerBuffer*clip.Channels)
	stream, err := portaudio.OpenStream(params, &buffer)
	if err != nil {
		return fmt.Errorf("failed to open audio stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("failed to start audio stream: %w", err)
	}

	for off := 0; off < len(clip.Samples); off += len(buffer) {
		if err := ctx.Err(); err != nil {
			stream.Abort()
			return err
		}
		n := copy(buffer, clip.Samples[off:])
		// Fill remaining buffer with silence
		for i := n; i < len(buffer); i++ {
			buffer[i] = 0
		}
		if err := stream.Write(); err != nil {
			stream.Abort()
			return fmt.Errorf("failed to write audio stream: %w", err)
		}
	}

	return stream.Stop()
}

// Close releases PortAudio
func (o *Output) Close() error {
	return portaudio.Terminate()
}
