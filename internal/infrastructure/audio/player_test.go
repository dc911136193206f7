package audio

import (
	"context"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/johnquangdev/convo-coach/errors"
	"github.com/johnquangdev/convo-coach/internal/domain/entities"
)

type captureOutput struct {
	clips []*Clip
	err   error
}

func (c *captureOutput) Write(ctx context.Context, clip *Clip) error {
	c.clips = append(c.clips, clip)
	return c.err
}

func TestPlayer_DecodesAndWrites(t *testing.T) {
	data := encodeWav(t, 1, 16000, 16, [][2]int{{5}, {6}})
	store := memStore{"s3://clips/a.wav": string(data)}
	out := &captureOutput{}

	p := NewPlayer(NewFetcher("", store), out, nil)
	if err := p.Play(context.Background(), "s3://clips/a.wav"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if len(out.clips) != 1 || out.clips[0].SampleRate != 16000 || len(out.clips[0].Samples) != 2 {
		t.Fatalf("output = %+v", out.clips)
	}
}

func TestPlayer_Failures(t *testing.T) {
	data := encodeWav(t, 1, 16000, 16, [][2]int{{5}})
	store := memStore{
		"s3://clips/ok.wav":  string(data),
		"s3://clips/bad.wav": "garbage",
	}

	p := NewPlayer(NewFetcher("", store), &captureOutput{}, nil)
	for _, ref := range []entities.PlaylistItem{"s3://clips/missing.wav", "s3://clips/bad.wav"} {
		if err := p.Play(context.Background(), ref); !errors.HasCode(err, errors.ErrorCode_PLAYBACK_FAILED) {
			t.Fatalf("Play(%s) err = %v", ref, err)
		}
	}

	p = NewPlayer(NewFetcher("", store), &captureOutput{err: stdErrors.New("device gone")}, nil)
	if err := p.Play(context.Background(), "s3://clips/ok.wav"); !errors.HasCode(err, errors.ErrorCode_PLAYBACK_FAILED) {
		t.Fatalf("expected playback failure, got %v", err)
	}
}

func TestPlayer_UnrecognizedRefFailsAlone(t *testing.T) {
	data := encodeWav(t, 1, 16000, 16, [][2]int{{7}})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer ts.Close()

	out := &captureOutput{}
	p := NewPlayer(NewFetcher(ts.URL, nil), out, nil)

	err := p.Play(context.Background(), "static/samples/trigger.wav")
	if !errors.HasCode(err, errors.ErrorCode_PLAYBACK_FAILED) || !stdErrors.Is(err, entities.ErrUnsupportedClipRef) {
		t.Fatalf("expected unsupported clip failure, got %v", err)
	}
	if err := p.Play(context.Background(), "/static/samples/resp.wav"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if len(out.clips) != 1 || out.clips[0].Samples[0] != 7 {
		t.Fatalf("output = %+v", out.clips)
	}
}
