// Package backend is the HTTP client of the conversation-analysis backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/convo-coach/errors"
	"github.com/johnquangdev/convo-coach/internal/domain/entities"
	"github.com/johnquangdev/convo-coach/pkg/config"
	"github.com/johnquangdev/convo-coach/pkg/validator"
)

const (
	opUpload     = "upload"
	opAnalyze    = "analyze"
	opSynthesize = "generate_coach_audio"

	maxResponseBytes = 32 << 20
)

// Client talks to the analysis backend
type Client struct {
	baseURL  string
	client   *http.Client
	timeout  time.Duration
	validate *validator.CustomValidator
	logger   *zap.Logger
}

// NewClient creates a backend client from cfg. Timeout bounds upload and
// analyze; synthesis is bounded by the caller's context.
func NewClient(cfg config.BackendConfig, v *validator.CustomValidator, logger *zap.Logger) *Client {
	if v == nil {
		v = validator.New()
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.URL, "/"),
		client:   &http.Client{},
		timeout:  cfg.Timeout,
		validate: v,
		logger:   logger,
	}
}

// BaseURL returns the backend root used to resolve relative clip paths
func (c *Client) BaseURL() string {
	return c.baseURL
}

type uploadResponse struct {
	JobID    string            `json:"job_id" validate:"required"`
	Speakers []string          `json:"speakers"`
	Samples  map[string]string `json:"samples"`
}

// playlistResponse keeps every entry. A reference that cannot be played
// fails on its own turn, not the whole replay.
type playlistResponse struct {
	Playlist []string `json:"playlist"`
}

// Upload sends media as the multipart field "file"
func (c *Client) Upload(ctx context.Context, filename string, media io.Reader) (*entities.Upload, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	fw, err := w.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, errors.ErrBackendTransport(opUpload, err)
	}
	if _, err = io.Copy(fw, media); err != nil {
		return nil, errors.ErrBackendTransport(opUpload, fmt.Errorf("read media: %w", err))
	}
	if err = w.Close(); err != nil {
		return nil, errors.ErrBackendTransport(opUpload, err)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &b)
	if err != nil {
		return nil, errors.ErrBackendTransport(opUpload, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out uploadResponse
	if err := c.do(req, opUpload, &out); err != nil {
		return nil, err
	}

	up := &entities.Upload{
		JobID:    entities.JobID(out.JobID),
		Speakers: make([]entities.Speaker, len(out.Speakers)),
		Samples:  make(map[entities.Speaker]string, len(out.Samples)),
	}
	for i, s := range out.Speakers {
		up.Speakers[i] = entities.Speaker(s)
	}
	for k, v := range out.Samples {
		up.Samples[entities.Speaker(k)] = v
	}
	return up, nil
}

// Analyze submits the identities of a job and returns its report
func (c *Client) Analyze(ctx context.Context, in entities.AnalyzeRequest) (*entities.Report, error) {
	if err := c.validate.Validate(&in); err != nil {
		return nil, errors.ErrInvalidArgument(err.Error())
	}

	names := make(map[string]string, len(in.SpeakerMap))
	for s, n := range in.SpeakerMap {
		names[string(s)] = string(n)
	}
	speakerMap, err := json.Marshal(names)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	form := url.Values{}
	form.Set("job_id", string(in.JobID))
	form.Set("speaker_map", string(speakerMap))
	if in.MainUserName != "" {
		form.Set("main_user_name", string(in.MainUserName))
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := c.newFormRequest(ctx, "/analyze", form)
	if err != nil {
		return nil, errors.ErrBackendTransport(opAnalyze, err)
	}

	var out entities.Report
	if err := c.do(req, opAnalyze, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SynthesizeCoachAudio requests the replay clips of one action
func (c *Client) SynthesizeCoachAudio(ctx context.Context, in entities.SynthesisRequest) (entities.Playlist, error) {
	if err := c.validate.Validate(&in); err != nil {
		return nil, errors.ErrInvalidArgument(err.Error())
	}

	form := url.Values{}
	form.Set("job_id", string(in.JobID))
	form.Set("trigger_speaker", string(in.TriggerSpeaker))
	form.Set("trigger_text", in.TriggerText)
	form.Set("response_speaker", string(in.ResponseSpeaker))
	form.Set("response_text", in.ResponseText)

	req, err := c.newFormRequest(ctx, "/generate_coach_audio", form)
	if err != nil {
		return nil, errors.ErrBackendTransport(opSynthesize, err)
	}

	var out playlistResponse
	if err := c.do(req, opSynthesize, &out); err != nil {
		return nil, err
	}

	playlist := make(entities.Playlist, len(out.Playlist))
	for i, ref := range out.Playlist {
		playlist[i] = entities.PlaylistItem(ref)
	}
	return playlist, nil
}

func (c *Client) newFormRequest(ctx context.Context, path string, form url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// do sends req and decodes the body into out. A non-empty "error" field wins
// over the status code and every other field.
func (c *Client) do(req *http.Request, op string, out interface{}) error {
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return errors.ErrBackendTransport(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.ErrBackendTransport(op, fmt.Errorf("read body: %w", err))
	}

	if c.logger != nil {
		c.logger.Debug("backend.response",
			zap.String("request_id", reqID),
			zap.String("operation", op),
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", time.Since(start)),
		)
	}

	var envelope struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil && envelope.Error != "" {
		return errors.ErrBackendRejected(op, envelope.Error)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.ErrBackendTransport(op, fmt.Errorf("%s: %s", resp.Status, snippet(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.ErrBackendTransport(op, fmt.Errorf("decode: %w", err))
	}
	if err := c.validate.Validate(out); err != nil {
		return errors.ErrBackendTransport(op, fmt.Errorf("invalid response: %w", err))
	}
	return nil
}

func snippet(body []byte) string {
	const max = 256
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
