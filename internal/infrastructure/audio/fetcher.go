package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/johnquangdev/convo-coach/internal/domain/entities"
	"github.com/johnquangdev/convo-coach/internal/domain/repositories"
	"github.com/johnquangdev/convo-coach/internal/infrastructure/storage"
	"github.com/johnquangdev/convo-coach/pkg/validator"
)

// Fetcher opens clip references: absolute http(s) URLs, paths relative to
// the backend, and s3:// objects when object storage is configured.
type Fetcher struct {
	baseURL string
	client  *http.Client
	objects repositories.ClipRepository
}

// NewFetcher creates a fetcher. objects may be nil.
func NewFetcher(baseURL string, objects repositories.ClipRepository) *Fetcher {
	return &Fetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		objects: objects,
	}
}

// Open returns a reader over the clip bytes
func (f *Fetcher) Open(ctx context.Context, ref entities.PlaylistItem) (io.ReadCloser, error) {
	s := strings.TrimSpace(string(ref))
	switch {
	case !validator.IsClipRef(s):
		return nil, fmt.Errorf("%w: %q", entities.ErrUnsupportedClipRef, s)
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return f.get(ctx, s)
	case strings.HasPrefix(s, "/"):
		return f.get(ctx, f.baseURL+s)
	case storage.IsObjectRef(s):
		if f.objects == nil {
			return nil, fmt.Errorf("%w: %q needs object storage", entities.ErrUnsupportedClipRef, s)
		}
		return f.objects.Open(ctx, entities.PlaylistItem(s))
	default:
		return nil, fmt.Errorf("%w: %q", entities.ErrUnsupportedClipRef, s)
	}
}

func (f *Fetcher) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	return resp.Body, nil
}
