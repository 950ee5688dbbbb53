// Package blob resolves image references into raw bytes plus a mime type.
// A reference is either an inline data URI or a fetchable URL; callers never
// need to care which form the browser sent.
package blob

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrMalformedDataURI reports an inline reference that does not match the
// data:<mime>;base64,<payload> shape.
var ErrMalformedDataURI = errors.New("blob: malformed data URI")

// FetchError reports a referenced URL that could not be retrieved. Label names
// which image failed so the handler can surface it to the caller.
type FetchError struct {
	Label      string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("blob: fetch %s image: %v", e.Label, e.Err)
	}
	return fmt.Sprintf("blob: fetch %s image: status %d", e.Label, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Object is a resolved image: raw bytes plus the mime type they arrived with.
type Object struct {
	MIME string
	Data []byte
}

// Ref is a labeled image reference. The label only feeds error messages.
type Ref struct {
	Label string
	Value string
}

const defaultMIME = "image/png"

// Resolver turns references into Objects. The zero value is not usable; use
// NewResolver.
type Resolver struct {
	httpClient *http.Client
}

func NewResolver(client *http.Client) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Resolver{httpClient: client}
}

// Resolve produces the bytes and mime type behind a single reference. Inline
// data URIs are decoded in place; anything else is fetched with a GET and
// buffered whole.
func (r *Resolver) Resolve(ctx context.Context, ref Ref) (Object, error) {
	if strings.HasPrefix(ref.Value, "data:") {
		return decodeDataURI(ref.Value)
	}
	return r.fetch(ctx, ref)
}

// ResolveAll resolves every reference concurrently and returns the objects in
// the same order the refs were supplied. The first failure cancels the
// remaining fetches and is returned as-is; partial results are discarded.
func (r *Resolver) ResolveAll(ctx context.Context, refs ...Ref) ([]Object, error) {
	objects := make([]Object, len(refs))
	g, ctx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			obj, err := r.Resolve(ctx, ref)
			if err != nil {
				return err
			}
			objects[i] = obj
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return objects, nil
}

func (r *Resolver) fetch(ctx context.Context, ref Ref) (Object, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref.Value, nil)
	if err != nil {
		return Object{}, &FetchError{Label: ref.Label, URL: ref.Value, Err: err}
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return Object{}, &FetchError{Label: ref.Label, URL: ref.Value, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Object{}, &FetchError{Label: ref.Label, URL: ref.Value, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Object{}, &FetchError{Label: ref.Label, URL: ref.Value, Err: err}
	}

	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = defaultMIME
	}
	return Object{MIME: mime, Data: data}, nil
}

func decodeDataURI(uri string) (Object, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return Object{}, ErrMalformedDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return Object{}, ErrMalformedDataURI
	}
	mime := strings.TrimSuffix(meta, ";base64")
	if mime == "" {
		return Object{}, ErrMalformedDataURI
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Object{}, fmt.Errorf("%w: %v", ErrMalformedDataURI, err)
	}
	return Object{MIME: mime, Data: data}, nil
}
