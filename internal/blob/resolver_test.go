package blob

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveDataURI(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	r := NewResolver(nil)
	obj, err := r.Resolve(context.Background(), Ref{Value: uri})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if obj.MIME != "image/png" {
		t.Fatalf("mime = %q, want image/png", obj.MIME)
	}
	if !bytes.Equal(obj.Data, payload) {
		t.Fatalf("data mismatch: %v vs %v", obj.Data, payload)
	}
}

func TestResolveMalformedDataURI(t *testing.T) {
	cases := []struct {
		name string
		uri  string
	}{
		{"no comma", "data:image/png;base64"},
		{"not base64 encoded", "data:image/png,rawbytes"},
		{"missing mime", "data:;base64,aGk="},
		{"bad payload", "data:image/png;base64,!!!"},
	}
	r := NewResolver(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Resolve(context.Background(), Ref{Value: tc.uri})
			if !errors.Is(err, ErrMalformedDataURI) {
				t.Fatalf("err = %v, want ErrMalformedDataURI", err)
			}
		})
	}
}

func TestResolveFetch(t *testing.T) {
	body := []byte("jpeg bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	r := NewResolver(srv.Client())
	obj, err := r.Resolve(context.Background(), Ref{Value: srv.URL})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if obj.MIME != "image/jpeg" {
		t.Fatalf("mime = %q, want image/jpeg", obj.MIME)
	}
	if !bytes.Equal(obj.Data, body) {
		t.Fatalf("unexpected body: %q", obj.Data)
	}
}

func TestResolveFetchDefaultsMIME(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	r := NewResolver(srv.Client())
	obj, err := r.Resolve(context.Background(), Ref{Value: srv.URL})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if obj.MIME != "image/png" {
		t.Fatalf("mime = %q, want image/png fallback", obj.MIME)
	}
}

func TestResolveFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	r := NewResolver(srv.Client())
	_, err := r.Resolve(context.Background(), Ref{Label: "room", Value: srv.URL})

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("err = %v, want *FetchError", err)
	}
	if fetchErr.Label != "room" {
		t.Fatalf("label = %q, want room", fetchErr.Label)
	}
	if fetchErr.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", fetchErr.StatusCode)
	}
}

func TestResolveAllPreservesOrder(t *testing.T) {
	first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("first"))
	}))
	defer first.Close()
	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("second"))
	}))
	defer second.Close()

	r := NewResolver(nil)
	objects, err := r.ResolveAll(context.Background(),
		Ref{Label: "room", Value: first.URL},
		Ref{Label: "reference", Value: second.URL},
	)
	if err != nil {
		t.Fatalf("resolve all: %v", err)
	}
	if len(objects) != 2 {
		t.Fatalf("len = %d, want 2", len(objects))
	}
	if string(objects[0].Data) != "first" || string(objects[1].Data) != "second" {
		t.Fatalf("order not preserved: %q, %q", objects[0].Data, objects[1].Data)
	}
}

func TestResolveAllReportsFailingLabel(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer ok.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer bad.Close()

	r := NewResolver(nil)
	_, err := r.ResolveAll(context.Background(),
		Ref{Label: "room", Value: ok.URL},
		Ref{Label: "reference", Value: bad.URL},
	)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("err = %v, want *FetchError", err)
	}
	if fetchErr.Label != "reference" {
		t.Fatalf("label = %q, want reference", fetchErr.Label)
	}
}
