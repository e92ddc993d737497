package profile

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeFetcher struct {
	text string
	err  error
	url  string
}

func (f *fakeFetcher) FetchRawText(ctx context.Context, email, password, profileURL string) (string, error) {
	f.url = profileURL
	return f.text, f.err
}

type fakeTextStructurer struct {
	profile *Profile
	err     error
	rawSeen string
}

func (f *fakeTextStructurer) Structure(ctx context.Context, rawText string) (*Profile, error) {
	f.rawSeen = rawText
	return f.profile, f.err
}

func TestServiceExtract(t *testing.T) {
	dir := t.TempDir()
	fetcher := &fakeFetcher{text: "Jane Doe Senior Engineer"}
	structurer := &fakeTextStructurer{profile: sampleProfile()}

	svc := NewService(fetcher, structurer, dir)
	p, err := svc.Extract(context.Background(), "me@example.com", "hunter2", "https://www.linkedin.com/in/jane")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Jane Doe" {
		t.Errorf("unexpected profile: %+v", p)
	}
	if fetcher.url != "https://www.linkedin.com/in/jane" {
		t.Errorf("fetcher called with %q", fetcher.url)
	}
	if structurer.rawSeen != "Jane Doe Senior Engineer" {
		t.Errorf("structurer saw %q", structurer.rawSeen)
	}

	if _, err := os.Stat(filepath.Join(dir, MarkdownFile)); err != nil {
		t.Errorf("markdown artifact not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, HTMLFile)); err != nil {
		t.Errorf("html artifact not written: %v", err)
	}
}

func TestServiceExtractFetchError(t *testing.T) {
	cause := errors.New("page unreachable")
	svc := NewService(&fakeFetcher{err: cause}, &fakeTextStructurer{}, t.TempDir())

	_, err := svc.Extract(context.Background(), "a", "b", "https://example.com")
	if !errors.Is(err, cause) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestServiceExtractStructureError(t *testing.T) {
	cause := errors.New("bad json")
	svc := NewService(&fakeFetcher{text: "raw"}, &fakeTextStructurer{err: cause}, t.TempDir())

	_, err := svc.Extract(context.Background(), "a", "b", "https://example.com")
	if !errors.Is(err, cause) {
		t.Fatalf("expected structure error, got %v", err)
	}
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><h1>Jane Doe</h1><p>Engineer</p></body></html>`))
	}))
	t.Cleanup(srv.Close)

	f := &HTTPFetcher{Client: srv.Client()}
	text, err := f.FetchRawText(context.Background(), "me@example.com", "pw", srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Jane Doe") || !strings.Contains(text, "Engineer") {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestHTTPFetcherNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	f := &HTTPFetcher{Client: srv.Client()}
	if _, err := f.FetchRawText(context.Background(), "a", "b", srv.URL); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
