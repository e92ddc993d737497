package profile

import (
	"context"
	"fmt"
	"net/http"

	"github.com/profilescribe/profilescribe/htmltext"
)

// RawFetcher obtains the raw visible text of a LinkedIn profile page.
type RawFetcher interface {
	FetchRawText(ctx context.Context, email, password, profileURL string) (string, error)
}

// TextStructurer converts raw page text into a structured Profile.
type TextStructurer interface {
	Structure(ctx context.Context, rawText string) (*Profile, error)
}

// HTTPFetcher fetches the profile page over plain HTTP and extracts its
// visible text. It does not drive a browser login flow; credentials are
// accepted to satisfy the tool contract but pages that require an
// authenticated session come back truncated.
type HTTPFetcher struct {
	Client *http.Client
}

func (f *HTTPFetcher) FetchRawText(ctx context.Context, email, password, profileURL string) (string, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid profile URL: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; profilescribe)")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch profile page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("profile page returned status %d", resp.StatusCode)
	}

	text, err := htmltext.Extract(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to extract page text: %w", err)
	}
	return text, nil
}

// Service runs the extraction pipeline: fetch the raw page text, structure
// it with the LLM, and persist the rendered artifacts.
type Service struct {
	fetcher    RawFetcher
	structurer TextStructurer
	outputDir  string
}

// NewService wires the extraction pipeline.
func NewService(fetcher RawFetcher, structurer TextStructurer, outputDir string) *Service {
	return &Service{fetcher: fetcher, structurer: structurer, outputDir: outputDir}
}

// Extract fetches, structures, and saves one profile.
func (s *Service) Extract(ctx context.Context, email, password, profileURL string) (*Profile, error) {
	raw, err := s.fetcher.FetchRawText(ctx, email, password, profileURL)
	if err != nil {
		return nil, err
	}

	p, err := s.structurer.Structure(ctx, raw)
	if err != nil {
		return nil, err
	}

	if _, _, err := Save(p, s.outputDir); err != nil {
		return nil, err
	}
	return p, nil
}
