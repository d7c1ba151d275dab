package imagecache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type fakeGenerator struct {
	calls      int
	lastPrompt string
	data       []byte
	err        error
}

func (f *fakeGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.data, f.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestEpoch(t *testing.T) {
	tests := []struct {
		name     string
		time     time.Time
		expected string
	}{
		{
			name:     "first ISO week of the year",
			time:     time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC),
			expected: "2026_week_01",
		},
		{
			name:     "ISO year differs from calendar year at the boundary",
			time:     time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC),
			expected: "2025_week_01",
		},
		{
			name:     "week number is zero padded",
			time:     time.Date(2026, time.February, 10, 9, 30, 0, 0, time.UTC),
			expected: "2026_week_07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Epoch(tt.time); got != tt.expected {
				t.Errorf("Expected epoch %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestKeyNormalization(t *testing.T) {
	tests := []struct {
		name     string
		category string
		expected string
	}{
		{
			name:     "ampersand and spaces collapse",
			category: "Paint & Finishes",
			expected: "cache_paint_finishes_2026_week_10",
		},
		{
			name:     "already normalized input is unchanged",
			category: "paint_finishes",
			expected: "cache_paint_finishes_2026_week_10",
		},
		{
			name:     "plain two word category",
			category: "Whole Build",
			expected: "cache_whole_build_2026_week_10",
		},
		{
			name:     "surrounding whitespace ignored",
			category: "  Electrical System  ",
			expected: "cache_electrical_system_2026_week_10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.category, "2026_week_10"); got != tt.expected {
				t.Errorf("Expected key %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestResolveSameWeekHitsCache(t *testing.T) {
	gen := &fakeGenerator{data: []byte("png-bytes")}
	cache := New(t.TempDir(), gen)
	cache.now = fixedClock(time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC))

	first, err := cache.Resolve(context.Background(), "Paint & Finishes", "premium painted living room")
	if err != nil {
		t.Fatalf("First resolve failed: %v", err)
	}

	// Different prompt, same category and week: must serve the cached file.
	second, err := cache.Resolve(context.Background(), "Paint & Finishes", "a completely different prompt")
	if err != nil {
		t.Fatalf("Second resolve failed: %v", err)
	}

	if first != second {
		t.Errorf("Expected same cached path, got %s and %s", first, second)
	}
	if gen.calls != 1 {
		t.Errorf("Expected 1 generator call, got %d", gen.calls)
	}

	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("Failed to read cached file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("Cached file content mismatch: %q", data)
	}
}

func TestResolveWeekRolloverIsFreshMiss(t *testing.T) {
	gen := &fakeGenerator{data: []byte("png-bytes")}
	cache := New(t.TempDir(), gen)

	cache.now = fixedClock(time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC))
	first, err := cache.Resolve(context.Background(), "Whole Build", "villa exterior")
	if err != nil {
		t.Fatalf("First resolve failed: %v", err)
	}

	cache.now = fixedClock(time.Date(2026, time.March, 11, 10, 0, 0, 0, time.UTC))
	second, err := cache.Resolve(context.Background(), "Whole Build", "villa exterior")
	if err != nil {
		t.Fatalf("Second resolve failed: %v", err)
	}

	if first == second {
		t.Errorf("Expected a new path after week rollover, got %s twice", first)
	}
	if gen.calls != 2 {
		t.Errorf("Expected 2 generator calls across weeks, got %d", gen.calls)
	}
	if _, err := os.Stat(first); err != nil {
		t.Errorf("Prior week's file should remain on disk: %v", err)
	}
}

func TestResolveAppliesRenderTemplate(t *testing.T) {
	gen := &fakeGenerator{data: []byte("png-bytes")}
	cache := New(t.TempDir(), gen)
	cache.now = fixedClock(time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC))

	if _, err := cache.Resolve(context.Background(), "Flooring & Tiling", "marble flooring in a hall"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if !strings.Contains(gen.lastPrompt, "marble flooring in a hall") {
		t.Errorf("Prompt should contain the visual description, got %q", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "architectural render") {
		t.Errorf("Prompt should carry the fixed style template, got %q", gen.lastPrompt)
	}
}

func TestResolveGenerationFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	gen := &fakeGenerator{err: errors.New("service unavailable")}
	cache := New(dir, gen)
	cache.now = fixedClock(time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC))

	if _, err := cache.Resolve(context.Background(), "Brickwork & Masonry", "brick wall"); err == nil {
		t.Fatal("Expected error from failed generation")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read cache dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no cache files after failure, found %d", len(entries))
	}
}

func TestResolveEmptyPayloadIsFailure(t *testing.T) {
	gen := &fakeGenerator{data: nil}
	cache := New(t.TempDir(), gen)
	cache.now = fixedClock(time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC))

	if _, err := cache.Resolve(context.Background(), "Sanitary & Utility", "modern bathroom"); err == nil {
		t.Fatal("Expected error for empty image payload")
	}
}

func TestResolveUsesKeyedFilename(t *testing.T) {
	dir := t.TempDir()
	gen := &fakeGenerator{data: []byte("png-bytes")}
	cache := New(dir, gen)
	cache.now = fixedClock(time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC))

	path, err := cache.Resolve(context.Background(), "Paint & Finishes", "premium painted living room")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	expected := filepath.Join(dir, "cache_paint_finishes_2026_week_10.png")
	if path != expected {
		t.Errorf("Expected path %s, got %s", expected, path)
	}
}
