package imagecache

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ajay-constructions/estimator/internal/providers"
)

// renderTemplate is the fixed style wrapper applied to every visual prompt.
const renderTemplate = "High-quality 3D architectural render of %s in Hyderabad, luxury lighting, ultra-realistic."

// Cache is a weekly-partitioned, content-keyed image cache on durable
// storage. For a given category it invokes the generation service at most
// once per calendar week; within the week every lookup is served from disk.
//
// Concurrent misses on the same key are not coordinated: both callers may
// generate and write, and the last write wins. Writes go through a temp file
// and rename so a concurrent reader never sees a truncated image.
type Cache struct {
	dir       string
	generator providers.ImageGenerator
	now       func() time.Time
}

// New creates a cache rooted at dir, backed by the given image generator.
func New(dir string, generator providers.ImageGenerator) *Cache {
	return &Cache{
		dir:       dir,
		generator: generator,
		now:       time.Now,
	}
}

// Epoch returns the cache epoch identifier for t: the ISO-8601 year and week
// of the UTC wall clock, e.g. "2026_week_36". All keys derived within the
// same ISO week share an epoch; at week rollover every key becomes a fresh
// miss.
func Epoch(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d_week_%02d", year, week)
}

// Key derives the cache slot name for a category and epoch. Normalization
// lower-cases the category and collapses every non-alphanumeric run to a
// single underscore, so incidental formatting ("Paint & Finishes" vs
// "paint finishes") maps to the same slot.
func Key(categoryID, epoch string) string {
	return "cache_" + normalize(categoryID) + "_" + epoch
}

func normalize(categoryID string) string {
	fields := strings.FieldsFunc(strings.ToLower(categoryID), func(r rune) bool {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		return !isAlnum
	})
	return strings.Join(fields, "_")
}

// Resolve returns the path of the illustrative image for categoryID in the
// current epoch, generating and persisting one only on a miss. Any
// generation or storage failure returns an error and leaves no partial file;
// callers treat errors as "no image available".
func (c *Cache) Resolve(ctx context.Context, categoryID, descriptivePrompt string) (string, error) {
	key := Key(categoryID, Epoch(c.now()))
	path := filepath.Join(c.dir, key+".png")

	if _, err := os.Stat(path); err == nil {
		slog.Debug("Serving image from weekly cache", "key", key)
		return path, nil
	}

	slog.Info("Weekly cache miss, generating image", "key", key)

	data, err := c.generator.GenerateImage(ctx, fmt.Sprintf(renderTemplate, descriptivePrompt))
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("image service returned an empty payload")
	}

	if err := c.persist(key, path, data); err != nil {
		return "", err
	}

	return path, nil
}

func (c *Cache) persist(key, path string, data []byte) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(c.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close cache file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to publish cache file: %w", err)
	}

	return nil
}
