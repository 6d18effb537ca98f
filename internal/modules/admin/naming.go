package admin

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	edgeDashes   = regexp.MustCompile(`^-|-$`)
)

func slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return edgeDashes.ReplaceAllString(slug, "")
}

// imageObjectName builds the blob key for an uploaded image:
// <product slug>-<1-based index>-<unix millis>.<extension>, extension taken
// from the uploaded filename with "jpg" as the default. A name that slugifies
// to nothing falls back to a UUID so keys stay unique and non-empty.
func imageObjectName(productName string, index int, filename string, now time.Time) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "jpg"
	}
	slug := slugify(productName)
	if slug == "" {
		slug = uuid.NewString()
	}
	return fmt.Sprintf("%s-%d-%d.%s", slug, index, now.UnixMilli(), ext)
}
