package admin

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "big-into-energy", slugify("Big Into Energy"))
	assert.Equal(t, "labubu-v2", slugify("  Labubu (v2)! "))
	assert.Equal(t, "", slugify("!!!"))
}

func TestImageObjectName(t *testing.T) {
	at := time.UnixMilli(1700000000000)

	assert.Equal(t, "widget-1-1700000000000.png", imageObjectName("Widget", 1, "photo.png", at))
	// Missing extension defaults to jpg.
	assert.Equal(t, "widget-2-1700000000000.jpg", imageObjectName("Widget", 2, "photo", at))
}

func TestImageObjectName_UnsluggableNameFallsBackToUUID(t *testing.T) {
	name := imageObjectName("!!!", 1, "a.png", time.UnixMilli(1700000000000))
	assert.True(t, strings.HasSuffix(name, "-1-1700000000000.png"))
	assert.NotEqual(t, "-1-1700000000000.png", name)
}
