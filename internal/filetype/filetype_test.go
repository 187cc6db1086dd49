package filetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"simple", "report.pdf", "pdf"},
		{"uppercase", "PHOTO.PNG", "png"},
		{"multiple dots", "archive.tar.txt", "txt"},
		{"no extension", "README", ""},
		{"trailing dot", "weird.", ""},
		{"empty filename", "", ""},
		{"hidden file style", ".env", "env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extension(tt.filename))
		})
	}
}

func TestClassify_SupportedTypes(t *testing.T) {
	tests := []struct {
		filename     string
		category     Category
		mimeType     string
		resourceType ResourceType
		canPreview   bool
	}{
		{"q1.pdf", CategoryDocument, "application/pdf", ResourceRaw, true},
		{"memo.doc", CategoryDocument, "application/msword", ResourceRaw, false},
		{"memo.docx", CategoryDocument, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", ResourceRaw, false},
		{"notes.txt", CategoryDocument, "text/plain", ResourceRaw, true},
		{"pic.jpg", CategoryImage, "image/jpeg", ResourceImage, true},
		{"pic.JPEG", CategoryImage, "image/jpeg", ResourceImage, true},
		{"pic.png", CategoryImage, "image/png", ResourceImage, true},
		{"anim.gif", CategoryImage, "image/gif", ResourceImage, true},
		{"scan.bmp", CategoryImage, "image/bmp", ResourceImage, true},
		{"logo.svg", CategoryImage, "image/svg+xml", ResourceImage, true},
		{"photo.webp", CategoryImage, "image/webp", ResourceImage, true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			info := Classify(tt.filename)
			assert.Equal(t, tt.category, info.Category)
			assert.Equal(t, tt.mimeType, info.MIMEType)
			assert.Equal(t, tt.resourceType, info.ResourceType)
			assert.Equal(t, tt.canPreview, info.CanPreview)
			assert.NotEmpty(t, info.Icon)
			assert.NotEqual(t, "application/octet-stream", info.MIMEType)
		})
	}
}

func TestClassify_Unknown(t *testing.T) {
	for _, filename := range []string{"backup.zip", "noext", "", "movie.mp4"} {
		t.Run("fallback for "+filename, func(t *testing.T) {
			info := Classify(filename)
			assert.Equal(t, CategoryUnknown, info.Category)
			assert.Equal(t, "application/octet-stream", info.MIMEType)
			assert.Equal(t, ResourceAuto, info.ResourceType)
			assert.False(t, info.CanPreview)
		})
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("pdf"))
	assert.True(t, Supported("PDF"))
	assert.False(t, Supported("exe"))
	assert.False(t, Supported(""))
}

func TestMIMEForExtension(t *testing.T) {
	assert.Equal(t, "application/pdf", MIMEForExtension("pdf"))
	assert.Equal(t, "image/png", MIMEForExtension("PNG"))
	assert.Equal(t, "application/octet-stream", MIMEForExtension("zip"))
	assert.Equal(t, "application/octet-stream", MIMEForExtension(""))
}
