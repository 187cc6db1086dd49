package filetype

import "strings"

// Package filetype classifies filenames by extension. The table is static and
// lookups never fail: anything not listed classifies as unknown with an
// octet-stream MIME type and the "auto" storage resource type.

// Category groups extensions for the dashboard.
type Category string

const (
	CategoryDocument Category = "document"
	CategoryImage    Category = "image"
	CategoryUnknown  Category = "unknown"
)

// ResourceType is the storage-provider hint controlling how a stored object
// is served. It is recorded as object metadata at upload time.
type ResourceType string

const (
	ResourceRaw   ResourceType = "raw"
	ResourceImage ResourceType = "image"
	ResourceAuto  ResourceType = "auto"
)

// Info describes everything derivable from a file extension.
type Info struct {
	Extension    string       `json:"extension"`
	Category     Category     `json:"category"`
	MIMEType     string       `json:"mime_type"`
	ResourceType ResourceType `json:"resource_type"`
	CanPreview   bool         `json:"can_preview"`
	Icon         string       `json:"icon"`
}

var supported = map[string]Info{
	// documents
	"pdf":  {Category: CategoryDocument, MIMEType: "application/pdf", ResourceType: ResourceRaw, CanPreview: true, Icon: "fas fa-file-pdf"},
	"doc":  {Category: CategoryDocument, MIMEType: "application/msword", ResourceType: ResourceRaw, Icon: "fas fa-file-word"},
	"docx": {Category: CategoryDocument, MIMEType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", ResourceType: ResourceRaw, Icon: "fas fa-file-word"},
	"txt":  {Category: CategoryDocument, MIMEType: "text/plain", ResourceType: ResourceRaw, CanPreview: true, Icon: "fas fa-file-alt"},

	// images
	"jpg":  {Category: CategoryImage, MIMEType: "image/jpeg", ResourceType: ResourceImage, CanPreview: true, Icon: "fas fa-file-image"},
	"jpeg": {Category: CategoryImage, MIMEType: "image/jpeg", ResourceType: ResourceImage, CanPreview: true, Icon: "fas fa-file-image"},
	"png":  {Category: CategoryImage, MIMEType: "image/png", ResourceType: ResourceImage, CanPreview: true, Icon: "fas fa-file-image"},
	"gif":  {Category: CategoryImage, MIMEType: "image/gif", ResourceType: ResourceImage, CanPreview: true, Icon: "fas fa-file-image"},
	"bmp":  {Category: CategoryImage, MIMEType: "image/bmp", ResourceType: ResourceImage, CanPreview: true, Icon: "fas fa-file-image"},
	"svg":  {Category: CategoryImage, MIMEType: "image/svg+xml", ResourceType: ResourceImage, CanPreview: true, Icon: "fas fa-file-image"},
	"webp": {Category: CategoryImage, MIMEType: "image/webp", ResourceType: ResourceImage, CanPreview: true, Icon: "fas fa-file-image"},
}

const defaultMIMEType = "application/octet-stream"

// Extension returns the lower-cased substring after the last dot, or "" when
// the filename has no extension.
func Extension(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 || i == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// Classify maps a filename to its Info. Unknown and empty extensions yield the
// octet-stream entry rather than an error.
func Classify(filename string) Info {
	ext := Extension(filename)
	if info, ok := supported[ext]; ok {
		info.Extension = ext
		return info
	}
	return Info{
		Extension:    ext,
		Category:     CategoryUnknown,
		MIMEType:     defaultMIMEType,
		ResourceType: ResourceAuto,
		Icon:         "fas fa-file",
	}
}

// Supported reports whether the extension is in the static table.
func Supported(ext string) bool {
	_, ok := supported[strings.ToLower(ext)]
	return ok
}

// MIMEForExtension returns the content type used for download headers,
// falling back to octet-stream for unlisted extensions.
func MIMEForExtension(ext string) string {
	if info, ok := supported[strings.ToLower(ext)]; ok {
		return info.MIMEType
	}
	return defaultMIMEType
}
