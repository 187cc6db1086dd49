package model

import "time"

// Document is the metadata record for a stored file.
// The bytes themselves live in object storage; StoragePath is the object key
// and is internal to the backend, FileURL is the externally visible location.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FileType    string    `json:"file_type"`
	FileURL     string    `json:"file_url"`
	StoragePath string    `json:"-"`
	FileSize    int64     `json:"file_size"`
	UploaderID  string    `json:"uploader_id"`
	AccessLevel string    `json:"access_level"`
	UploadDate  time.Time `json:"upload_date"`
}

// AccessLevelPrivate is the default access level stamped on upload when the
// client does not send one. Access levels are stored and returned but are not
// an authorization boundary; ownership checks are.
const AccessLevelPrivate = "private"
