package domain

import "time"

// UploadResult describes a completed upload to the bucket.
type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// StoredFile is an object fetched from the bucket, content included.
type StoredFile struct {
	Key          string
	Content      []byte
	ContentType  string
	Size         int64
	LastModified time.Time
}

// FileInfo is the listing view of a stored object.
type FileInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}
