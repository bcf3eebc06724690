package model

import "time"

// StoredFile is the metadata echoed back after a successful upload.
type StoredFile struct {
	Filename   string    `json:"filename"`
	Original   string    `json:"originalname"`
	Size       int64     `json:"size"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// FileEntry is one row in the upload directory listing.
type FileEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
