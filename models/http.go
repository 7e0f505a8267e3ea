package models

import "time"

// PageListResponse is the body of GET /api/documents.
type PageListResponse struct {
	Pages  []LandingPage `json:"pages"`
	Length int           `json:"length"`
}

// PresignRequest asks for an upload slot for one page asset (e.g. a hero image).
type PresignRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

// PresignResponse carries presigned object-storage URLs for an asset.
// UploadURL accepts a single PUT; DownloadURL is readable until ExpiresAt.
type PresignResponse struct {
	Key         string    `json:"key"`
	UploadURL   string    `json:"uploadUrl"`
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
