package dto

type FileDTO struct {
	ID       uint64 `json:"id"`
	URL      string `json:"url"`
	IsImage  bool   `json:"isImage"`
	FileName string `json:"fileName"`
	FileSize string `json:"fileSize"`
}

// MediaTempMetadata is what the upload endpoint records in Redis until the
// file is attached to a post or swept as an orphan.
type MediaTempMetadata struct {
	MimeType  string `json:"mime_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	CreatedAt int64  `json:"created_at"`
}

type ReactionDTO struct {
	SymbolID uint64 `json:"symbolId" binding:"required"`
}
