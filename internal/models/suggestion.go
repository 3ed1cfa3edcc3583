package models

// Suggestion is the AI-proposed metadata for a video file. Always filled:
// when the upstream call fails the caller gets the filename-derived fallback.
type Suggestion struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Hashtags    []string `json:"hashtags,omitempty"`
}

// DriveFile is one browsable video file from the user's Drive.
type DriveFile struct {
	FileID    string `json:"file_id"`
	Name      string `json:"name"`
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size,string,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type DriveFileList struct {
	Files         []*DriveFile `json:"files"`
	NextPageToken string       `json:"next_page_token,omitempty"`
}
