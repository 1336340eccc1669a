package media

// StoredFile describes an upload after it has been written.
type StoredFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}
