package entity

// ImageAsset is the image persisted for the current generation cycle. The file at Path is
// overwritten by the next cycle.
type ImageAsset struct {
	Path        string `json:"path"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Prompt      string `json:"prompt"`
}
