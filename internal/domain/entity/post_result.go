package entity

import "fmt"

// PostResult identifies a published post.
type PostResult struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
	URL    string `json:"url"`
}

// PostURL builds https://<host>/<handle>/status/<id>.
func PostURL(host, handle, id string) string {
	return fmt.Sprintf("https://%s/%s/status/%s", host, handle, id)
}
