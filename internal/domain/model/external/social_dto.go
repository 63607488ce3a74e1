package external

// MediaUploadResponse represents the response of the v1.1 media upload endpoint
type MediaUploadResponse struct {
	MediaID       int64  `json:"media_id"`
	MediaIDString string `json:"media_id_string"`
}

// CreatePostRequest represents the body of the v2 post creation endpoint
type CreatePostRequest struct {
	Text  string     `json:"text"`
	Media *PostMedia `json:"media,omitempty"`
}

// PostMedia references uploaded media
type PostMedia struct {
	MediaIDs []string `json:"media_ids"`
}

// CreatePostResponse represents the response of the v2 post creation endpoint
type CreatePostResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// UserMeResponse represents the response of the v2 authenticated user lookup
type UserMeResponse struct {
	Data struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Username string `json:"username"`
	} `json:"data"`
}

// SocialErrorResponse covers both the v2 problem format and the v1.1 errors array
type SocialErrorResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Message returns the most specific error text available
func (r *SocialErrorResponse) Message() string {
	if r.Detail != "" {
		return r.Detail
	}
	if len(r.Errors) > 0 {
		return r.Errors[0].Message
	}
	return r.Title
}
