package api

import "context"

// SocialCredentials are the four user-context secrets of the social platform.
type SocialCredentials struct {
	APIKey            string
	APISecret         string
	AccessToken       string
	AccessTokenSecret string
}

// Missing returns the names of the absent credentials.
func (c SocialCredentials) Missing() []string {
	var missing []string
	if c.APIKey == "" {
		missing = append(missing, "SOCIAL_API_KEY")
	}
	if c.APISecret == "" {
		missing = append(missing, "SOCIAL_API_SECRET")
	}
	if c.AccessToken == "" {
		missing = append(missing, "SOCIAL_ACCESS_TOKEN")
	}
	if c.AccessTokenSecret == "" {
		missing = append(missing, "SOCIAL_ACCESS_TOKEN_SECRET")
	}
	return missing
}

// Complete reports whether all four credentials are set.
func (c SocialCredentials) Complete() bool {
	return len(c.Missing()) == 0
}

// SocialGateway defines the calls made against the social platform
type SocialGateway interface {
	// UploadMedia uploads a binary asset and returns its media handle
	UploadMedia(ctx context.Context, fileName string, content []byte) (string, error)

	// CreatePost publishes text with optional media handles and returns the post id
	CreatePost(ctx context.Context, text string, mediaIDs []string) (string, error)

	// GetMe returns the handle of the authenticated account
	GetMe(ctx context.Context) (string, error)
}
