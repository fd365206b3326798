package valueobjects

import "fmt"

// ContentType is the kind of social-media content submitted against a bill.
type ContentType string

const (
	ContentTypePost  ContentType = "post"
	ContentTypeStory ContentType = "story"
	ContentTypeReel  ContentType = "reel"
)

func NewContentType(value string) (ContentType, error) {
	ct := ContentType(value)
	if !ct.IsValid() {
		return "", fmt.Errorf("invalid content type: %s", value)
	}
	return ct, nil
}

func (c ContentType) String() string {
	return string(c)
}

func (c ContentType) IsValid() bool {
	return c == ContentTypePost || c == ContentTypeStory || c == ContentTypeReel
}
