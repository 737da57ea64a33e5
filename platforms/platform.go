package platforms

import "strings"

const (
	Instagram = "instagram"
	TikTok    = "tiktok"
	YouTube   = "youtube"
	Twitter   = "twitter"
)

var ALL_PLATFORMS = map[string]struct{}{
	Instagram: struct{}{},
	TikTok:    struct{}{},
	YouTube:   struct{}{},
	Twitter:   struct{}{},
}

func IsValid(p string) bool {
	_, ok := ALL_PLATFORMS[strings.ToLower(p)]
	return ok
}

func GetPlatforms() []string {
	return []string{Instagram, TikTok, YouTube, Twitter}
}
