package parser

import (
	"strings"

	"carousel/internal/core"
)

// topicBucket pairs detection keywords with the hashtag set they unlock.
// Buckets are scanned in a fixed order so output stays deterministic.
type topicBucket struct {
	name     string
	keywords []string
	hashtags []string
}

var topicBuckets = []topicBucket{
	{
		name:     "business",
		keywords: []string{"business", "entrepreneur", "startup", "marketing", "sales"},
		hashtags: []string{"Business", "Entrepreneur", "Marketing", "Growth", "Success"},
	},
	{
		name:     "tech",
		keywords: []string{"technology", "ai", "software", "coding", "developer", "tech"},
		hashtags: []string{"Tech", "Technology", "Innovation", "Digital", "TechTips"},
	},
	{
		name:     "design",
		keywords: []string{"design", "ui", "ux", "creative", "branding"},
		hashtags: []string{"Design", "Creative", "UI", "UX", "Branding"},
	},
	{
		name:     "lifestyle",
		keywords: []string{"lifestyle", "wellness", "health", "fitness", "motivation"},
		hashtags: []string{"Lifestyle", "Wellness", "Motivation", "SelfCare", "Growth"},
	},
	{
		name:     "education",
		keywords: []string{"learning", "education", "tips", "tutorial", "guide"},
		hashtags: []string{"Education", "Learning", "Tips", "Knowledge", "Tutorial"},
	},
}

// tipsHashtags is the fallback bucket when no topic matches.
var tipsHashtags = []string{"Tips", "Advice", "Guide", "HowTo", "Learn"}

var platformHashtags = map[core.Platform][]string{
	core.PlatformInstagram: {"Instagram", "InstaGood", "Viral", "Trending"},
	core.PlatformLinkedIn:  {"LinkedIn", "Professional", "Career", "Leadership"},
	core.PlatformTikTok:    {"TikTok", "FYP", "Viral", "Trending"},
}

const maxHashtags = 8

// generateHashtags scans the raw input for topic keywords and combines the
// matched buckets' hashtags with platform-specific tags, deduplicated in
// first-seen order and capped at maxHashtags.
func generateHashtags(content string, platform core.Platform) []string {
	contentLower := strings.ToLower(content)

	var candidates []string
	matched := false
	for _, bucket := range topicBuckets {
		for _, keyword := range bucket.keywords {
			if strings.Contains(contentLower, keyword) {
				candidates = append(candidates, bucket.hashtags...)
				matched = true
				break
			}
		}
	}
	if !matched {
		candidates = append(candidates, tipsHashtags...)
	}

	candidates = append(candidates, platformHashtags[platform]...)

	seen := make(map[string]bool)
	hashtags := make([]string, 0, maxHashtags)
	for _, tag := range candidates {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		hashtags = append(hashtags, tag)
		if len(hashtags) == maxHashtags {
			break
		}
	}
	return hashtags
}
