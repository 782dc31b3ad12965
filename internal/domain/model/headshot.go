package model

import "strings"

// DefaultHeadshotPath is where the static file server keeps player
// headshot images.
const DefaultHeadshotPath = "/headshots_cache/"

// HeadshotURL maps a player name to its headshot asset URL: lowercase,
// whitespace runs collapsed to underscores, ".jpg" under basePath.
// An empty name yields an empty URL; consumers render a fallback image.
func HeadshotURL(basePath, playerName string) string {
	if strings.TrimSpace(playerName) == "" {
		return ""
	}
	if basePath == "" {
		basePath = DefaultHeadshotPath
	}
	name := strings.ToLower(strings.TrimSpace(playerName))
	name = strings.Join(strings.Fields(name), "_")
	return basePath + name + ".jpg"
}
