package ui

import (
	"strings"

	"github.com/desertthunder/mvx/internal/models"
)

// BestTrailer picks the clip to feature for a movie using a fixed priority:
// an official YouTube trailer (name contains "official"), then any YouTube
// trailer, then any YouTube video. Returns nil when nothing qualifies.
func BestTrailer(videos []models.Video) *models.Video {
	var anyTrailer, anyVideo *models.Video

	for i := range videos {
		v := &videos[i]
		if v.Site != "YouTube" {
			continue
		}
		if v.Type == "Trailer" {
			if strings.Contains(strings.ToLower(v.Name), "official") {
				return v
			}
			if anyTrailer == nil {
				anyTrailer = v
			}
		}
		if anyVideo == nil {
			anyVideo = v
		}
	}

	if anyTrailer != nil {
		return anyTrailer
	}
	return anyVideo
}

// TrailerURL builds the watch URL for a YouTube video key.
func TrailerURL(key string) string {
	return "https://www.youtube.com/watch?v=" + key
}
