package ui

import (
	"testing"

	"github.com/desertthunder/mvx/internal/models"
)

func TestBestTrailer(t *testing.T) {
	official := models.Video{Key: "off", Name: "Official Trailer", Site: "YouTube", Type: "Trailer"}
	plain := models.Video{Key: "pln", Name: "Trailer #2", Site: "YouTube", Type: "Trailer"}
	clip := models.Video{Key: "clp", Name: "Behind the Scenes", Site: "YouTube", Type: "Featurette"}
	vimeo := models.Video{Key: "vim", Name: "Official Trailer", Site: "Vimeo", Type: "Trailer"}

	t.Run("Prefers Official Trailer", func(t *testing.T) {
		got := BestTrailer([]models.Video{clip, plain, official})
		if got == nil || got.Key != "off" {
			t.Errorf("expected official trailer, got %+v", got)
		}
	})

	t.Run("Falls Back To Any Trailer", func(t *testing.T) {
		got := BestTrailer([]models.Video{clip, plain})
		if got == nil || got.Key != "pln" {
			t.Errorf("expected plain trailer, got %+v", got)
		}
	})

	t.Run("Falls Back To Any Video", func(t *testing.T) {
		got := BestTrailer([]models.Video{clip})
		if got == nil || got.Key != "clp" {
			t.Errorf("expected featurette fallback, got %+v", got)
		}
	})

	t.Run("Ignores Non-YouTube Videos", func(t *testing.T) {
		if got := BestTrailer([]models.Video{vimeo}); got != nil {
			t.Errorf("expected nil for non-YouTube-only list, got %+v", got)
		}
	})

	t.Run("Empty List", func(t *testing.T) {
		if got := BestTrailer(nil); got != nil {
			t.Errorf("expected nil for empty list, got %+v", got)
		}
	})

	t.Run("Case Insensitive Official Match", func(t *testing.T) {
		upper := models.Video{Key: "up", Name: "OFFICIAL TRAILER (HD)", Site: "YouTube", Type: "Trailer"}
		got := BestTrailer([]models.Video{plain, upper})
		if got == nil || got.Key != "up" {
			t.Errorf("expected case-insensitive official match, got %+v", got)
		}
	})
}

func TestTrailerURL(t *testing.T) {
	if got := TrailerURL("abc123"); got != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("unexpected URL: %s", got)
	}
}
