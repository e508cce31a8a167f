package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tessvale/embla/internal/domain"
)

func TestImageSetAddDeduplicates(t *testing.T) {
	s := newImageSet()
	s.add("a.jpg")
	s.add("b.jpg")
	s.add("a.jpg")
	s.add("")

	assert.Equal(t, []string{"a.jpg", "b.jpg"}, s.urls)
}

func TestImageSetAddKeepsNearDuplicates(t *testing.T) {
	// URLs differing only in query string are distinct by contract.
	s := newImageSet()
	s.add("a.jpg?v=1")
	s.add("a.jpg?v=2")

	assert.Equal(t, []string{"a.jpg?v=1", "a.jpg?v=2"}, s.urls)
}

func TestImageSetPromote(t *testing.T) {
	t.Run("new url goes to front", func(t *testing.T) {
		s := newImageSet()
		s.add("a.jpg")
		s.add("b.jpg")
		s.promote("thumb.jpg")

		assert.Equal(t, []string{"thumb.jpg", "a.jpg", "b.jpg"}, s.urls)
	})

	t.Run("existing url moves to front", func(t *testing.T) {
		s := newImageSet()
		s.add("a.jpg")
		s.add("b.jpg")
		s.add("c.jpg")
		s.promote("b.jpg")

		assert.Equal(t, []string{"b.jpg", "a.jpg", "c.jpg"}, s.urls)
	})

	t.Run("empty url is ignored", func(t *testing.T) {
		s := newImageSet()
		s.add("a.jpg")
		s.promote("")

		assert.Equal(t, []string{"a.jpg"}, s.urls)
	})
}

func TestResolveVariantImagesPriority(t *testing.T) {
	v := domain.Variant{
		ThumbnailURL: "thumb.jpg",
		Image:        "generic.jpg",
		Files: []domain.VariantFile{
			{PreviewURL: "preview1.jpg", URL: "direct1.jpg"},
			{PreviewURL: "preview2.jpg"},
		},
	}

	got := ResolveVariantImages(v)

	assert.Equal(t, []string{"thumb.jpg", "preview1.jpg", "direct1.jpg", "preview2.jpg", "generic.jpg"}, got)
}

func TestResolveVariantImagesSkipsThumbnailEchoes(t *testing.T) {
	// File URLs that repeat the thumbnail must not appear twice.
	v := domain.Variant{
		ThumbnailURL: "thumb.jpg",
		Image:        "thumb.jpg",
		Files: []domain.VariantFile{
			{PreviewURL: "thumb.jpg", URL: "direct.jpg"},
		},
	}

	got := ResolveVariantImages(v)

	assert.Equal(t, []string{"thumb.jpg", "direct.jpg"}, got)
}

func TestResolveVariantImagesEmpty(t *testing.T) {
	got := ResolveVariantImages(domain.Variant{})
	assert.Empty(t, got)
}

func TestResolveVariantImagesIdempotent(t *testing.T) {
	v := domain.Variant{
		ThumbnailURL: "thumb.jpg",
		Files:        []domain.VariantFile{{PreviewURL: "p.jpg", URL: "u.jpg"}},
	}

	first := ResolveVariantImages(v)
	second := ResolveVariantImages(v)

	assert.Equal(t, first, second)
}
