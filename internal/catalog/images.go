package catalog

import "github.com/tessvale/embla/internal/domain"

// imageSet accumulates image URLs for one color group, preserving insertion
// order and deduplicating by exact string equality. Near-duplicate URLs
// (e.g. differing query strings) are distinct and both retained.
type imageSet struct {
	urls []string
	seen map[string]bool
}

func newImageSet() *imageSet {
	return &imageSet{seen: make(map[string]bool)}
}

// add appends a URL if it is non-empty and not already present.
func (s *imageSet) add(url string) {
	if url == "" || s.seen[url] {
		return
	}
	s.seen[url] = true
	s.urls = append(s.urls, url)
}

// promote inserts a URL at the front of the set. If the URL was already
// collected it is moved to the front rather than duplicated; everything
// else keeps its relative order.
func (s *imageSet) promote(url string) {
	if url == "" {
		return
	}
	if s.seen[url] {
		rest := make([]string, 0, len(s.urls))
		for _, u := range s.urls {
			if u != url {
				rest = append(rest, u)
			}
		}
		s.urls = append([]string{url}, rest...)
		return
	}
	s.seen[url] = true
	s.urls = append([]string{url}, s.urls...)
}

// collect folds one variant's candidate image fields into the set, highest
// priority first: thumbnail (floated to the front), file preview URLs, file
// direct URLs, then the generic image field. File and image URLs equal to
// this variant's thumbnail are skipped; set membership handles the rest.
func (s *imageSet) collect(v domain.Variant) {
	if v.ThumbnailURL != "" {
		s.promote(v.ThumbnailURL)
	}
	for _, f := range v.Files {
		if f.PreviewURL != "" && f.PreviewURL != v.ThumbnailURL {
			s.add(f.PreviewURL)
		}
		if f.URL != "" && f.URL != v.ThumbnailURL {
			s.add(f.URL)
		}
	}
	if v.Image != "" && v.Image != v.ThumbnailURL {
		s.add(v.Image)
	}
}

// ResolveVariantImages returns the priority-ordered, deduplicated image list
// for a single variant. A variant with no image fields contributes nothing.
func ResolveVariantImages(v domain.Variant) []string {
	set := newImageSet()
	set.collect(v)
	return set.urls
}
