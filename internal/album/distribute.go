package album

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/layout"
)

// DefaultMaxPerPage is the page capacity used when an album does not
// configure its own.
const DefaultMaxPerPage = 4

// Distribute partitions photoUIDs, in order, into pages of at most
// maxPerPage photos (the last page may hold fewer) and assigns each page a
// random template for its photo count. Templates whose grid-area signature
// matches the previous page's choice are excluded whenever a
// different-looking alternative exists, so neighboring pages never repeat
// the same arrangement. Every slot starts at the identity transform.
//
// Empty input produces no pages; maxPerPage below 1 falls back to
// DefaultMaxPerPage. A nil rng gets a fresh auto-seeded source. Never
// fails.
func Distribute(photoUIDs []string, maxPerPage int, rng *rand.Rand) []Page {
	if maxPerPage < 1 {
		maxPerPage = DefaultMaxPerPage
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var pages []Page
	prevSignature := ""
	for start := 0; start < len(photoUIDs); start += maxPerPage {
		end := start + maxPerPage
		if end > len(photoUIDs) {
			end = len(photoUIDs)
		}
		chunk := photoUIDs[start:end]

		g := pickLayout(len(chunk), prevSignature, rng)
		prevSignature = g.Signature()

		photos := make([]PagePhoto, len(chunk))
		for i, uid := range chunk {
			photos[i] = PagePhoto{PhotoUID: uid, Transform: layout.Identity()}
		}
		pages = append(pages, Page{
			ID:     uuid.New().String(),
			Layout: g.Name,
			Photos: photos,
		})
	}
	return pages
}

// pickLayout draws a random template for count photos, skipping the
// previous page's signature when any other signature is on offer. When
// every candidate shares the previous signature (single-template counts)
// the repeat is unavoidable and allowed.
func pickLayout(count int, prevSignature string, rng *rand.Rand) layout.GridStyle {
	candidates := layout.LayoutsForCount(count)

	if prevSignature != "" {
		fresh := make([]layout.GridStyle, 0, len(candidates))
		for _, g := range candidates {
			if g.Signature() != prevSignature {
				fresh = append(fresh, g)
			}
		}
		if len(fresh) > 0 {
			candidates = fresh
		}
	}
	return candidates[rng.IntN(len(candidates))]
}
