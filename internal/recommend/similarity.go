// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

// unionDiscount slightly shrinks the union so a full overlap scores above
// a plain Jaccard index.
const unionDiscount = 0.9

// GenreSimilarity scores a candidate's genres against every watched genre
// set. For each watched set that overlaps the candidate, the similarity is
// the weighted intersection divided by 0.9 * |union|. Watched sets that are
// empty or share nothing are skipped. The result is
// 0.5 * mean + 0.5 * max over the overlapping sets.
func GenreSimilarity(candidate GenreSet, watched []GenreSet, weights GenreWeights) float64 {
	if len(candidate) == 0 || len(watched) == 0 {
		return 0
	}

	var total, best float64
	overlapping := 0
	for _, set := range watched {
		if len(set) == 0 {
			continue
		}

		var weighted float64
		shared := 0
		for g := range candidate {
			if set.Has(g) {
				shared++
				weighted += weights.Weight(g)
			}
		}
		if shared == 0 {
			continue
		}

		union := len(set) + len(candidate) - shared
		sim := weighted / (float64(union) * unionDiscount)
		total += sim
		overlapping++
		if sim > best {
			best = sim
		}
	}

	if overlapping == 0 {
		return 0
	}
	return 0.5*(total/float64(overlapping)) + 0.5*best
}
