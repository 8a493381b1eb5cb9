// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/models"
)

// Fingerprint returns a stable digest of a watched-id set. Ids are sorted
// and deduplicated first, so the fingerprint depends only on set content.
func Fingerprint(ids []int64) string {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var b strings.Builder
	for i, id := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(id, 10))
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// MovieIDs extracts the ids of movies.
func MovieIDs(movies []models.Movie) []int64 {
	ids := make([]int64, len(movies))
	for i := range movies {
		ids[i] = movies[i].ID
	}
	return ids
}
