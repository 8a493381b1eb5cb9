// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/models"
)

const (
	textSignalWeight   = 0.3
	genreSignalWeight  = 0.6
	ratingSignalWeight = 0.1

	// MaxJitter is the exclusive upper bound of the random score jitter.
	MaxJitter = 0.02

	scoreDamping = 0.98
)

// Profile is everything derived from a user's watch history that the scorer
// needs. It is built once per scoring pass and read concurrently afterwards.
type Profile struct {
	corpus    *Corpus
	vectors   []TermVector
	genreSets []GenreSet
	weights   GenreWeights
	ratings   RatingStats
}

// NewProfile builds the scoring profile for a watch history.
func NewProfile(watched []models.Movie) *Profile {
	texts := make([]string, len(watched))
	genreSets := make([]GenreSet, len(watched))
	votes := make([]float64, len(watched))
	for i := range watched {
		texts[i] = watched[i].Text()
		genreSets[i] = ParseGenres(watched[i].Genres)
		votes[i] = watched[i].VoteAverage
	}

	corpus := NewCorpus(texts)
	vectors := make([]TermVector, len(texts))
	for i, text := range texts {
		vectors[i] = corpus.Vectorize(text)
	}

	return &Profile{
		corpus:    corpus,
		vectors:   vectors,
		genreSets: genreSets,
		weights:   BuildGenreWeights(genreSets),
		ratings:   NewRatingStats(votes),
	}
}

// Weights returns the genre weight table of the profile.
func (p *Profile) Weights() GenreWeights {
	return p.weights
}

// Ratings returns the rating statistics of the profile.
func (p *Profile) Ratings() RatingStats {
	return p.ratings
}

// ScoredCandidate is a candidate with its raw score and signal breakdown.
type ScoredCandidate struct {
	Movie      models.Movie
	Genres     []string
	Raw        float64
	Components models.SimilarityComponents
}

// Score computes the raw score of one candidate. Records without an id or
// title are rejected with ok=false.
//
//nolint:gocritic // candidate is read-only, pointer avoids copying in the hot loop
func (p *Profile) Score(candidate *models.Movie, jitter float64) (ScoredCandidate, bool) {
	if candidate == nil || candidate.ID <= 0 || strings.TrimSpace(candidate.Title) == "" {
		return ScoredCandidate{}, false
	}

	genres := ParseGenres(candidate.Genres)
	components := models.SimilarityComponents{
		TFIDF: TextSimilarity(p.corpus.Vectorize(candidate.Text()), p.vectors),
		Genre: GenreSimilarity(genres, p.genreSets, p.weights),
		Vote:  p.ratings.Similarity(candidate.VoteAverage),
	}

	weighted := textSignalWeight*components.TFIDF +
		genreSignalWeight*components.Genre +
		ratingSignalWeight*components.Vote
	raw := math.Sqrt(scoreDamping*weighted + jitter)

	return ScoredCandidate{
		Movie:      *candidate,
		Genres:     genres.Sorted(),
		Raw:        raw,
		Components: components,
	}, true
}

// ScoreOptions controls batching of a scoring pass.
type ScoreOptions struct {
	// BatchSize bounds how many candidates one worker scores at a time.
	BatchSize int
	// Workers bounds concurrently scored batches.
	Workers int
}

// ScoreAll scores candidates in batches and returns the accepted ones in
// input order. jitter must be empty or hold one value per candidate. The
// context is checked before each batch; cancellation returns ctx.Err().
func (p *Profile) ScoreAll(ctx context.Context, candidates []models.Movie, jitter []float64, opts ScoreOptions) ([]ScoredCandidate, error) {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	results := make([]ScoredCandidate, len(candidates))
	accepted := make([]bool, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(candidates); start += batchSize {
		if err := gctx.Err(); err != nil {
			break
		}
		end := min(start+batchSize, len(candidates))
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: candidates %d-%d: %v", ErrComputationPanicked, start, end, r)
				}
			}()
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				var j float64
				if i < len(jitter) {
					j = jitter[i]
				}
				results[i], accepted[i] = p.Score(&candidates[i], j)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scored := make([]ScoredCandidate, 0, len(candidates))
	for i := range results {
		if accepted[i] {
			scored = append(scored, results[i])
		}
	}
	return scored, nil
}

// JitterConfig controls the random component of the final score.
type JitterConfig struct {
	Enabled bool
	// Seed fixes the sequence; 0 seeds from the clock.
	Seed int64
}

// DrawJitter returns n jitter values in [0, MaxJitter), drawn sequentially
// so a fixed seed reproduces the same per-candidate values on every pass.
func DrawJitter(cfg JitterConfig, n int) []float64 {
	values := make([]float64, n)
	if !cfg.Enabled || n == 0 {
		return values
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // jitter is presentation noise, not security sensitive
	for i := range values {
		values[i] = rng.Float64() * MaxJitter
	}
	return values
}
