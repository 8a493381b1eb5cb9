// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

import (
	"math"
	"sort"
	"strings"
)

const (
	// MaxVectorTerms caps the number of terms kept per document vector.
	MaxVectorTerms = 100

	// cosineExponent lifts small similarities without changing their order.
	cosineExponent = 0.9

	minTokenLength = 3
)

// TermVector is a sparse TF-IDF vector. Absent terms are zero.
type TermVector map[string]float64

// Norm returns the L2 norm of the vector.
func (v TermVector) Norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Tokenize lower-cases text, splits it on non-word characters and drops
// tokens shorter than three characters and English stop words.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) < minTokenLength || isStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// isWordRune matches the ASCII word class [A-Za-z0-9_].
func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// Corpus holds document frequencies for a fixed set of documents.
//
// A Corpus is immutable once built: vectorizing a document does not add it
// to the corpus, so every vector is weighted against the same idf values
// regardless of how many documents are scored or in what order.
type Corpus struct {
	docFrequency map[string]int
	numDocs      int
}

// NewCorpus builds a corpus from raw document texts.
func NewCorpus(texts []string) *Corpus {
	c := &Corpus{
		docFrequency: make(map[string]int),
		numDocs:      len(texts),
	}
	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			c.docFrequency[tok]++
		}
	}
	return c
}

// NumDocs returns the number of documents in the corpus.
func (c *Corpus) NumDocs() int {
	return c.numDocs
}

// IDF returns 1 + ln(N / (1 + df)).
func (c *Corpus) IDF(term string) float64 {
	return 1 + math.Log(float64(c.numDocs)/(1+float64(c.docFrequency[term])))
}

// Vectorize returns the TF-IDF vector of text, where tf is the raw term
// count. Only terms with positive weight are kept, and at most
// MaxVectorTerms of them: the highest weighted, ties broken by first
// occurrence in the text.
func (c *Corpus) Vectorize(text string) TermVector {
	tokens := Tokenize(text)
	if len(tokens) == 0 || c.numDocs == 0 {
		return TermVector{}
	}

	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	type weighted struct {
		term   string
		weight float64
	}
	terms := make([]weighted, 0, len(order))
	for _, term := range order {
		w := float64(counts[term]) * c.IDF(term)
		if w > 0 {
			terms = append(terms, weighted{term: term, weight: w})
		}
	}

	if len(terms) > MaxVectorTerms {
		sort.SliceStable(terms, func(i, j int) bool {
			return terms[i].weight > terms[j].weight
		})
		terms = terms[:MaxVectorTerms]
	}

	vec := make(TermVector, len(terms))
	for _, t := range terms {
		vec[t.term] = t.weight
	}
	return vec
}

// CosineSimilarity returns dot(a,b)/(|a||b|) raised to the power 0.9, or 0
// when either vector has zero norm.
func CosineSimilarity(a, b TermVector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	var dot float64
	for term, w := range small {
		if other, ok := large[term]; ok {
			dot += w * other
		}
	}

	normA, normB := a.Norm(), b.Norm()
	if normA == 0 || normB == 0 || dot <= 0 {
		return 0
	}
	sim := dot / (normA * normB)
	if sim > 1 {
		sim = 1
	}
	return math.Pow(sim, cosineExponent)
}

// TextSimilarity combines a candidate's cosine similarity to every watched
// vector: 0.7 * mean + 0.3 * best, where best gets a 20% bonus when it
// exceeds 0.5.
func TextSimilarity(candidate TermVector, watched []TermVector) float64 {
	if len(watched) == 0 {
		return 0
	}

	var sum, best float64
	for _, w := range watched {
		sim := CosineSimilarity(candidate, w)
		sum += sim
		if sim > best {
			best = sim
		}
	}
	if best > 0.5 {
		best *= 1.2
	}
	mean := sum / float64(len(watched))
	return 0.7*mean + 0.3*best
}
