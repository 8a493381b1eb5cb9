// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

// stopWords lists common English words of three or more letters that carry
// no topical signal in a plot synopsis. Shorter words never survive
// tokenization, so they are not listed.
var stopWords = map[string]struct{}{
	"about": {}, "above": {}, "after": {}, "again": {}, "against": {}, "all": {},
	"and": {}, "any": {}, "are": {}, "because": {}, "been": {}, "before": {},
	"being": {}, "below": {}, "between": {}, "both": {}, "but": {}, "can": {},
	"could": {}, "did": {}, "does": {}, "doing": {}, "down": {}, "during": {},
	"each": {}, "few": {}, "for": {}, "from": {}, "further": {}, "had": {},
	"has": {}, "have": {}, "having": {}, "her": {}, "here": {}, "hers": {},
	"herself": {}, "him": {}, "himself": {}, "his": {}, "how": {}, "into": {},
	"its": {}, "itself": {}, "just": {}, "more": {}, "most": {}, "myself": {},
	"nor": {}, "not": {}, "now": {}, "off": {}, "once": {}, "only": {},
	"other": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {}, "over": {},
	"own": {}, "same": {}, "she": {}, "should": {}, "some": {}, "such": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"themselves": {}, "then": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "those": {}, "through": {}, "too": {}, "under": {}, "until": {},
	"very": {}, "was": {}, "were": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "who": {}, "whom": {}, "why": {}, "will": {},
	"with": {}, "would": {}, "you": {}, "your": {}, "yours": {}, "yourself": {},
	"yourselves": {},
}

func isStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
