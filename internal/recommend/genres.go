// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

import (
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// GenreSet is a set of canonical genre names.
type GenreSet map[string]struct{}

// NewGenreSet builds a set from names, trimming whitespace and dropping empties.
func NewGenreSet(names ...string) GenreSet {
	set := make(GenreSet, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// Has reports whether the set contains genre.
func (s GenreSet) Has(genre string) bool {
	_, ok := s[genre]
	return ok
}

// Sorted returns the genre names in lexical order.
func (s GenreSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for g := range s {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// GenreEncoding identifies how a raw genre value is encoded.
type GenreEncoding int

const (
	EncodingUnknown GenreEncoding = iota
	EncodingJSONArrayOfObjects
	EncodingJSONArrayOfStrings
	EncodingJSONObject
	EncodingDelimitedString
	EncodingSingleString
	EncodingPreParsedArray
	EncodingPreParsedObject
)

// String implements fmt.Stringer.
func (e GenreEncoding) String() string {
	switch e {
	case EncodingJSONArrayOfObjects:
		return "json_array_of_objects"
	case EncodingJSONArrayOfStrings:
		return "json_array_of_strings"
	case EncodingJSONObject:
		return "json_object"
	case EncodingDelimitedString:
		return "delimited_string"
	case EncodingSingleString:
		return "single_string"
	case EncodingPreParsedArray:
		return "pre_parsed_array"
	case EncodingPreParsedObject:
		return "pre_parsed_object"
	default:
		return "unknown"
	}
}

// genreValue is the result of structural inspection: the detected encoding
// plus whatever payload that encoding's branch needs.
type genreValue struct {
	encoding GenreEncoding
	text     string
	items    []interface{}
	object   map[string]interface{}
}

// ParseGenres normalizes any supported genre encoding into a GenreSet.
//
// Supported inputs:
//   - `[{"id":28,"name":"Action"}]` (JSON array of objects)
//   - `["Action","Drama"]` (JSON array of strings)
//   - `{"name":"Action"}` (JSON object)
//   - "Action, Drama" (comma separated)
//   - "Action" (bare name)
//   - []string, []interface{}, map[string]interface{} (already decoded)
//
// Unparseable input yields an empty set. ParseGenres never panics.
func ParseGenres(raw interface{}) GenreSet {
	v := classifyGenres(raw)
	switch v.encoding {
	case EncodingJSONArrayOfObjects, EncodingJSONArrayOfStrings, EncodingPreParsedArray:
		return genresFromItems(v.items)
	case EncodingJSONObject, EncodingPreParsedObject:
		return genresFromObject(v.object)
	case EncodingDelimitedString:
		return NewGenreSet(strings.Split(v.text, ",")...)
	case EncodingSingleString:
		return NewGenreSet(v.text)
	default:
		return GenreSet{}
	}
}

// ParseGenreList is ParseGenres returning a sorted slice.
func ParseGenreList(raw interface{}) []string {
	return ParseGenres(raw).Sorted()
}

// DetectGenreEncoding reports which branch ParseGenres takes for raw.
func DetectGenreEncoding(raw interface{}) GenreEncoding {
	return classifyGenres(raw).encoding
}

func classifyGenres(raw interface{}) genreValue {
	switch t := raw.(type) {
	case nil:
		return genreValue{}
	case string:
		return classifyGenreString(t)
	case []byte:
		return classifyGenreString(string(t))
	case json.RawMessage:
		return classifyGenreString(string(t))
	case []string:
		items := make([]interface{}, len(t))
		for i, s := range t {
			items[i] = s
		}
		return genreValue{encoding: EncodingPreParsedArray, items: items}
	case []interface{}:
		return genreValue{encoding: EncodingPreParsedArray, items: t}
	case map[string]interface{}:
		return genreValue{encoding: EncodingPreParsedObject, object: t}
	case map[string]string:
		obj := make(map[string]interface{}, len(t))
		for k, s := range t {
			obj[k] = s
		}
		return genreValue{encoding: EncodingPreParsedObject, object: obj}
	default:
		return genreValue{}
	}
}

func classifyGenreString(s string) genreValue {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return genreValue{}
	}

	if looksLikeJSON(trimmed) {
		var decoded interface{}
		if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
			switch d := decoded.(type) {
			case []interface{}:
				if len(d) > 0 {
					if _, ok := d[0].(map[string]interface{}); ok {
						return genreValue{encoding: EncodingJSONArrayOfObjects, items: d}
					}
				}
				return genreValue{encoding: EncodingJSONArrayOfStrings, items: d}
			case map[string]interface{}:
				return genreValue{encoding: EncodingJSONObject, object: d}
			}
		}
		// Malformed JSON falls through to plain string handling.
	}

	if strings.Contains(trimmed, ",") {
		return genreValue{encoding: EncodingDelimitedString, text: trimmed}
	}
	return genreValue{encoding: EncodingSingleString, text: trimmed}
}

func looksLikeJSON(s string) bool {
	return (strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")) ||
		(strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}"))
}

func genresFromItems(items []interface{}) GenreSet {
	set := make(GenreSet, len(items))
	for _, item := range items {
		switch it := item.(type) {
		case string:
			set.add(it)
		case map[string]interface{}:
			if name, ok := it["name"].(string); ok {
				set.add(name)
			}
		}
	}
	return set
}

// genresFromObject uses the "name" field when present, otherwise every
// string value of the object.
func genresFromObject(obj map[string]interface{}) GenreSet {
	if name, ok := obj["name"].(string); ok && strings.TrimSpace(name) != "" {
		return NewGenreSet(name)
	}
	set := make(GenreSet, len(obj))
	for _, v := range obj {
		if s, ok := v.(string); ok {
			set.add(s)
		}
	}
	return set
}

func (s GenreSet) add(name string) {
	if name = strings.TrimSpace(name); name != "" {
		s[name] = struct{}{}
	}
}
