// matchscore.go — Jaro-Winkler similarity, used to rank and report the
// confidence of fuzzy name matches in the resolver's substring stage.
package streams

import "math"

// jaroWinkler returns the Jaro-Winkler similarity between two strings (0.0–1.0).
func jaroWinkler(s1, s2 string) float64 {
	jaro := jaroSimilarity(s1, s2)
	// Count common prefix up to 4 characters
	prefix := 0
	maxPrefix := 4
	if len(s1) < maxPrefix {
		maxPrefix = len(s1)
	}
	if len(s2) < maxPrefix {
		maxPrefix = len(s2)
	}
	for i := 0; i < maxPrefix; i++ {
		if s1[i] == s2[i] {
			prefix++
		} else {
			break
		}
	}
	const p = 0.1 // standard Winkler prefix scale
	return jaro + float64(prefix)*p*(1-jaro)
}

// jaroSimilarity returns the Jaro similarity between two strings (0.0–1.0).
func jaroSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	matchDist := int(math.Max(float64(len(s1)), float64(len(s2)))/2.0) - 1
	if matchDist < 0 {
		matchDist = 0
	}

	s1Matched := make([]bool, len(s1))
	s2Matched := make([]bool, len(s2))

	matches := 0
	transpositions := 0

	for i := 0; i < len(s1); i++ {
		start := i - matchDist
		if start < 0 {
			start = 0
		}
		end := i + matchDist + 1
		if end > len(s2) {
			end = len(s2)
		}
		for j := start; j < end; j++ {
			if s2Matched[j] || s1[i] != s2[j] {
				continue
			}
			s1Matched[i] = true
			s2Matched[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0.0
	}

	k := 0
	for i := 0; i < len(s1); i++ {
		if !s1Matched[i] {
			continue
		}
		for k < len(s2) && !s2Matched[k] {
			k++
		}
		if k < len(s2) && s1[i] != s2[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	return (m/float64(len(s1)) + m/float64(len(s2)) + (m-float64(transpositions)/2)/m) / 3.0
}
