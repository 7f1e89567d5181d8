package chatbot

import (
	"agriassist/agriassist/sources/psql/models"
	"sort"
	"strings"
	"unicode/utf8"
)

type MatchResult struct {
	Record       models.KnowledgeRecord
	Score        int
	MatchedTerms []string
}

// Score rates every record against query and returns the ones with a positive
// score, best first. Equal scores keep the order of records. A blank query
// matches nothing. Length limits count characters, not bytes.
func (p Policy) Score(query string, records []models.KnowledgeRecord) []MatchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	tokens := strings.Fields(q)

	var results []MatchResult
	for _, rec := range records {
		keywords := strings.ToLower(rec.Keywords)
		score := 0
		var matched []string

		if strings.Contains(keywords, q) {
			score += p.ExactBonus
			matched = append(matched, q)
		}

		for _, term := range strings.Split(keywords, ",") {
			term = strings.TrimSpace(term)
			if utf8.RuneCountInString(term) <= 2 {
				continue
			}
			if strings.Contains(q, term) {
				score += p.TermBonus
				matched = append(matched, term)
				continue
			}
			for _, tok := range tokens {
				if utf8.RuneCountInString(tok) > 3 && strings.Contains(term, tok) {
					score += p.PartialBonus
					matched = append(matched, tok)
				}
			}
		}

		if score > 0 {
			results = append(results, MatchResult{Record: rec, Score: score, MatchedTerms: dedupe(matched)})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Score uses DefaultPolicy.
func Score(query string, records []models.KnowledgeRecord) []MatchResult {
	return DefaultPolicy().Score(query, records)
}

func dedupe(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// secondaryThreshold is the score a runner-up needs to be merged into the reply.
func (p Policy) secondaryThreshold(primary int) float64 {
	return max(float64(p.MinScore), float64(primary)*p.SecondaryRatio)
}
