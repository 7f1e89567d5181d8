package chatbot

import (
	"agriassist/agriassist/sources/psql/models"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/magiconair/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(keywords, en string) models.KnowledgeRecord {
	return models.KnowledgeRecord{Keywords: keywords, ResponseEN: en}
}

func TestScorePartialAndTermMatches(t *testing.T) {
	kb := []models.KnowledgeRecord{rec("rice, paddy, water", "Rice needs standing water.")}

	results := Score("how much water does rice need", kb)
	require.Len(t, results, 1)
	assert.Equal(t, 6, results[0].Score)
	assert.Equal(t, []string{"rice", "water"}, results[0].MatchedTerms)
}

func TestScoreExactPhraseBonus(t *testing.T) {
	kb := []models.KnowledgeRecord{
		rec("fertilizer, urea", "other"),
		rec("organic fertilizer, compost", "compost"),
	}

	results := Score("organic fertilizer", kb)
	require.Len(t, results, 2)
	// phrase bonus plus the "organic fertilizer" term
	assert.Equal(t, "compost", results[0].Record.ResponseEN)
	assert.Equal(t, 13, results[0].Score)
	assert.Equal(t, []string{"organic fertilizer"}, results[0].MatchedTerms)
	assert.Equal(t, 3, results[1].Score)
}

func TestScoreWeakTokensStack(t *testing.T) {
	kb := []models.KnowledgeRecord{rec("drip irrigation systems", "drip")}

	results := Score("irrigation systems cost", kb)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Score)
	assert.Equal(t, []string{"irrigation", "systems"}, results[0].MatchedTerms)
}

func TestScoreSkipsShortTermsAndZeroScores(t *testing.T) {
	kb := []models.KnowledgeRecord{
		rec("ph, n", "short"),
		rec("wheat", "wheat"),
	}
	assert.Empty(t, Score("ph n value", kb))
}

func TestScoreDedupesTerms(t *testing.T) {
	kb := []models.KnowledgeRecord{rec("tomato blight, tomato wilt", "tomato")}

	results := Score("tomato leaves", kb)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Score)
	assert.Equal(t, []string{"tomato"}, results[0].MatchedTerms)
}

func TestScoreTiesKeepInputOrder(t *testing.T) {
	kb := []models.KnowledgeRecord{
		rec("cotton", "first"),
		rec("maize", "low"),
		rec("cotton", "second"),
	}

	results := Score("cotton pests", kb)
	require.Len(t, results, 2)
	assert.Equal(t, "first", results[0].Record.ResponseEN)
	assert.Equal(t, "second", results[1].Record.ResponseEN)
}

func TestScoreIsDeterministic(t *testing.T) {
	kb := []models.KnowledgeRecord{
		rec("rice, paddy, water", "a"),
		rec("water management, irrigation", "b"),
		rec("soil health, water", "c"),
	}
	first := Score("water for paddy irrigation", kb)
	second := Score("water for paddy irrigation", kb)
	assert.Equal(t, first, second)
}

func TestScoreEmptyQuery(t *testing.T) {
	kb := []models.KnowledgeRecord{rec("rice", "a")}
	assert.Empty(t, Score("", kb))
	assert.Empty(t, Score("   ", kb))
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "Rice needs water. Drain before harvest.",
		Summarize("Rice needs water. Drain before harvest! Use certified seed.", 150))
	assert.Equal(t, "One sentence only.", Summarize("One sentence only.", 150))
	assert.Equal(t, "No terminator.", Summarize("No terminator", 150))
}

func TestSummarizeTruncatesByRunes(t *testing.T) {
	long := strings.Repeat("धान ", 80) + "अंत।"
	s := Summarize(long, 150)
	assert.True(t, utf8.ValidString(s))
	assert.Equal(t, 150, utf8.RuneCountInString(s))
	assert.True(t, strings.HasSuffix(s, "..."))
	assert.True(t, strings.HasPrefix(long, strings.TrimSuffix(s, "...")))
}

func TestPolicyFromProperties(t *testing.T) {
	props := properties.MustLoadString("min_score = 5\nsecondary_ratio = 0.5\n")
	p := policyFromProperties(props, DefaultPolicy())
	assert.Equal(t, 5, p.MinScore)
	assert.Equal(t, 0.5, p.SecondaryRatio)
	assert.Equal(t, 10, p.ExactBonus)
	assert.Equal(t, 150, p.SummaryLimit)
}

func TestLoadPolicyMissingFile(t *testing.T) {
	assert.Equal(t, DefaultPolicy(), LoadPolicy(""))
	assert.Equal(t, DefaultPolicy(), LoadPolicy("/does/not/exist.properties"))
}

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, Hindi, NormalizeLanguage("HI"))
	assert.Equal(t, English, NormalizeLanguage("fr"))
	assert.Equal(t, English, NormalizeLanguage(""))
}

func TestResponseForFallsBackToEnglish(t *testing.T) {
	hi := "चावल"
	blank := "  "
	r := models.KnowledgeRecord{ResponseEN: "rice", ResponseHI: &hi, ResponseTE: &blank}

	assert.Equal(t, "चावल", ResponseFor(r, Hindi))
	assert.Equal(t, "rice", ResponseFor(r, Telugu))
	assert.Equal(t, "rice", ResponseFor(r, Kannada))
	assert.Equal(t, "rice", ResponseFor(r, Malayalam))
	assert.Equal(t, "rice", ResponseFor(r, English))
}

func TestScoreCountsCharactersNotBytes(t *testing.T) {
	// two-character term: skipped even though it is six bytes
	assert.Empty(t, Score("मुझे जल चाहिए", []models.KnowledgeRecord{rec("जल, xyzzy", "Water.")}))

	// three-character token: too short for a partial match
	assert.Empty(t, Score("खाद कब", []models.KnowledgeRecord{rec("जैविक खाद, compost", "Compost.")}))

	// three-character term is long enough for the term bonus
	got := Score("खाद कब डालें", []models.KnowledgeRecord{rec("खाद, उर्वरक", "Fertilizer.")})
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Score)
	assert.Equal(t, []string{"खाद"}, got[0].MatchedTerms)
}

func TestDerivedKeywordsCountCharacters(t *testing.T) {
	assert.Empty(t, derivedKeywords("धान का बीज"))
	assert.Equal(t, []string{"गेहूं"}, derivedKeywords("गेहूं का रोग"))
	assert.Equal(t, []string{"wheat", "rust"}, derivedKeywords("is wheat rust bad"))
}

func TestSummarizeNormalisesTerminators(t *testing.T) {
	// every kept sentence ends in "." whatever its original terminator
	text := "Is the soil waterlogged? Drain it now! Then sow."
	s := Summarize(text, 150)
	assert.Equal(t, "Is the soil waterlogged. Drain it now.", s)
	assert.False(t, strings.HasPrefix(text, s))
}
