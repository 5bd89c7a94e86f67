package scoring

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
	prose "github.com/jdkato/prose/v2"
)

// Advisory messages assembled into heuristic feedback.
const (
	adviceTooShort     = "Try to give a slightly longer answer with more specifics."
	adviceOffTopic     = "Your answer could be more focused on the question. Mention relevant keywords."
	adviceSubjective   = "You used a lot of subjective language; add facts or examples where possible."
	adviceUnstructured = "Consider structuring your answer with clearer points or examples."
	adviceGood         = "Good answer — clear and relevant."
)

// Heuristic is the local, network-free answer scorer and the fallback of
// record for the whole scoring subsystem. Score never fails and is
// deterministic for a given (question, answer) pair.
type Heuristic struct{}

// NewHeuristic returns the lexical/sentiment scorer.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Score rates an answer on four lexical signals: length, keyword overlap with
// the question, noun-phrase count, and sentiment polarity. The composite is
// scaled to [0,10] and rounded to one decimal.
func (h *Heuristic) Score(question, answer string) Result {
	wordCount := len(strings.Fields(answer))
	polarity, subjectivity := sentimentOf(answer)
	relevance := keywordRelevance(question, answer)
	nounPhrases := countNounPhrases(answer)

	composite := math.Min(float64(wordCount)/20, 1)*0.4 +
		clamp01(relevance)*0.3 +
		math.Min(float64(nounPhrases)/3, 1)*0.2 +
		(polarity+1)/2*0.1
	score := roundScore(composite * 10)

	var advice []string
	if wordCount < 20 {
		advice = append(advice, adviceTooShort)
	}
	if relevance < 0.1 {
		advice = append(advice, adviceOffTopic)
	}
	if subjectivity > 0.6 {
		advice = append(advice, adviceSubjective)
	}
	if nounPhrases < 1 {
		advice = append(advice, adviceUnstructured)
	}
	feedback := adviceGood
	if len(advice) > 0 {
		feedback = strings.Join(advice, " ")
	}

	return Result{
		Score:    score,
		Feedback: feedback,
		Extra: map[string]any{
			"polarity":     polarity,
			"subjectivity": subjectivity,
			"relevance":    relevance,
			"noun_phrases": nounPhrases,
		},
	}
}

// sentimentOf derives polarity in [-1,1] and subjectivity in [0,1] from the
// VADER lexicon. Subjectivity is the share of sentiment-bearing content, the
// complement of the neutral proportion.
func sentimentOf(text string) (polarity, subjectivity float64) {
	if strings.TrimSpace(text) == "" {
		return 0, 0
	}
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	sentiment := sentitext.PolarityScore(parsed)
	polarity = sentiment.Compound
	subjectivity = clamp01(sentiment.Positive + sentiment.Negative)
	return polarity, subjectivity
}

// keywordRelevance measures overlap between question keywords (words longer
// than 3 characters, case-insensitive) and answer words with trailing
// punctuation stripped, normalized by pool size plus one.
func keywordRelevance(question, answer string) float64 {
	keywords := make(map[string]struct{})
	for _, word := range strings.Fields(question) {
		if utf8.RuneCountInString(word) > 3 {
			keywords[strings.ToLower(word)] = struct{}{}
		}
	}
	answerWords := make(map[string]struct{})
	for _, word := range strings.Fields(answer) {
		answerWords[strings.Trim(strings.ToLower(word), ".,")] = struct{}{}
	}
	overlap := 0
	for keyword := range keywords {
		if _, ok := answerWords[keyword]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(keywords)+1)
}

// countNounPhrases counts noun-phrase-like spans: maximal runs of determiner,
// adjective, and noun tags containing at least one noun. Tagger failure is
// treated as zero spans so the heuristic path can never fail.
func countNounPhrases(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return 0
	}

	count := 0
	inPhrase := false
	hasNoun := false
	flush := func() {
		if inPhrase && hasNoun {
			count++
		}
		inPhrase, hasNoun = false, false
	}
	for _, token := range doc.Tokens() {
		switch {
		case strings.HasPrefix(token.Tag, "NN"):
			inPhrase = true
			hasNoun = true
		case token.Tag == "DT" || strings.HasPrefix(token.Tag, "JJ"):
			inPhrase = true
		default:
			flush()
		}
	}
	flush()
	return count
}
