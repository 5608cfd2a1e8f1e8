package analysis

import (
	"math"
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}']+`)

// SimilarityReport compares a submitted answer against reference
// answers using term-frequency cosine similarity.
type SimilarityReport struct {
	Similarities  []float64 `json:"similarities"`
	MaxSimilarity float64   `json:"max_similarity"`
}

// AnswerSimilarity computes the cosine similarity between the answer
// and each reference. Scores are in [0,1]; an empty answer or an empty
// reference scores 0 against it.
func AnswerSimilarity(answer string, references []string) SimilarityReport {
	report := SimilarityReport{Similarities: make([]float64, len(references))}
	answerVec := termFrequencies(answer)
	for i, ref := range references {
		sim := cosine(answerVec, termFrequencies(ref))
		report.Similarities[i] = sim
		if sim > report.MaxSimilarity {
			report.MaxSimilarity = sim
		}
	}
	return report
}

func termFrequencies(text string) map[string]float64 {
	freq := make(map[string]float64)
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		freq[word]++
	}
	return freq
}

func cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for term, va := range a {
		normA += va * va
		if vb, ok := b[term]; ok {
			dot += va * vb
		}
	}
	for _, vb := range b {
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
