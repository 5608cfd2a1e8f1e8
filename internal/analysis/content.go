// Package analysis examines session artifacts that arrive outside the
// frame pipeline: audio transcripts, submitted answers, and completion
// timing. Each analyzer is a pure function from its inputs to a scored
// report; the LLM-backed transcript classifier degrades to the
// rule-based path when no provider is available.
package analysis

import (
	"regexp"
	"strings"

	"github.com/abhisek/vigil/internal/geometry"
)

// suspiciousPhrases are literal substrings that indicate help seeking.
// Covers English plus common Indic languages so transcripts from
// multilingual sessions still match.
var suspiciousPhrases = []string{
	"what is the answer",
	"help me with",
	"tell me",
	"can you help",
	"what should i write",
	"give me the answer",
	"how do i solve",
	"what's the solution",
	"i don't know this",
	"can you do this",
	"google it",
	"search for",
	"look it up",
	"check online",
	"ask someone",
	"call someone",
	"text someone",
	// Hindi
	"जवाब क्या है",
	"मदद करो",
	"बताओ",
	"हल क्या है",
	"उत्तर दो",
	"यह कैसे करते हैं",
	"गूगल करो",
	// Bengali
	"উত্তর কি",
	"সাহায্য করো",
	"বলো",
	"সমাধান কি",
	// Telugu
	"జవాబు ఏమిటి",
	"సహాయం చేయి",
	"చెప్పు",
	"పరిష్కారం ఏమిటి",
	// Tamil
	"பதில் என்ன",
	"உதவி செய்",
	"சொல்லு",
	"தீர்வு என்ன",
}

var helpSeekingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(what|how|where|when|why)\s+(is|are|do|does|should|would|can|could)`),
	regexp.MustCompile(`\b(help|assist|guide|show)\s+(me|us)`),
	regexp.MustCompile(`\b(i\s+don't\s+know|i\s+need\s+help|i'm\s+stuck)`),
	regexp.MustCompile(`\b(can\s+you|could\s+you|will\s+you|would\s+you)`),
	regexp.MustCompile(`\b(tell\s+me|show\s+me|give\s+me)`),
}

var answerReceivingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(the\s+answer\s+is|it\s+is|it's)`),
	regexp.MustCompile(`\b(you\s+should|try\s+this|write\s+this)`),
	regexp.MustCompile(`\b(option\s+[abcd]|choice\s+[1234])`),
	regexp.MustCompile(`\b(correct\s+answer|right\s+answer)`),
	regexp.MustCompile(`\b(just\s+write|simply\s+put|the\s+solution)`),
}

var questionReadingPattern = regexp.MustCompile(`\?.*\b(is|are|what|how|where|when|why)`)

// thirdPartySpeechIndicators suggest the transcript captured a second
// person relaying information.
var thirdPartySpeechIndicators = []string{
	"he said",
	"she said",
	"they said",
	"someone said",
	"person said",
	"friend said",
	"teacher said",
}

// PhraseMatch records one suspicious fragment found in a transcript.
type PhraseMatch struct {
	Phrase   string `json:"phrase"`
	Kind     string `json:"kind"` // help_seeking, help_pattern, answer_receiving
	Position int    `json:"position"`
}

// ContentReport summarizes a transcript's integrity signals.
type ContentReport struct {
	HelpSeekingCount     int           `json:"help_seeking_count"`
	AnswerReceivingCount int           `json:"answer_receiving_count"`
	QuestionReading      bool          `json:"question_reading"`
	ExternalDiscussion   bool          `json:"external_discussion"`
	Matches              []PhraseMatch `json:"matches,omitempty"`
	RiskScore            float64       `json:"risk_score"`
}

// AnalyzeContent scans a transcript for help-seeking phrases,
// answer-receiving patterns, question reading, and third-party speech.
// The risk score is additive across signal classes, capped at 1.0.
// An empty transcript yields a zero report.
func AnalyzeContent(transcript string) ContentReport {
	if strings.TrimSpace(transcript) == "" {
		return ContentReport{}
	}

	lower := strings.ToLower(transcript)
	var report ContentReport

	for _, phrase := range suspiciousPhrases {
		idx := strings.Index(lower, phrase)
		if idx < 0 {
			continue
		}
		report.HelpSeekingCount++
		report.Matches = append(report.Matches, PhraseMatch{
			Phrase:   phrase,
			Kind:     "help_seeking",
			Position: idx,
		})
	}

	for _, re := range helpSeekingPatterns {
		for _, loc := range re.FindAllStringIndex(lower, -1) {
			report.HelpSeekingCount++
			report.Matches = append(report.Matches, PhraseMatch{
				Phrase:   lower[loc[0]:loc[1]],
				Kind:     "help_pattern",
				Position: loc[0],
			})
		}
	}

	for _, re := range answerReceivingPatterns {
		for _, loc := range re.FindAllStringIndex(lower, -1) {
			report.AnswerReceivingCount++
			report.Matches = append(report.Matches, PhraseMatch{
				Phrase:   lower[loc[0]:loc[1]],
				Kind:     "answer_receiving",
				Position: loc[0],
			})
		}
	}

	report.QuestionReading = questionReadingPattern.MatchString(transcript)
	for _, indicator := range thirdPartySpeechIndicators {
		if strings.Contains(lower, indicator) {
			report.ExternalDiscussion = true
			break
		}
	}

	report.RiskScore = contentRisk(report)
	return report
}

// contentRisk accumulates risk per signal class. Answer receiving
// outweighs help seeking: hearing an answer is stronger evidence than
// asking for one.
func contentRisk(r ContentReport) float64 {
	var risk float64
	if r.HelpSeekingCount > 0 {
		risk += 0.4
	}
	if r.AnswerReceivingCount > 0 {
		risk += 0.5
	}
	if r.ExternalDiscussion {
		risk += 0.3
	}
	if r.QuestionReading {
		risk += 0.1
	}
	return geometry.Clamp(risk, 0, 1)
}
