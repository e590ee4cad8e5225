package analysis

import (
	"fmt"
	"strings"
)

const (
	// maxKeyPointsPerAnswer caps the extracted key points for one answer.
	maxKeyPointsPerAnswer = 3

	// minKeyPointLength drops fragments too short to be useful bullets.
	minKeyPointLength = 20

	// overviewPrefixLength is how much of the first answer is embedded into
	// the follow-up question.
	overviewPrefixLength = 800
)

// refusalPrefixes mark sentences that carry no RFP-usable content.
var refusalPrefixes = []string{"I cannot", "I don't", "I'm not"}

// noAnswerSentinels are remote answers that mean "no answer" and must not be
// accumulated even though the call was made.
var noAnswerSentinels = map[string]bool{
	"":                   true,
	"no answer":          true,
	"no answer received": true,
}

// formatQuestion substitutes the product name into a question template.
func formatQuestion(template, product string) string {
	return strings.ReplaceAll(template, "{product}", product)
}

// isNoAnswer reports whether an answer is a "no answer" sentinel
// (case-insensitive).
func isNoAnswer(answer string) bool {
	return noAnswerSentinels[strings.ToLower(strings.TrimSpace(answer))]
}

// extractKeyPoints splits an answer into sentences and keeps up to three
// substantial, non-refusal sentences.
func extractKeyPoints(answer string) []string {
	sentences := strings.FieldsFunc(answer, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var points []string
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= minKeyPointLength {
			continue
		}
		if startsWithRefusal(sentence) {
			continue
		}
		points = append(points, sentence)
		if len(points) == maxKeyPointsPerAnswer {
			break
		}
	}
	return points
}

func startsWithRefusal(sentence string) bool {
	for _, prefix := range refusalPrefixes {
		if strings.HasPrefix(sentence, prefix) {
			return true
		}
	}
	return false
}

// buildFollowUpQuestion constructs the detailed-insights follow-up from the
// first answer. The six technical areas are the same for every pillar,
// matching the original question sequence.
func buildFollowUpQuestion(product, firstAnswer string) string {
	prefix := firstAnswer
	if runes := []rune(prefix); len(runes) > overviewPrefixLength {
		prefix = string(runes[:overviewPrefixLength])
	}

	return fmt.Sprintf(`Based on this overview of %s: "%s..."

Please provide detailed technical insights covering:
1. APIs and web services available for system integration
2. Real-time data streaming and event processing capabilities
3. Messaging and queuing capabilities
4. Data synchronization and consistency handling
5. Protocol support and communication standards
6. Batch processing and file-based integration support`, product, prefix)
}

// buildSummary produces the fixed-template analysis summary sentence.
func buildSummary(pillar, product string, keyPointCount int) string {
	return fmt.Sprintf(
		"Comprehensive %s analysis for %s completed. Identified %d key technical capabilities and business value propositions suitable for RFP response preparation.",
		pillar, product, keyPointCount,
	)
}
