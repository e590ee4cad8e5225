package analysis

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temenos/rfp-assistant/internal/entity"
)

// scriptedConnector returns one canned outcome per query, in order.
type scriptedConnector struct {
	answers []string
	errs    []error
	calls   int
}

func (s *scriptedConnector) TestConnection(ctx context.Context) bool { return true }

func (s *scriptedConnector) Query(ctx context.Context, question, region, modelID, pillarContext string) (*entity.RAGResponse, error) {
	idx := s.calls
	s.calls++
	if idx >= len(s.answers) {
		return nil, fmt.Errorf("unexpected query %d", idx)
	}

	if idx < len(s.errs) && s.errs[idx] != nil {
		return nil, s.errs[idx]
	}
	return &entity.RAGResponse{
		Status: "success",
		Data: &entity.RAGResponseData{
			Question: question,
			Region:   region,
			Answer:   s.answers[idx],
		},
	}, nil
}

func scripted(answers ...string) *scriptedConnector {
	return &scriptedConnector{
		answers: answers,
		errs:    make([]error, len(answers)),
	}
}

const substantialAnswer = "The platform provides a comprehensive security framework with full audit trails. " +
	"Multi-factor authentication is supported across every customer channel."

func TestAnalyzePillarBothPhases(t *testing.T) {
	conn := scripted(substantialAnswer, substantialAnswer)
	uc := NewUsecase(conn, zap.NewNop())

	result, err := uc.AnalyzePillar(context.Background(), "GLOBAL", "TechnologyOverview", "Transact", "Security")
	require.NoError(t, err)

	assert.Equal(t, "Security", result.Pillar)
	assert.Equal(t, "Transact", result.Product)
	assert.Equal(t, 2, result.APICallsMade)

	require.Len(t, result.QuestionsAsked, 2)
	require.Len(t, result.Answers, 2)
	require.Len(t, result.ConversationFlow, 2)
	assert.Equal(t, entity.PhaseInitialOverview, result.ConversationFlow[0].Phase)
	assert.Equal(t, entity.PhaseDetailedInsights, result.ConversationFlow[1].Phase)

	// The follow-up embeds the product and the first answer prefix.
	assert.Contains(t, result.QuestionsAsked[1], "Based on this overview of Transact")
	assert.NotEmpty(t, result.KeyPoints)
	assert.Contains(t, result.Summary, "Comprehensive Security analysis for Transact completed")
}

func TestAnalyzePillarUnknownPillar(t *testing.T) {
	uc := NewUsecase(scripted(), zap.NewNop())

	result, err := uc.AnalyzePillar(context.Background(), "GLOBAL", "m", "Transact", "Blockchain")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, entity.ErrUnknownPillar)
}

func TestAnalyzePillarFirstPhaseFailure(t *testing.T) {
	conn := &scriptedConnector{
		answers: []string{""},
		errs:    []error{fmt.Errorf("remote returned HTTP 500")},
	}
	uc := NewUsecase(conn, zap.NewNop())

	result, err := uc.AnalyzePillar(context.Background(), "GLOBAL", "m", "Transact", "Security")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, entity.ErrRemoteUnavailable)
	assert.Equal(t, 1, conn.calls)
}

func TestAnalyzePillarSecondPhaseFailure(t *testing.T) {
	conn := &scriptedConnector{
		answers: []string{substantialAnswer, ""},
		errs:    []error{nil, errors.New("timeout")},
	}
	uc := NewUsecase(conn, zap.NewNop())

	result, err := uc.AnalyzePillar(context.Background(), "GLOBAL", "m", "Transact", "Security")
	require.NoError(t, err)

	// Both attempts are counted even though only the first succeeded.
	assert.Equal(t, 2, result.APICallsMade)
	require.Len(t, result.ConversationFlow, 1)
	assert.Equal(t, entity.PhaseInitialOverview, result.ConversationFlow[0].Phase)
	assert.Len(t, result.QuestionsAsked, 1)
	assert.Len(t, result.Answers, 1)
}

func TestAnalyzePillarSecondAnswerSentinelSkipped(t *testing.T) {
	conn := scripted(substantialAnswer, "No answer received")
	uc := NewUsecase(conn, zap.NewNop())

	result, err := uc.AnalyzePillar(context.Background(), "GLOBAL", "m", "Transact", "Security")
	require.NoError(t, err)

	assert.Equal(t, 2, result.APICallsMade)
	assert.Len(t, result.ConversationFlow, 1)
}

func TestAnalyzeCombined(t *testing.T) {
	conn := scripted(substantialAnswer, substantialAnswer, substantialAnswer, substantialAnswer)
	uc := NewUsecase(conn, zap.NewNop())

	combined, err := uc.AnalyzeCombined(context.Background(), "GLOBAL", []string{"Transact", "Payments"}, "Security")
	require.NoError(t, err)

	assert.Equal(t, []string{"Transact", "Payments"}, combined.Products)
	assert.Equal(t, 4, combined.TotalAPICalls)
	require.Len(t, combined.ProductAnalyses, 2)
	assert.Equal(t, "Transact", combined.ProductAnalyses[0].Product)
	assert.Equal(t, "Payments", combined.ProductAnalyses[1].Product)

	require.NotEmpty(t, combined.CombinedAnswers)
	assert.True(t, len(combined.CombinedAnswers) == 4)
	assert.Contains(t, combined.CombinedAnswers[0], "[Transact] ")
	assert.Contains(t, combined.CombinedAnswers[2], "[Payments] ")
	for _, p := range combined.CombinedKeyPoints {
		assert.Regexp(t, `^\[(Transact|Payments)\] `, p)
	}
}

func TestAnalyzeCombinedAbortsOnFailure(t *testing.T) {
	conn := &scriptedConnector{
		answers: []string{substantialAnswer, substantialAnswer, ""},
		errs:    []error{nil, nil, errors.New("connection refused")},
	}
	uc := NewUsecase(conn, zap.NewNop())

	combined, err := uc.AnalyzeCombined(context.Background(), "GLOBAL", []string{"Transact", "Payments"}, "Security")
	assert.Nil(t, combined)
	assert.ErrorIs(t, err, entity.ErrRemoteUnavailable)
}
