package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/temenos/rfp-assistant/internal/entity"
)

// Usecase orchestrates the fixed two-phase question sequence per
// (product, pillar) pair. Call counting is a local accumulator threaded
// through the run, so a single Usecase is safe to share across requests.
type Usecase struct {
	rag    RagConnector
	logger *zap.Logger
}

func NewUsecase(rag RagConnector, logger *zap.Logger) *Usecase {
	return &Usecase{
		rag:    rag,
		logger: logger,
	}
}

// TestConnection reports whether the remote RAG service is reachable.
func (uc *Usecase) TestConnection(ctx context.Context) bool {
	return uc.rag.TestConnection(ctx)
}

// AnalyzePillar runs the two-phase question sequence for one product and
// pillar. A failed first phase is fatal and yields ErrRemoteUnavailable with
// no partial result; a failed second phase is logged and skipped.
func (uc *Usecase) AnalyzePillar(ctx context.Context, region, modelID, product, pillar string) (*entity.PillarAnalysis, error) {
	def, err := entity.LookupPillar(pillar)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownPillar, pillar)
	}

	result := &entity.PillarAnalysis{
		Pillar:    pillar,
		Product:   product,
		Region:    region,
		ModelID:   modelID,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	calls := 0

	// Phase 1: initial overview. The first question template is the
	// pillar's overview question.
	overviewQuestion := formatQuestion(def.Questions[0], product)
	calls++
	resp, err := uc.rag.Query(ctx, overviewQuestion, region, modelID, def.Context)
	if err != nil || resp.Answer() == "" {
		ctxzap.Error(ctx, "initial overview query failed",
			zap.String("pillar", pillar),
			zap.String("product", product),
			zap.Error(err),
		)
		if err == nil {
			err = fmt.Errorf("response contains no answer")
		}
		return nil, fmt.Errorf("%w: %v", entity.ErrRemoteUnavailable, err)
	}

	firstAnswer := resp.Data.Answer
	uc.recordExchange(result, entity.PhaseInitialOverview, overviewQuestion, firstAnswer)

	// Phase 2: detailed insights. A failed or empty second call does not
	// abort the analysis.
	followUp := buildFollowUpQuestion(product, firstAnswer)
	calls++
	resp, err = uc.rag.Query(ctx, followUp, region, modelID, def.Context)
	if err != nil || resp.Answer() == "" {
		ctxzap.Warn(ctx, "detailed insights query failed, continuing with overview only",
			zap.String("pillar", pillar),
			zap.String("product", product),
			zap.Error(err),
		)
	} else {
		uc.recordExchange(result, entity.PhaseDetailedInsights, followUp, resp.Data.Answer)
	}

	result.APICallsMade = calls
	result.Summary = buildSummary(pillar, product, len(result.KeyPoints))

	ctxzap.Info(ctx, "pillar analysis completed",
		zap.String("pillar", pillar),
		zap.String("product", product),
		zap.Int("api_calls", calls),
		zap.Int("key_points", len(result.KeyPoints)),
	)

	return result, nil
}

// recordExchange appends a question/answer pair to the analysis unless the
// answer is a "no answer" sentinel. Questions, answers and conversation flow
// stay parallel.
func (uc *Usecase) recordExchange(result *entity.PillarAnalysis, phase, question, answer string) {
	if isNoAnswer(answer) {
		return
	}

	result.QuestionsAsked = append(result.QuestionsAsked, question)
	result.Answers = append(result.Answers, answer)
	result.ConversationFlow = append(result.ConversationFlow, entity.ConversationEntry{
		Phase:     phase,
		Question:  question,
		Answer:    answer,
		Timestamp: time.Now().Format(time.RFC3339),
	})
	result.KeyPoints = append(result.KeyPoints, extractKeyPoints(answer)...)
}

// AnalyzeCombined analyzes one pillar across several products sequentially
// and merges the results. Any product failure aborts the whole run and
// discards results gathered for prior products.
func (uc *Usecase) AnalyzeCombined(ctx context.Context, region string, products []string, pillar string) (*entity.CombinedAnalysis, error) {
	combined := &entity.CombinedAnalysis{
		Pillar:            pillar,
		Region:            region,
		Products:          products,
		CombinedAnswers:   []string{},
		CombinedKeyPoints: []string{},
		ProductAnalyses:   []entity.ProductAnalysis{},
		Timestamp:         time.Now().Format(time.RFC3339),
	}

	for _, product := range products {
		modelID := entity.ModelForProduct(product)

		result, err := uc.AnalyzePillar(ctx, region, modelID, product, pillar)
		if err != nil {
			return nil, err
		}

		combined.ProductAnalyses = append(combined.ProductAnalyses, entity.ProductAnalysis{
			Product:  product,
			Analysis: result,
		})
		combined.TotalAPICalls += result.APICallsMade

		for _, answer := range result.Answers {
			combined.CombinedAnswers = append(combined.CombinedAnswers, fmt.Sprintf("[%s] %s", product, answer))
		}
		for _, point := range result.KeyPoints {
			combined.CombinedKeyPoints = append(combined.CombinedKeyPoints, fmt.Sprintf("[%s] %s", product, point))
		}
	}

	return combined, nil
}
