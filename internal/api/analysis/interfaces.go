package analysis

import (
	"context"

	"github.com/temenos/rfp-assistant/internal/entity"
)

type AnalysisUsecase interface {
	TestConnection(ctx context.Context) bool
	AnalyzePillar(ctx context.Context, region, modelID, product, pillar string) (*entity.PillarAnalysis, error)
	AnalyzeCombined(ctx context.Context, region string, products []string, pillar string) (*entity.CombinedAnalysis, error)
}

type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, a *entity.PillarAnalysis) (string, error)
	SaveCombined(ctx context.Context, c *entity.CombinedAnalysis) (string, error)
}

type DocumentGenerator interface {
	GenerateAnalysisDocument(ctx context.Context, meta entity.DocumentMetadata, analysis *entity.PillarAnalysis) (string, error)
	GenerateCombinedDocument(ctx context.Context, combined *entity.CombinedAnalysis) (string, error)
}
