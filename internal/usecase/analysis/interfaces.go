package analysis

import (
	"context"

	"github.com/temenos/rfp-assistant/internal/entity"
)

// RagConnector is the remote question-answering service used by the analyzer.
type RagConnector interface {
	TestConnection(ctx context.Context) bool
	Query(ctx context.Context, question, region, modelID, pillarContext string) (*entity.RAGResponse, error)
}
