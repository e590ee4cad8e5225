package validator

import (
	"fmt"

	"github.com/temenos/rfp-assistant/internal/entity"
)

// Validator checks request bodies at the endpoint boundary. Field presence
// only; semantic checks (unknown pillar, unknown product) belong to the
// analyzer and catalog.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateAnalyze(req *entity.AnalyzeRequest) error {
	if req.Region == "" {
		return fmt.Errorf("%w: region", entity.ErrMissingField)
	}
	if req.ModelID == "" {
		return fmt.Errorf("%w: model_id", entity.ErrMissingField)
	}
	if len(req.Products) == 0 {
		return fmt.Errorf("%w: products", entity.ErrMissingField)
	}
	if req.Pillar == "" {
		return fmt.Errorf("%w: pillar", entity.ErrMissingField)
	}
	return nil
}

func (v *Validator) ValidateBatchAnalyze(req *entity.BatchAnalyzeRequest) error {
	if req.Region == "" {
		return fmt.Errorf("%w: region", entity.ErrMissingField)
	}
	if req.ModelID == "" {
		return fmt.Errorf("%w: model_id", entity.ErrMissingField)
	}
	if len(req.Products) == 0 {
		return fmt.Errorf("%w: products", entity.ErrMissingField)
	}
	if len(req.Pillars) == 0 {
		return fmt.Errorf("%w: pillars", entity.ErrMissingField)
	}
	return nil
}

func (v *Validator) ValidateGenerateWord(req *entity.GenerateWordRequest) error {
	if req.Analysis == nil {
		return fmt.Errorf("%w: analysis", entity.ErrMissingField)
	}
	if req.Metadata == nil {
		return fmt.Errorf("%w: metadata", entity.ErrMissingField)
	}
	return nil
}

func (v *Validator) ValidateCombinedAnalysis(c *entity.CombinedAnalysis) error {
	if c == nil || c.Pillar == "" {
		return fmt.Errorf("%w: pillar", entity.ErrMissingField)
	}
	if len(c.ProductAnalyses) == 0 {
		return fmt.Errorf("%w: product_analyses", entity.ErrMissingField)
	}
	return nil
}
