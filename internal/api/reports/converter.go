package reports

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/temenos/rfp-assistant/internal/entity"
)

// reportText flattens a stored report into a title and a plain-text body for
// the export formatters. Combined reports are recognized by their
// product_analyses list.
func reportText(raw []byte) (string, string, error) {
	var probe struct {
		ProductAnalyses []json.RawMessage `json:"product_analyses"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return "", "", fmt.Errorf("%w: %v", entity.ErrInvalidReport, err)
	}

	if len(probe.ProductAnalyses) > 0 {
		var combined entity.CombinedAnalysis
		if err := json.Unmarshal(raw, &combined); err != nil {
			return "", "", fmt.Errorf("%w: %v", entity.ErrInvalidReport, err)
		}
		return combinedReportText(&combined)
	}

	var analysis entity.PillarAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return "", "", fmt.Errorf("%w: %v", entity.ErrInvalidReport, err)
	}
	return analysisReportText(&analysis)
}

func analysisReportText(a *entity.PillarAnalysis) (string, string, error) {
	if a.Pillar == "" || a.Product == "" {
		return "", "", fmt.Errorf("%w: pillar or product missing", entity.ErrInvalidReport)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Region: %s\n", a.Region)
	fmt.Fprintf(&b, "Model: %s\n", a.ModelID)
	fmt.Fprintf(&b, "API Calls Made: %d\n", a.APICallsMade)
	fmt.Fprintf(&b, "Generated: %s\n\n", a.Timestamp)

	if a.Summary != "" {
		fmt.Fprintf(&b, "%s\n\n", a.Summary)
	}

	if len(a.KeyPoints) > 0 {
		b.WriteString("Key Points:\n")
		for _, p := range a.KeyPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}

	for _, entry := range a.ConversationFlow {
		fmt.Fprintf(&b, "[%s]\n%s\n\n%s\n\n", entry.Phase, entry.Question, entry.Answer)
	}

	title := fmt.Sprintf("%s Capabilities - %s", a.Pillar, a.Product)
	return title, strings.TrimRight(b.String(), "\n"), nil
}

func combinedReportText(c *entity.CombinedAnalysis) (string, string, error) {
	if c.Pillar == "" {
		return "", "", fmt.Errorf("%w: pillar missing", entity.ErrInvalidReport)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Region: %s\n", c.Region)
	fmt.Fprintf(&b, "Products: %s\n", strings.Join(c.Products, ", "))
	fmt.Fprintf(&b, "Total API Calls: %d\n", c.TotalAPICalls)
	fmt.Fprintf(&b, "Generated: %s\n\n", c.Timestamp)

	if len(c.CombinedKeyPoints) > 0 {
		b.WriteString("Key Points:\n")
		for _, p := range c.CombinedKeyPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}

	for _, pa := range c.ProductAnalyses {
		fmt.Fprintf(&b, "%s\n%s\n\n", pa.Product, strings.Repeat("-", len(pa.Product)))
		if pa.Analysis == nil {
			continue
		}
		for _, answer := range pa.Analysis.Answers {
			fmt.Fprintf(&b, "%s\n\n", answer)
		}
	}

	title := fmt.Sprintf("%s Capabilities - Combined Analysis", c.Pillar)
	return title, strings.TrimRight(b.String(), "\n"), nil
}
