package docgen

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/unidoc/unioffice/document"
	"go.uber.org/zap"

	"github.com/temenos/rfp-assistant/internal/entity"
	"github.com/temenos/rfp-assistant/internal/storage"
)

const (
	generatedBy = "Temenos RAG AI System"

	noCapabilitiesText = "No specific technical capabilities identified in this analysis."

	// maxParagraphLength caps cleaned answer paragraphs in combined documents.
	maxParagraphLength = 2000

	// minParagraphLength drops filler fragments from the narrative body.
	minParagraphLength = 50

	// maxCapabilityPoints limits the Technical Capabilities list.
	maxCapabilityPoints = 8

	// maxCapabilityLength truncates overlong capability bullets.
	maxCapabilityLength = 200
)

// Generator renders pillar analyses into styled Word documents under the
// documents directory. Rendering failures are reported to the caller, which
// treats them as non-fatal: the analysis itself is already persisted.
type Generator struct {
	docsDir string
	token   string
	logger  *zap.Logger
}

// NewGenerator creates a document generator. token is the remote API token,
// included masked in the Document Information section.
func NewGenerator(docsDir, token string, logger *zap.Logger) *Generator {
	return &Generator{
		docsDir: docsDir,
		token:   token,
		logger:  logger,
	}
}

// GenerateAnalysisDocument renders a single-product pillar analysis and
// returns the saved document path.
func (g *Generator) GenerateAnalysisDocument(ctx context.Context, meta entity.DocumentMetadata, analysis *entity.PillarAnalysis) (string, error) {
	if analysis == nil {
		return "", fmt.Errorf("%w: analysis data missing", entity.ErrInvalidReport)
	}

	doc := document.New()
	defer doc.Close()

	addHeading(doc, fmt.Sprintf("%s Capabilities - %s", analysis.Pillar, analysis.Product), "Heading1")

	if len(analysis.Answers) > 0 {
		body := buildPillarContent(analysis.Pillar, analysis.Product, analysis.Answers)
		for _, paragraph := range strings.Split(body, "\n\n") {
			paragraph = strings.TrimSpace(paragraph)
			if len(paragraph) > minParagraphLength {
				addParagraph(doc, paragraph)
				doc.AddParagraph()
			}
		}
	} else {
		addParagraph(doc, fmt.Sprintf("No detailed %s information available for %s.", analysis.Pillar, analysis.Product))
	}
	doc.AddParagraph()

	g.addTechnicalCapabilities(doc, analysis.KeyPoints)
	g.addDocumentInfo(doc, meta)

	filename := fmt.Sprintf("%s_analysis_%s_%s.docx",
		storage.SanitizeName(analysis.Pillar),
		storage.SanitizeName(analysis.Product),
		time.Now().Format(storage.FilenameTimestampLayout),
	)
	return g.save(ctx, doc, filename)
}

// GenerateCombinedDocument renders a multi-product combined analysis and
// returns the saved document path.
func (g *Generator) GenerateCombinedDocument(ctx context.Context, combined *entity.CombinedAnalysis) (string, error) {
	if combined == nil {
		return "", fmt.Errorf("%w: combined analysis data missing", entity.ErrInvalidReport)
	}

	doc := document.New()
	defer doc.Close()

	addHeading(doc, combined.Pillar, "Title")
	doc.AddParagraph()

	g.addCombinedChapters(doc, combined)

	g.addDocumentInfo(doc, entity.DocumentMetadata{
		Pillar:       combined.Pillar,
		Product:      combined.Products,
		Region:       combined.Region,
		Timestamp:    combined.Timestamp,
		APICallsMade: combined.TotalAPICalls,
	})

	filename := fmt.Sprintf("combined_%s_analysis_%s_%s.docx",
		storage.SanitizeName(combined.Pillar),
		storage.JoinNames(combined.Products),
		time.Now().Format(storage.FilenameTimestampLayout),
	)
	return g.save(ctx, doc, filename)
}

// addCombinedChapters writes one overview plus one technical-details section
// per product, falling back to a single merged section when fewer than two
// answers were recorded.
func (g *Generator) addCombinedChapters(doc *document.Document, combined *entity.CombinedAnalysis) {
	addHeading(doc, combined.Pillar, "Heading1")
	doc.AddParagraph()

	for _, pa := range combined.ProductAnalyses {
		var answers []string
		if pa.Analysis != nil {
			answers = pa.Analysis.Answers
		}

		if len(answers) >= 2 {
			addHeading(doc, fmt.Sprintf("%s - %s Overview", pa.Product, combined.Pillar), "Heading2")
			addParagraph(doc, cleanAnswer(answers[0]))
			doc.AddParagraph()

			addHeading(doc, fmt.Sprintf("%s - Technical Details and Capabilities", pa.Product), "Heading2")
			addParagraph(doc, cleanAnswer(answers[1]))
			doc.AddParagraph()
			continue
		}

		addHeading(doc, fmt.Sprintf("%s - %s Analysis", pa.Product, combined.Pillar), "Heading2")
		if len(answers) > 0 {
			addParagraph(doc, cleanAnswer(strings.Join(answers, " ")))
		} else {
			addParagraph(doc, fmt.Sprintf("No detailed analysis available for %s %s capabilities.", pa.Product, combined.Pillar))
		}
		doc.AddParagraph()
	}
}

func (g *Generator) addTechnicalCapabilities(doc *document.Document, keyPoints []string) {
	addHeading(doc, "Technical Capabilities", "Heading1")

	for _, line := range capabilityLines(keyPoints) {
		addParagraph(doc, line)
	}
	doc.AddParagraph()
}

// capabilityLines returns the Technical Capabilities paragraph texts: up to
// eight numbered key points with overlong bullets truncated, or a placeholder
// line when no points were extracted.
func capabilityLines(keyPoints []string) []string {
	if len(keyPoints) == 0 {
		return []string{noCapabilitiesText}
	}

	if len(keyPoints) > maxCapabilityPoints {
		keyPoints = keyPoints[:maxCapabilityPoints]
	}
	lines := make([]string, 0, len(keyPoints))
	for i, point := range keyPoints {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, truncateText(point, maxCapabilityLength)))
	}
	return lines
}

func (g *Generator) addDocumentInfo(doc *document.Document, meta entity.DocumentMetadata) {
	addHeading(doc, "Document Information", "Heading1")

	addParagraph(doc, "Generated by: "+generatedBy)
	addParagraph(doc, "API Key: "+maskToken(g.token))
	addParagraph(doc, fmt.Sprintf("API Calls Made: %d", meta.APICallsMade))
	addParagraph(doc, "Generated on: "+time.Now().Format("2006-01-02 15:04:05"))
	addParagraph(doc, "Product: "+formatProduct(meta.Product))
	addParagraph(doc, "Pillar: "+meta.Pillar)
	addParagraph(doc, "Region: "+meta.Region)
}

func (g *Generator) save(ctx context.Context, doc *document.Document, filename string) (string, error) {
	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}

	path := filepath.Join(g.docsDir, filename)
	if err := storage.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}

	ctxzap.Info(ctx, "word document generated",
		zap.String("path", path),
		zap.Int("bytes", buf.Len()),
	)
	return path, nil
}

func addHeading(doc *document.Document, text, style string) {
	par := doc.AddParagraph()
	par.SetStyle(style)
	par.AddRun().AddText(text)
}

func addParagraph(doc *document.Document, text string) {
	doc.AddParagraph().AddRun().AddText(text)
}

// cleanAnswer normalizes remote answer text for display: collapses
// whitespace, terminates the final sentence and caps the length.
func cleanAnswer(answer string) string {
	cleaned := strings.Join(strings.Fields(answer), " ")
	if cleaned == "" {
		return "No information available."
	}

	if !strings.HasSuffix(cleaned, ".") && !strings.HasSuffix(cleaned, "!") && !strings.HasSuffix(cleaned, "?") {
		cleaned += "."
	}
	return truncateText(cleaned, maxParagraphLength)
}

// truncateText caps text at max characters, replacing the tail with an
// ellipsis. Truncation happens on rune boundaries.
func truncateText(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}

// maskToken keeps the first and last ten characters of the API token; short
// or empty tokens render as N/A.
func maskToken(token string) string {
	if len(token) <= 20 {
		return "N/A"
	}
	return token[:10] + "..." + token[len(token)-10:]
}

// formatProduct renders the metadata product field, which holds either a
// single product name or the product list of a combined analysis.
func formatProduct(product any) string {
	switch v := product.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, ", ")
	case nil:
		return "Unknown"
	default:
		return fmt.Sprint(v)
	}
}
