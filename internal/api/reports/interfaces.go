package reports

import (
	"context"

	"github.com/temenos/rfp-assistant/internal/entity"
)

type ReportStore interface {
	ListReports() ([]entity.StoredFile, error)
	ListDocuments() ([]entity.StoredFile, error)
	ReadReport(filename string) ([]byte, error)
	ResolveDownload(filename string) (string, error)
	ClearHistory(ctx context.Context) []string
}
