package entity

// AnalyzeRequest is the body of POST /api/analyze. ModelID is accepted for
// compatibility with older clients; the effective model comes from the
// product catalog.
type AnalyzeRequest struct {
	Region   string   `json:"region"`
	ModelID  string   `json:"model_id"`
	Products []string `json:"products"`
	Pillar   string   `json:"pillar"`
}

// BatchAnalyzeRequest is the body of POST /api/batch-analyze.
type BatchAnalyzeRequest struct {
	Region   string   `json:"region"`
	ModelID  string   `json:"model_id"`
	Products []string `json:"products"`
	Pillars  []string `json:"pillars"`
}

// AnalyzeResponse is the success body of POST /api/analyze.
type AnalyzeResponse struct {
	Success          bool              `json:"success"`
	CombinedAnalysis *CombinedAnalysis `json:"combined_analysis"`
	Filepath         string            `json:"filepath"`
	WordFilepath     string            `json:"word_filepath,omitempty"`
	WordFilename     string            `json:"word_filename,omitempty"`
	Timestamp        string            `json:"timestamp"`
}

// BatchItemResult is the outcome of one (product, pillar) pair in a batch run.
type BatchItemResult struct {
	Product      string `json:"product"`
	Pillar       string `json:"pillar"`
	Success      bool   `json:"success"`
	Filepath     string `json:"filepath,omitempty"`
	WordFilepath string `json:"word_filepath,omitempty"`
	WordFilename string `json:"word_filename,omitempty"`
	Error        string `json:"error,omitempty"`
}

// BatchSummary counts batch outcomes.
type BatchSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// BatchAnalyzeResponse is the success body of POST /api/batch-analyze.
type BatchAnalyzeResponse struct {
	Success   bool              `json:"success"`
	Results   []BatchItemResult `json:"results"`
	Summary   BatchSummary      `json:"summary"`
	Timestamp string            `json:"timestamp"`
}

// GenerateWordRequest is the body of POST /api/generate-word: a client-supplied
// analysis with its document metadata.
type GenerateWordRequest struct {
	Metadata *DocumentMetadata `json:"metadata"`
	Analysis *PillarAnalysis   `json:"analysis"`
}

// GenerateWordResponse is the success body of the document generation endpoints.
type GenerateWordResponse struct {
	Success   bool   `json:"success"`
	Filepath  string `json:"filepath"`
	Filename  string `json:"filename"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ConnectionResponse is the body of GET /api/test-connection.
type ConnectionResponse struct {
	Connected bool   `json:"connected"`
	Timestamp string `json:"timestamp"`
}

// PillarsResponse is the body of GET /api/pillars.
type PillarsResponse struct {
	Pillars []string `json:"pillars"`
	Count   int      `json:"count"`
}

// ModelsResponse is the body of GET /api/models.
type ModelsResponse struct {
	Models []string `json:"models"`
	Count  int      `json:"count"`
}

// ReportsResponse is the body of GET /api/reports.
type ReportsResponse struct {
	Reports []StoredFile `json:"reports"`
}

// DocumentsResponse is the body of GET /api/word-documents.
type DocumentsResponse struct {
	Documents []StoredFile `json:"documents"`
}

// ClearHistoryResponse is the body of POST /api/clear-history.
type ClearHistoryResponse struct {
	Success      bool     `json:"success"`
	ClearedFiles []string `json:"cleared_files"`
	Count        int      `json:"count"`
	Timestamp    string   `json:"timestamp"`
}

// ServiceUnavailableResponse is the 503 body returned when the remote RAG
// service cannot serve an analysis.
type ServiceUnavailableResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details"`
}
