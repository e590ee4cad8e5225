package entity

// Conversation phases of a pillar analysis.
const (
	PhaseInitialOverview  = "initial_overview"
	PhaseDetailedInsights = "detailed_insights"
)

// ConversationEntry records a single question/answer exchange with the RAG service.
type ConversationEntry struct {
	Phase     string `json:"phase"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
}

// PillarAnalysis is the result of analyzing one (product, pillar) pair.
// Questions, answers and the conversation flow are parallel lists in asked order.
// The struct is immutable once returned by the analyzer and is persisted verbatim.
type PillarAnalysis struct {
	Pillar           string              `json:"pillar"`
	Product          string              `json:"product"`
	Region           string              `json:"region"`
	ModelID          string              `json:"model_id"`
	QuestionsAsked   []string            `json:"questions_asked"`
	Answers          []string            `json:"answers"`
	ConversationFlow []ConversationEntry `json:"conversation_flow"`
	KeyPoints        []string            `json:"key_points"`
	APICallsMade     int                 `json:"api_calls_made"`
	Summary          string              `json:"summary"`
	Timestamp        string              `json:"timestamp"`
}

// ProductAnalysis pairs a product name with its pillar analysis inside a
// combined multi-product record.
type ProductAnalysis struct {
	Product  string          `json:"product"`
	Analysis *PillarAnalysis `json:"analysis"`
}

// CombinedAnalysis aggregates the per-product analyses of one pillar/region
// request. Combined answers and key points carry a "[Product] " prefix so the
// origin of each fragment stays visible after merging.
type CombinedAnalysis struct {
	Pillar            string            `json:"pillar"`
	Region            string            `json:"region"`
	Products          []string          `json:"products"`
	CombinedAnswers   []string          `json:"combined_answers"`
	CombinedKeyPoints []string          `json:"combined_key_points"`
	ProductAnalyses   []ProductAnalysis `json:"product_analyses"`
	TotalAPICalls     int               `json:"total_api_calls"`
	Timestamp         string            `json:"timestamp"`
}

// DocumentMetadata is the footer metadata rendered into generated documents.
// Product is free-form because combined documents carry a product list.
type DocumentMetadata struct {
	Pillar       string `json:"pillar"`
	Product      any    `json:"product"`
	Region       string `json:"region"`
	Timestamp    string `json:"timestamp"`
	APICallsMade int    `json:"api_calls_made"`
}

// StoredFile describes one file in an output directory listing.
type StoredFile struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Created  string `json:"created"`
	Modified string `json:"modified"`
}
