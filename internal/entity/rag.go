package entity

// RAGQueryRequest is the wire payload of the remote query endpoint. The
// service expects lowercase regions and names the model field RAGmodelId.
type RAGQueryRequest struct {
	Question string `json:"question"`
	Region   string `json:"region"`
	ModelID  string `json:"RAGmodelId"`
	Context  string `json:"context"`
}

// RAGResponseData is the data object of a successful query response.
type RAGResponseData struct {
	Question      string   `json:"question"`
	Region        string   `json:"region"`
	ModelIDs      []string `json:"model_ids"`
	Answer        string   `json:"answer"`
	ContextUsed   bool     `json:"context_used"`
	ModelsQueried int      `json:"models_queried"`
}

// RAGResponseMetadata carries service-side bookkeeping about a query.
type RAGResponseMetadata struct {
	APIVersion     string `json:"api_version"`
	Timestamp      string `json:"timestamp"`
	ResponseLength int    `json:"response_length"`
	QueryType      string `json:"query_type"`
}

// RAGResponse is the full remote response envelope. Status "success" with a
// populated data object marks a usable answer; anything else is informative
// at best.
type RAGResponse struct {
	Status   string               `json:"status"`
	Data     *RAGResponseData     `json:"data,omitempty"`
	Metadata *RAGResponseMetadata `json:"metadata,omitempty"`
	Message  string               `json:"message,omitempty"`
}

// Answer returns the answer text of a usable response, or "" when the
// response carries no data.
func (r *RAGResponse) Answer() string {
	if r == nil || r.Data == nil {
		return ""
	}
	return r.Data.Answer
}
