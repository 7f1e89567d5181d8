package types

type ChatbotRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

// ChatbotDataRequest is the action-dispatched admin payload. The knowledge
// fields are only read for add_knowledge.
type ChatbotDataRequest struct {
	Action     string  `json:"action"`
	Keywords   string  `json:"keywords"`
	ResponseEN string  `json:"response_en"`
	ResponseHI *string `json:"response_hi,omitempty"`
	ResponseTE *string `json:"response_te,omitempty"`
	ResponseKN *string `json:"response_kn,omitempty"`
	ResponseML *string `json:"response_ml,omitempty"`
	Source     *string `json:"source,omitempty"`
	Content    *string `json:"content,omitempty"`
}

// KnowledgeInput is the admin create body; also the YAML seed entry.
type KnowledgeInput struct {
	Keywords   string  `json:"keywords" yaml:"keywords"`
	ResponseEN string  `json:"response_en" yaml:"response_en"`
	ResponseHI *string `json:"response_hi,omitempty" yaml:"response_hi,omitempty"`
	ResponseTE *string `json:"response_te,omitempty" yaml:"response_te,omitempty"`
	ResponseKN *string `json:"response_kn,omitempty" yaml:"response_kn,omitempty"`
	ResponseML *string `json:"response_ml,omitempty" yaml:"response_ml,omitempty"`
	Source     *string `json:"source,omitempty" yaml:"source,omitempty"`
	Content    *string `json:"content,omitempty" yaml:"content,omitempty"`
}

// KnowledgeUpdate only touches the fields that are present.
type KnowledgeUpdate struct {
	Keywords   *string `json:"keywords,omitempty"`
	ResponseEN *string `json:"response_en,omitempty"`
	ResponseHI *string `json:"response_hi,omitempty"`
	ResponseTE *string `json:"response_te,omitempty"`
	ResponseKN *string `json:"response_kn,omitempty"`
	ResponseML *string `json:"response_ml,omitempty"`
	Source     *string `json:"source,omitempty"`
	Content    *string `json:"content,omitempty"`
}
