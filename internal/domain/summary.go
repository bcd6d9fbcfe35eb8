package domain

// DefaultLanguage is the language summaries are produced in before any
// translation step.
const DefaultLanguage = "en"

// Defaults applied when a request omits the length window (or sends zero,
// which clients treat the same as omitting).
const (
	DefaultMaxLength = 150
	DefaultMinLength = 50
)

// SummarizeRequest carries one summarization job through the pipeline.
// MaxLength and MinLength are word counts, not token counts.
type SummarizeRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
	MaxLength      int    `json:"max_length"`
	MinLength      int    `json:"min_length"`
}

// SummaryResult is the response payload shared by the text and upload
// endpoints. Length fields are whitespace-delimited word counts.
type SummaryResult struct {
	Summary        string `json:"summary"`
	Language       string `json:"language"`
	OriginalLength int    `json:"original_length"`
	SummaryLength  int    `json:"summary_length"`
}

// UploadResult extends SummaryResult with the uploaded file's name and the
// text that was extracted from it.
type UploadResult struct {
	SummaryResult
	Filename     string `json:"filename"`
	OriginalText string `json:"original_text"`
}

// Language is one entry of the supported-languages list.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SupportedLanguages returns the languages summaries can be translated into,
// in a stable order.
func SupportedLanguages() []Language {
	return []Language{
		{Code: "en", Name: "English"},
		{Code: "hi", Name: "Hindi"},
		{Code: "ta", Name: "Tamil"},
		{Code: "te", Name: "Telugu"},
		{Code: "kn", Name: "Kannada"},
		{Code: "ml", Name: "Malayalam"},
		{Code: "bn", Name: "Bengali"},
		{Code: "gu", Name: "Gujarati"},
		{Code: "mr", Name: "Marathi"},
		{Code: "pa", Name: "Punjabi"},
		{Code: "ur", Name: "Urdu"},
		{Code: "sa", Name: "Sanskrit"},
	}
}

// Model loading states as reported by ModelStatus.
const (
	ModelStateNotLoaded = "not_loaded"
	ModelStateLoading   = "loading"
	ModelStateLoaded    = "loaded"
	ModelStateFailed    = "failed"
)

// ModelStatus is the snapshot returned by the model status endpoint.
type ModelStatus struct {
	State string `json:"status"`
	Model string `json:"model"`
	Error string `json:"error,omitempty"`
}
