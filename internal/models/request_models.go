package models

const (
	FORMAT_PLAIN    = "plain"
	FORMAT_MARKDOWN = "markdown"
)

type AnalyzeRequest struct {
	Text   string `json:"text" form:"text"`
	Format string `json:"format" form:"format" binding:"omitempty,oneof=plain markdown"`
}

func (r AnalyzeRequest) IsMarkdown() bool {
	return r.Format == FORMAT_MARKDOWN
}

type ErrorResponse struct {
	Error string `json:"error"`
}
