package request

type ValidatePromptRequest struct {
	Prompt string `json:"prompt" binding:"required,max=2000"`
}
