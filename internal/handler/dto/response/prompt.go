package response

import (
	"dish-studio/internal/domain/creation"
)

type ValidatePromptResponse struct {
	OK               bool   `json:"ok"`
	ValidationID     string `json:"validationId"`
	Decision         string `json:"decision"`
	Reason           string `json:"reason,omitempty"`
	TranslatedPrompt string `json:"translatedPrompt"`
}

func FromValidation(v *creation.Validation) *ValidatePromptResponse {
	return &ValidatePromptResponse{
		OK:               true,
		ValidationID:     v.ID.String(),
		Decision:         string(v.Decision),
		Reason:           v.Reason,
		TranslatedPrompt: v.TranslatedPrompt,
	}
}
