package response

import (
	"dish-studio/internal/usecase/commands"
	"dish-studio/internal/usecase/queries"
)

// StatusProcessing is what clients see for every non-terminal request state.
const StatusProcessing = "PROCESSING"

type GenerateResponse struct {
	OK        bool   `json:"ok"`
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
	Replayed  bool   `json:"replayed"`
}

func FromGenerateResult(r *commands.GenerateResult) *GenerateResponse {
	status := StatusProcessing
	if r.Status.IsTerminal() {
		status = r.Status.String()
	}
	return &GenerateResponse{
		OK:        true,
		RequestID: r.RequestID.String(),
		Status:    status,
		Replayed:  r.Replayed,
	}
}

type CreationStatusResponse struct {
	OK        bool    `json:"ok"`
	RequestID string  `json:"requestId"`
	Status    string  `json:"status"`
	DishID    *string `json:"dishId"`
	ImageURL  *string `json:"imageUrl"`
}

func FromCreationStatus(v *queries.CreationStatusView) *CreationStatusResponse {
	res := &CreationStatusResponse{
		OK:        true,
		RequestID: v.RequestID.String(),
		Status:    v.Status,
		ImageURL:  v.ImageURL,
	}
	if v.DishID != nil {
		id := v.DishID.String()
		res.DishID = &id
	}
	return res
}
