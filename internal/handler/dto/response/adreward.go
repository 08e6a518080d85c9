package response

import (
	"time"

	"dish-studio/internal/domain/adreward"
)

type RewardRequestResponse struct {
	OK        bool   `json:"ok"`
	RewardID  string `json:"rewardId"`
	Nonce     string `json:"nonce"`
	ExpiresAt string `json:"expiresAt"`
}

func FromRewardRequest(r *adreward.Reward) *RewardRequestResponse {
	return &RewardRequestResponse{
		OK:        true,
		RewardID:  r.ID.String(),
		Nonce:     r.Nonce,
		ExpiresAt: r.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

type RewardConfirmResponse struct {
	OK       bool   `json:"ok"`
	RewardID string `json:"rewardId"`
	Status   string `json:"status"`
	Replayed bool   `json:"replayed"`
}

func FromRewardConfirm(r *adreward.Reward, replayed bool) *RewardConfirmResponse {
	return &RewardConfirmResponse{
		OK:       true,
		RewardID: r.ID.String(),
		Status:   string(r.Status),
		Replayed: replayed,
	}
}
