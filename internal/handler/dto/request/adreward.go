package request

type ConfirmRewardRequest struct {
	Nonce          string `json:"nonce" binding:"required,max=128"`
	IdempotencyKey string `json:"idempotencyKey" binding:"required,idemkey"`
}
