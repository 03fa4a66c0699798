package dto

type CreatePaymentIntentRequest struct {
	AmountParcel int64 `json:"amountParcel"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
