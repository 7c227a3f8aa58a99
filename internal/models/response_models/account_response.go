package response_models

type TokenResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}
