package response

import "github.com/google/uuid"

type SignupResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	UserID      uuid.UUID `json:"userId"`
	Role        string    `json:"role"`
}
