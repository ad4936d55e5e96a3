package http

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/gulfhr/payroll-backend-go/internal/handler/http/response"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Token(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	jwtService jwt.Service
	apiKey     string
}

func NewAuthHandler(jwtService jwt.Service, apiKey string) AuthHandler {
	return &authHandlerImpl{jwtService: jwtService, apiKey: apiKey}
}

type tokenRequest struct {
	APIKey string `json:"api_key"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}

// Token exchanges the deployment API key for a short-lived access token.
func (h *authHandlerImpl) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(h.apiKey)) != 1 {
		response.Unauthorized(w, "Invalid API key")
		return
	}

	token, expiresAt, err := h.jwtService.GenerateAccessToken("payroll-api")
	if err != nil {
		response.InternalServerError(w, "Failed to issue token")
		return
	}

	response.Success(w, tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}
