package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/cloud-spend-api/internal/usecases/authenticating"
	"github.com/vfg2006/cloud-spend-api/pkg/apiErrors"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
	"github.com/vfg2006/cloud-spend-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{"token": token})
	}
}

func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if authenticating.IsCredentialsError(err) {
			log.ForContext(r.Context()).WithError(err).Warn("login: credenciais rejeitadas")
		} else {
			log.ForContext(r.Context()).WithError(err).Error("login: erro ao autenticar")
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("login: erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar login", nil)
}

// GetMe retorna as claims do token atual
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"email":   claims.UserEmail,
			"role_id": claims.UserRoleID,
		})
	}
}
