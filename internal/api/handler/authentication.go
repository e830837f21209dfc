package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Register cria o usuário a partir do formulário de cadastro
func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Register")

		var req domain.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user, err := service.Register(r.Context(), req)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao cadastrar usuário")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"user": user})
	}
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		user, err := service.GetMe(r.Context(), claims.UserID)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// ChangePassword permite que o usuário altere a própria senha
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ChangePassword")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.CurrentPassword == "" || req.NewPassword == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Senha atual e nova senha são obrigatórias", nil)
			return
		}

		if err := service.ChangePassword(r.Context(), claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
			writeUseCaseError(w, r, err, "Erro ao alterar senha")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Senha alterada com sucesso"})
	}
}

// UpsertProfile grava o perfil do usuário autenticado
func UpsertProfile(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertProfile")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.ProfileUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user, err := service.UpsertProfile(r.Context(), claims.UserID, req)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao salvar perfil")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// EmailVerifiedHook recebe a confirmação de email do provedor de autenticação.
// O segredo compartilhado é validado pelo middleware da rota.
func EmailVerifiedHook(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - EmailVerifiedHook")

		var hook domain.EmailVerifiedHook
		if err := json.NewDecoder(r.Body).Decode(&hook); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.MarkEmailVerified(r.Context(), hook); err != nil {
			writeUseCaseError(w, r, err, "Erro ao confirmar email")
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
