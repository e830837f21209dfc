package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/internal/search"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/searching"
	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
)

// SearchOptions retorna as palavras-chave disponíveis e as campanhas do usuário
func SearchOptions(service searching.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SearchOptions")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		options, err := service.Options(r.Context(), claims.UserID)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao carregar opções de busca")
			return
		}

		writeJSON(w, http.StatusOK, options)
	}
}

// SearchInfluencers executa a busca com os filtros da query string
func SearchInfluencers(service searching.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SearchInfluencers")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()

		form, err := search.FormFromQuery(query)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		filters, err := form.Submit()
		if err != nil {
			if errors.Is(err, search.ErrNoPlatformSelected) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		// Sem page, a sessão decide: mantém a página atual ou volta para 1 se os filtros mudaram
		page := 0
		if raw := strings.TrimSpace(query.Get("page")); raw != "" {
			page, err = strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page deve ser numérico", nil)
				return
			}
		}

		result, err := service.Search(r.Context(), claims.UserID, filters, page)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao buscar influenciadores")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// ListInfluencers retorna as contas exibidas na página inicial
func ListInfluencers(service searching.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.Home(r.Context())
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao listar influenciadores")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"influencers": rows})
	}
}

func GetInfluencer(service searching.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do influenciador não fornecido", nil)
			return
		}

		account, err := service.Detail(r.Context(), accountID)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao carregar influenciador")
			return
		}

		writeJSON(w, http.StatusOK, account)
	}
}
