package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-hub-api/infrastructure/repository"
	"github.com/vfg2006/influencer-hub-api/infrastructure/repository/mocks"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const strongPassword = "Senha@Forte1"

func newTestService(t *testing.T, requireVerified bool) (*Service, *mocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{SecretKey: "segredo-de-teste"}
	cfg.Auth.TokenTTL = time.Hour
	cfg.Auth.RequireVerifiedEmail = requireVerified

	return NewService(userRepo, cfg), userRepo
}

func hashed(t *testing.T, password string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func strPtr(s string) *string {
	return &s
}

func assertAuthCode(t *testing.T, err error, base error, code string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, base)

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, code, authErr.Code)
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name     string
		request  domain.RegisterRequest
		setup    func(repo *mocks.MockUserRepository)
		wantErr  error
		wantCode string
	}{
		{
			name:     "Sem senha - deve retornar erro de dados obrigatórios",
			request:  domain.RegisterRequest{Email: "ana@exemplo.com"},
			setup:    func(repo *mocks.MockUserRepository) {},
			wantErr:  ErrMissingRequiredData,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Senhas diferentes - deve retornar erro de confirmação",
			request:  domain.RegisterRequest{Email: "ana@exemplo.com", Password: strongPassword, ConfirmPassword: "Outra@Senha1"},
			setup:    func(repo *mocks.MockUserRepository) {},
			wantErr:  ErrPasswordMismatch,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:     "Senha fraca - deve retornar erro de validação",
			request:  domain.RegisterRequest{Email: "ana@exemplo.com", Password: "fraca", ConfirmPassword: "fraca"},
			setup:    func(repo *mocks.MockUserRepository) {},
			wantErr:  ErrWeakPassword,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:    "Email já cadastrado - deve retornar conflito",
			request: domain.RegisterRequest{Email: "ana@exemplo.com", Password: strongPassword, ConfirmPassword: strongPassword},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@exemplo.com").Return(&domain.User{ID: "u1"}, nil)
			},
			wantErr:  ErrUserAlreadyExists,
			wantCode: apiErrors.ErrUserAlreadyExists,
		},
		{
			name:    "Corrida no cadastro - violação de unicidade vira conflito",
			request: domain.RegisterRequest{Email: "ana@exemplo.com", Password: strongPassword, ConfirmPassword: strongPassword},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@exemplo.com").Return(nil, nil)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, repository.ErrAlreadyExists)
			},
			wantErr:  ErrUserAlreadyExists,
			wantCode: apiErrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t, true)
			tt.setup(repo)

			user, err := service.Register(context.Background(), tt.request)

			assert.Nil(t, user)
			assertAuthCode(t, err, tt.wantErr, tt.wantCode)
		})
	}
}

func TestService_Register_Success(t *testing.T) {
	service, repo := newTestService(t, true)

	repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@exemplo.com").Return(nil, nil)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, "ana@exemplo.com", user.Email)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strongPassword)))
			assert.Equal(t, defaultRoleID, user.RoleID)
			assert.False(t, user.EmailVerified)
			require.NotNil(t, user.Company)
			assert.Equal(t, "Acme", *user.Company)
			assert.Nil(t, user.Role, "texto em branco vira nulo")

			user.ID = "u1"
			return user, nil
		})

	user, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:           "  Ana@Exemplo.com ",
		Password:        strongPassword,
		ConfirmPassword: strongPassword,
		Company:         strPtr(" Acme "),
		Role:            strPtr("  "),
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name            string
		requireVerified bool
		user            *domain.User
		password        string
		wantErr         error
		wantCode        string
	}{
		{
			name:     "Usuário inexistente - deve retornar credenciais inválidas",
			password: strongPassword,
			wantErr:  ErrInvalidCredentials,
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "Senha errada - deve retornar credenciais inválidas",
			user:     &domain.User{ID: "u1", Email: "ana@exemplo.com", EmailVerified: true},
			password: "errada",
			wantErr:  ErrInvalidCredentials,
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:            "Email não verificado - deve bloquear quando exigido",
			requireVerified: true,
			user:            &domain.User{ID: "u1", Email: "ana@exemplo.com"},
			password:        strongPassword,
			wantErr:         ErrEmailNotVerified,
			wantCode:        apiErrors.ErrEmailNotVerified,
		},
		{
			name:     "Email não verificado - deve permitir quando não exigido",
			user:     &domain.User{ID: "u1", Email: "ana@exemplo.com", RoleID: 2},
			password: strongPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t, tt.requireVerified)
			if tt.user != nil {
				tt.user.PasswordHash = hashed(t, strongPassword)
			}
			repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@exemplo.com").Return(tt.user, nil)

			token, err := service.Login(context.Background(), "ANA@exemplo.com", tt.password)

			if tt.wantErr != nil {
				assert.Empty(t, token)
				assertAuthCode(t, err, tt.wantErr, tt.wantCode)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, "u1", claims.UserID)
			assert.Equal(t, 2, claims.UserRoleID)
		})
	}
}

func TestService_ValidateToken_Expired(t *testing.T) {
	service, _ := newTestService(t, false)

	issuedAt := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issuedAt }
	token, err := service.generateJWT(&domain.User{ID: "u1"})
	require.NoError(t, err)

	service.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	claims, err := service.ValidateToken(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestService_ValidateToken_WrongSecret(t *testing.T) {
	service, _ := newTestService(t, false)
	token, err := service.generateJWT(&domain.User{ID: "u1"})
	require.NoError(t, err)

	service.cfg = &config.Config{SecretKey: "outro"}
	_, err = service.ValidateToken(token)

	assert.Error(t, err)
}

func TestService_ChangePassword(t *testing.T) {
	t.Run("Senha atual incorreta - deve recusar", func(t *testing.T) {
		service, repo := newTestService(t, false)
		repo.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&domain.User{ID: "u1", PasswordHash: hashed(t, strongPassword)}, nil)

		err := service.ChangePassword(context.Background(), "u1", "errada", "Nova@Senha2")

		assertAuthCode(t, err, ErrInvalidCredentials, apiErrors.ErrInvalidCredentials)
	})

	t.Run("Mesma senha - deve recusar", func(t *testing.T) {
		service, repo := newTestService(t, false)
		repo.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&domain.User{ID: "u1", PasswordHash: hashed(t, strongPassword)}, nil)

		err := service.ChangePassword(context.Background(), "u1", strongPassword, strongPassword)

		assertAuthCode(t, err, ErrSamePassword, apiErrors.ErrInvalidFormat)
	})

	t.Run("Troca válida - deve gravar novo hash", func(t *testing.T) {
		service, repo := newTestService(t, false)
		repo.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&domain.User{ID: "u1", PasswordHash: hashed(t, strongPassword)}, nil)
		repo.EXPECT().
			UpdatePassword(gomock.Any(), "u1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Nova@Senha2")))
				return nil
			})

		require.NoError(t, service.ChangePassword(context.Background(), "u1", strongPassword, "Nova@Senha2"))
	})
}

func TestService_UpsertProfile(t *testing.T) {
	service, repo := newTestService(t, false)

	repo.EXPECT().
		UpsertProfile(gomock.Any(), "u1", domain.ProfileUpsertRequest{Name: strPtr("Ana"), Timezone: strPtr("America/Sao_Paulo")}).
		Return(&domain.User{ID: "u1", PasswordHash: "hash", Name: strPtr("Ana")}, nil)

	user, err := service.UpsertProfile(context.Background(), "u1", domain.ProfileUpsertRequest{
		Name:     strPtr(" Ana "),
		Company:  strPtr(""),
		Timezone: strPtr("America/Sao_Paulo"),
	})

	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}

const (
	verifiedUserID = "8d4e2f10-3c5a-4b7e-9f21-0a1b2c3d4e5f"
	missingUserID  = "c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e5f"
)

func TestService_MarkEmailVerified(t *testing.T) {
	t.Run("Sem record.id - deve retornar erro de validação", func(t *testing.T) {
		service, _ := newTestService(t, false)

		err := service.MarkEmailVerified(context.Background(), domain.EmailVerifiedHook{})

		assertAuthCode(t, err, ErrMissingRequiredData, apiErrors.ErrMissingRequiredData)
	})

	t.Run("record.id fora do formato UUID - deve retornar VAL_003", func(t *testing.T) {
		service, _ := newTestService(t, false)

		var hook domain.EmailVerifiedHook
		hook.Record.ID = "abc"
		err := service.MarkEmailVerified(context.Background(), hook)

		assertAuthCode(t, err, ErrInvalidFormat, apiErrors.ErrInvalidFormat)
	})

	t.Run("Usuário inexistente - deve retornar não encontrado", func(t *testing.T) {
		service, repo := newTestService(t, false)
		repo.EXPECT().MarkEmailVerified(gomock.Any(), missingUserID, nil).Return(repository.ErrNotFound)

		var hook domain.EmailVerifiedHook
		hook.Record.ID = missingUserID
		err := service.MarkEmailVerified(context.Background(), hook)

		assertAuthCode(t, err, ErrUserNotFound, apiErrors.ErrUserNotFound)
	})

	t.Run("Email informado - deve ser normalizado", func(t *testing.T) {
		service, repo := newTestService(t, false)
		repo.EXPECT().MarkEmailVerified(gomock.Any(), verifiedUserID, strPtr("ana@exemplo.com")).Return(nil)

		var hook domain.EmailVerifiedHook
		hook.Record.ID = verifiedUserID
		hook.Record.Email = strPtr(" Ana@Exemplo.com")

		require.NoError(t, service.MarkEmailVerified(context.Background(), hook))
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t, false)

	assert.NoError(t, service.ValidatePasswordStrength(strongPassword))
	assert.Error(t, service.ValidatePasswordStrength("Curta@1"))
	assert.Error(t, service.ValidatePasswordStrength("semmaiuscula@1"))
	assert.Error(t, service.ValidatePasswordStrength("SEMMINUSCULA@1"))
	assert.Error(t, service.ValidatePasswordStrength("SemNumero@@"))
	assert.Error(t, service.ValidatePasswordStrength("SemEspecial12"))
}
