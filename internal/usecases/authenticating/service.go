package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/infrastructure/repository"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	errorcodes "github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// Perfil atribuído a quem se cadastra pelo formulário público
const defaultRoleID = 2

type Authenticator interface {
	Register(ctx context.Context, request domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetMe(ctx context.Context, userID string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	UpsertProfile(ctx context.Context, userID string, profile domain.ProfileUpsertRequest) (*domain.User, error)
	MarkEmailVerified(ctx context.Context, hook domain.EmailVerifiedHook) error
	ValidatePasswordStrength(password string) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *Service) Register(ctx context.Context, request domain.RegisterRequest) (*domain.User, error) {
	email := handleEmail(request.Email)
	if email == "" || request.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	if !strings.Contains(email, "@") {
		return nil, NewAuthError(ErrInvalidFormat, errorcodes.ErrInvalidFormat, "Email inválido")
	}

	if request.Password != request.ConfirmPassword {
		return nil, NewAuthError(ErrPasswordMismatch, errorcodes.ErrInvalidFormat, "As senhas não conferem")
	}

	if err := s.ValidatePasswordStrength(request.Password); err != nil {
		return nil, NewAuthError(ErrWeakPassword, errorcodes.ErrInvalidFormat, err.Error())
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, errorcodes.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(err, errorcodes.ErrInternalServer, "Erro ao processar senha")
	}

	user := &domain.User{
		Email:         email,
		PasswordHash:  string(hashedPassword),
		Name:          trimmed(request.Name),
		Company:       trimmed(request.Company),
		Role:          trimmed(request.Role),
		Timezone:      trimmed(request.Timezone),
		Language:      trimmed(request.Language),
		RoleID:        defaultRoleID,
		EmailVerified: false,
	}

	user, err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, NewAuthError(ErrUserAlreadyExists, errorcodes.ErrUserAlreadyExists, "Email já cadastrado")
		}
		logrus.WithError(err).Error("Erro ao criar usuário")
		return nil, NewAuthError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	logrus.WithField("user_id", user.ID).Info("Usuário cadastrado")
	return user, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	// Mesma resposta para email desconhecido e senha errada
	if user == nil {
		return "", NewAuthError(ErrInvalidCredentials, errorcodes.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, errorcodes.ErrInvalidCredentials, user.ID, "Email ou senha incorretos")
	}

	if s.cfg.Auth.RequireVerifiedEmail && !user.EmailVerified {
		return "", NewUserAuthError(ErrEmailNotVerified, errorcodes.ErrEmailNotVerified, user.ID, "Confirme seu email antes de entrar")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserID:     user.ID,
		UserEmail:  user.Email,
		UserName:   user.Name,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

// ValidateToken devolve as claims do token. Erros de expiração são
// preservados para que o middleware responda com o código correto.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) GetMe(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, NewUserAuthError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, "Erro ao buscar usuário")
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

// ChangePassword permite que um usuário altere sua própria senha.
// A senha atual precisa conferir e a nova precisa atender aos requisitos de segurança.
func (s *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Senha atual e nova senha são obrigatórias")
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return NewUserAuthError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, "Erro ao buscar usuário")
	}
	if user == nil {
		return NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidCredentials, errorcodes.ErrInvalidCredentials, userID, "Senha atual incorreta")
	}

	if currentPassword == newPassword {
		return NewUserAuthError(ErrSamePassword, errorcodes.ErrInvalidFormat, userID, "A nova senha deve ser diferente da atual")
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return NewUserAuthError(ErrWeakPassword, errorcodes.ErrInvalidFormat, userID, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return NewAuthError(err, errorcodes.ErrInternalServer, "Erro ao processar senha")
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		return NewUserAuthError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, "Erro ao atualizar senha")
	}

	return nil
}

// UpsertProfile grava os dados de perfil do usuário autenticado
func (s *Service) UpsertProfile(ctx context.Context, userID string, profile domain.ProfileUpsertRequest) (*domain.User, error) {
	profile = domain.ProfileUpsertRequest{
		Name:     trimmed(profile.Name),
		Company:  trimmed(profile.Company),
		Role:     trimmed(profile.Role),
		Timezone: trimmed(profile.Timezone),
		Language: trimmed(profile.Language),
	}

	user, err := s.userRepo.UpsertProfile(ctx, userID, profile)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, userID, "Usuário não encontrado")
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao gravar perfil")
		return nil, NewUserAuthError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, "Erro ao gravar perfil")
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

// MarkEmailVerified processa o aviso do provedor de autenticação
func (s *Service) MarkEmailVerified(ctx context.Context, hook domain.EmailVerifiedHook) error {
	userID := strings.TrimSpace(hook.Record.ID)
	if userID == "" {
		return NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "record.id é obrigatório")
	}
	if _, err := uuid.Parse(userID); err != nil {
		return NewAuthError(ErrInvalidFormat, errorcodes.ErrInvalidFormat, "record.id deve ser um UUID")
	}

	var email *string
	if hook.Record.Email != nil {
		normalized := handleEmail(*hook.Record.Email)
		if normalized != "" {
			email = &normalized
		}
	}

	if err := s.userRepo.MarkEmailVerified(ctx, userID, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, userID, "Usuário não encontrado")
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao marcar email verificado")
		return NewUserAuthError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, "Erro ao marcar email verificado")
	}

	logrus.WithField("user_id", userID).Info("Email verificado")
	return nil
}

// ValidatePasswordStrength verifica se a senha atende aos requisitos de segurança.
// Senha deve conter pelo menos 8 caracteres, incluindo maiúsculas, minúsculas, números e caracteres especiais.
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("a senha deve conter pelo menos 8 caracteres")
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	)

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("a senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return errors.New("a senha deve conter pelo menos uma letra minúscula")
	}
	if !hasNumber {
		return errors.New("a senha deve conter pelo menos um número")
	}
	if !hasSpecial {
		return errors.New("a senha deve conter pelo menos um caractere especial")
	}

	return nil
}
