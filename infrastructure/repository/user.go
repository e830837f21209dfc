package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vfg2006/influencer-hub-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

const usersTable = "users"

var userColumns = []string{
	"id", "email", "password_hash", "name", "company", "role", "timezone",
	"language", "role_id", "email_verified", "created_at", "updated_at",
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpsertProfile(ctx context.Context, userID string, profile domain.ProfileUpsertRequest) (*domain.User, error)
	MarkEmailVerified(ctx context.Context, userID string, email *string) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	usersSQL, args, err := squirrel.
		Insert(usersTable).
		Columns("id", "email", "password_hash", "name", "company", "role", "timezone", "language", "role_id", "email_verified").
		Values(user.ID, user.Email, user.PasswordHash, user.Name, user.Company, user.Role, user.Timezone, user.Language, user.RoleID, user.EmailVerified).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando insert de usuário")
	}

	if err := r.conn.QueryRowContext(ctx, usersSQL, args...).Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, translate(err, "criando usuário")
	}

	return user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Expr("LOWER(email) = LOWER(?)", email))
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": userID})
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Sqlizer) (*domain.User, error) {
	usersSQL, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando consulta de usuário")
	}

	var user domain.User
	err = r.conn.QueryRowContext(ctx, usersSQL, args...).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Company,
		&user.Role,
		&user.Timezone,
		&user.Language,
		&user.RoleID,
		&user.EmailVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "consultando usuário")
	}

	return &user, nil
}

// UpsertProfile substitui os campos de perfil do usuário autenticado.
// A linha em users é criada no cadastro; campos ausentes ficam nulos.
func (r *userRepository) UpsertProfile(ctx context.Context, userID string, profile domain.ProfileUpsertRequest) (*domain.User, error) {
	usersSQL, args, err := squirrel.
		Update(usersTable).
		Set("name", profile.Name).
		Set("company", profile.Company).
		Set("role", profile.Role).
		Set("timezone", profile.Timezone).
		Set("language", profile.Language).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando atualização de perfil")
	}

	if err := r.execAffectingOne(ctx, usersSQL, args, "atualizando perfil"); err != nil {
		return nil, err
	}

	return r.GetUserByID(ctx, userID)
}

// MarkEmailVerified marca o email como verificado, atualizando o endereço quando informado
func (r *userRepository) MarkEmailVerified(ctx context.Context, userID string, email *string) error {
	query := squirrel.
		Update(usersTable).
		Set("email_verified", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	if email != nil && *email != "" {
		query = query.Set("email", *email)
	}

	usersSQL, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "montando verificação de email")
	}

	return r.execAffectingOne(ctx, usersSQL, args, "marcando email verificado")
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	usersSQL, args, err := squirrel.
		Update(usersTable).
		Set("password_hash", passwordHash).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "montando atualização de senha")
	}

	return r.execAffectingOne(ctx, usersSQL, args, "atualizando senha")
}

func (r *userRepository) execAffectingOne(ctx context.Context, query string, args []interface{}, msg string) error {
	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translate(err, msg)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, msg)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
