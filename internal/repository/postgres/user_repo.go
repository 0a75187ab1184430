package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"flavour_fusion/internal/model"
	"flavour_fusion/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const uniqueViolation = "23505"

// userDocument is the JSONB shape of a user row. Unlike model.User it keeps the password hash.
type userDocument struct {
	ProfilePicture string `json:"profile_picture"`
	FirstName      string `json:"firstname"`
	LastName       string `json:"lastname"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Admin          bool   `json:"admin"`
	CreatedAt      string `json:"created_at"`
}

// UserRepository stores users in the users table
type UserRepository struct {
	db Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user into the database
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	id := primitive.NewObjectID()
	doc, err := json.Marshal(userDocument{
		ProfilePicture: user.ProfilePicture,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		Password:       user.Password,
		Admin:          user.Admin,
		CreatedAt:      user.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	sql := `INSERT INTO users (id, doc) VALUES ($1, $2)`
	if _, err := r.db.Exec(ctx, sql, id.Hex(), doc); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = id
	return nil
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var (
		id  string
		raw []byte
	)
	sql := `SELECT id, doc FROM users WHERE doc->>'email' = $1`
	err := r.db.QueryRow(ctx, sql, email).Scan(&id, &raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	var doc userDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", id, err)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", id, err)
	}

	return &model.User{
		ID:             oid,
		ProfilePicture: doc.ProfilePicture,
		FirstName:      doc.FirstName,
		LastName:       doc.LastName,
		Email:          doc.Email,
		Password:       doc.Password,
		Admin:          doc.Admin,
		CreatedAt:      doc.CreatedAt,
	}, nil
}
