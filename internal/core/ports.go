package core

import (
	"context"
	"piquante/internal/repository"
	tokenIssuer "piquante/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	GetSauces(ctx context.Context) ([]repository.Sauce, error)
	GetSauceByID(ctx context.Context, id string) (repository.Sauce, error)
	GetReactions(ctx context.Context, sauceID string) ([]repository.Reaction, error)
	GetAllReactions(ctx context.Context) ([]repository.Reaction, error)
	CreateSauce(ctx context.Context, sauce repository.Sauce) error
	UpdateSauce(ctx context.Context, sauce repository.Sauce) error
	DeleteSauce(ctx context.Context, id string) error
	Rate(ctx context.Context, sauceID, userID string, value int) error
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}

//counterfeiter:generate -o fake -fake-name FileStore . FileStore
type FileStore interface {
	Remove(name string) error
}
