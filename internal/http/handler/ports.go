package handler

import (
	"context"
	"net/http"

	"piquante/internal/core"
	"piquante/internal/upload"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserService . UserService
type UserService interface {
	Signup(ctx context.Context, msg core.SignupMessage) error
	Login(ctx context.Context, msg core.LoginMessage) (core.LoginResult, error)
}

//counterfeiter:generate -o fake -fake-name SauceService . SauceService
type SauceService interface {
	ListSauces(ctx context.Context) ([]core.SauceRecord, error)
	GetSauce(ctx context.Context, id string) (core.SauceRecord, error)
	CreateSauce(ctx context.Context, msg core.SauceMessage, userID, imageURL string) (core.SauceRecord, error)
	UpdateSauce(ctx context.Context, id string, msg core.SauceMessage, imageURL string) error
	DeleteSauce(ctx context.Context, id string) error
	RateSauce(ctx context.Context, sauceID string, msg core.RateMessage) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
	DecodeAndValidateJSONString(raw string, object any) error
}

//counterfeiter:generate -o fake -fake-name FileReceiver . FileReceiver
type FileReceiver interface {
	Receive(r *http.Request) (upload.StoredFile, error)
	Remove(name string) error
}
