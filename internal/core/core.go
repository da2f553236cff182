package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"piquante/internal/repository"
	tokenIssuer "piquante/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrEmailTaken error = errors.New("email already registered")
var ErrSauceNotFound error = errors.New("sauce not found")
var ErrAlreadyRated error = errors.New("duplicate rating action")

const tokenTTL = 24 * time.Hour
const bcryptCost = 10

// Piquante holds the business logic behind the sauce API.
type Piquante struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer TokenIssuer
	files     FileStore
}

func NewPiquante(logger *zap.SugaredLogger, repo Repository, jwt TokenIssuer, files FileStore) *Piquante {
	return &Piquante{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		files:     files,
	}
}

func (p *Piquante) Signup(ctx context.Context, msg SignupMessage) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Email:        msg.Email,
		PasswordHash: string(hash),
	}

	if err := p.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	p.logs.Infow("user registered", "userId", user.ID)
	return nil
}

func (p *Piquante) Login(ctx context.Context, msg LoginMessage) (LoginResult, error) {
	user, err := p.repo.GetUserByEmail(ctx, msg.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, ErrUserNotFound
		}
		return LoginResult{}, fmt.Errorf("get user by email: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return LoginResult{}, ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		Subject:    user.ID,
		Expiration: tokenTTL,
	}
	token := p.jwtIssuer.Generate(tokenInfo)
	signed, err := p.jwtIssuer.Sign(token)
	if err != nil {
		return LoginResult{}, fmt.Errorf("signing token: %w", err)
	}

	return LoginResult{UserID: user.ID, Token: signed}, nil
}

func (p *Piquante) ListSauces(ctx context.Context) ([]SauceRecord, error) {
	sauces, err := p.repo.GetSauces(ctx)
	if err != nil {
		return nil, fmt.Errorf("get sauces: %w", err)
	}

	reactions, err := p.repo.GetAllReactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get reactions: %w", err)
	}

	records := make([]SauceRecord, len(sauces))
	for i, sauce := range sauces {
		records[i] = toRecord(sauce, reactions)
	}

	return records, nil
}

func (p *Piquante) GetSauce(ctx context.Context, id string) (SauceRecord, error) {
	sauce, err := p.repo.GetSauceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSauceNotFound) {
			return SauceRecord{}, ErrSauceNotFound
		}
		return SauceRecord{}, fmt.Errorf("get sauce: %w", err)
	}

	reactions, err := p.repo.GetReactions(ctx, id)
	if err != nil {
		return SauceRecord{}, fmt.Errorf("get reactions: %w", err)
	}

	return toRecord(sauce, reactions), nil
}

// CreateSauce persists a new sauce owned by userID. The image has already
// been stored; imageURL points at it.
func (p *Piquante) CreateSauce(ctx context.Context, msg SauceMessage, userID, imageURL string) (SauceRecord, error) {
	sauce := repository.Sauce{
		ID:           uuid.NewString(),
		Name:         msg.Name,
		Manufacturer: msg.Manufacturer,
		Description:  msg.Description,
		MainPepper:   msg.MainPepper,
		ImageURL:     imageURL,
		Heat:         msg.Heat,
		UserID:       userID,
		Likes:        0,
		Dislikes:     0,
	}

	if err := p.repo.CreateSauce(ctx, sauce); err != nil {
		return SauceRecord{}, fmt.Errorf("create sauce: %w", err)
	}

	p.logs.Infow("sauce created", "sauceId", sauce.ID, "userId", userID)
	return toRecord(sauce, nil), nil
}

// UpdateSauce rewrites the client-writable fields of an existing sauce. A
// non-empty imageURL means a fresh upload replaces the previous file.
func (p *Piquante) UpdateSauce(ctx context.Context, id string, msg SauceMessage, imageURL string) error {
	sauce, err := p.repo.GetSauceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSauceNotFound) {
			return ErrSauceNotFound
		}
		return fmt.Errorf("get sauce: %w", err)
	}

	if imageURL != "" {
		p.removeImage(sauce)
		sauce.ImageURL = imageURL
	}

	sauce.Name = msg.Name
	sauce.Manufacturer = msg.Manufacturer
	sauce.Description = msg.Description
	sauce.MainPepper = msg.MainPepper
	sauce.Heat = msg.Heat

	if err := p.repo.UpdateSauce(ctx, sauce); err != nil {
		return fmt.Errorf("update sauce: %w", err)
	}

	return nil
}

func (p *Piquante) DeleteSauce(ctx context.Context, id string) error {
	sauce, err := p.repo.GetSauceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSauceNotFound) {
			return ErrSauceNotFound
		}
		return fmt.Errorf("get sauce: %w", err)
	}

	p.removeImage(sauce)

	if err := p.repo.DeleteSauce(ctx, id); err != nil {
		return fmt.Errorf("delete sauce: %w", err)
	}

	p.logs.Infow("sauce deleted", "sauceId", id)
	return nil
}

func (p *Piquante) RateSauce(ctx context.Context, sauceID string, msg RateMessage) error {
	err := p.repo.Rate(ctx, sauceID, msg.UserID, msg.Value)
	if err != nil {
		if errors.Is(err, repository.ErrSauceNotFound) {
			return ErrSauceNotFound
		}
		if errors.Is(err, repository.ErrAlreadyRated) {
			return ErrAlreadyRated
		}
		return fmt.Errorf("rate sauce: %w", err)
	}

	return nil
}

// removeImage deletes the stored file behind a sauce's image URL. Failures
// are logged so operators can spot orphaned files, never surfaced.
func (p *Piquante) removeImage(sauce repository.Sauce) {
	name := imageName(sauce.ImageURL)
	if name == "" {
		return
	}

	if err := p.files.Remove(name); err != nil {
		p.logs.Warnw("failed to remove image file", "error", err, "sauceId", sauce.ID, "file", name)
	}
}

func imageName(imageURL string) string {
	parts := strings.SplitN(imageURL, "/images/", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

func toRecord(sauce repository.Sauce, reactions []repository.Reaction) SauceRecord {
	liked := []string{}
	disliked := []string{}
	for _, reaction := range reactions {
		if reaction.SauceID != sauce.ID {
			continue
		}
		switch reaction.Value {
		case repository.ReactionLike:
			liked = append(liked, reaction.UserID)
		case repository.ReactionDislike:
			disliked = append(disliked, reaction.UserID)
		}
	}

	return SauceRecord{
		ID:            sauce.ID,
		Name:          sauce.Name,
		Manufacturer:  sauce.Manufacturer,
		Description:   sauce.Description,
		MainPepper:    sauce.MainPepper,
		ImageURL:      sauce.ImageURL,
		Heat:          sauce.Heat,
		UserID:        sauce.UserID,
		Likes:         sauce.Likes,
		Dislikes:      sauce.Dislikes,
		UsersLiked:    liked,
		UsersDisliked: disliked,
	}
}
