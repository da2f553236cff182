package repository

import (
	"context"
	"errors"
	"fmt"
	"piquante/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrEmailTaken error = errors.New("email already registered")
var ErrSauceNotFound error = errors.New("sauce not found")
var ErrAlreadyRated error = errors.New("sauce already rated by user")

type SauceRepository struct {
	db Storage
}

func NewSauceRepository(db Storage) *SauceRepository {
	return &SauceRepository{
		db: db,
	}
}

func (r *SauceRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Sauce{}, &Reaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *SauceRepository) CreateUser(ctx context.Context, user User) error {
	var existing User
	err := r.db.GetOneBy(ctx, "email", user.Email, &existing)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("check email: %w", err)
	}

	if err := r.db.SaveToTable(ctx, &user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *SauceRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "email", email, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}

func (r *SauceRepository) GetSauces(ctx context.Context) ([]Sauce, error) {
	sauces := []Sauce{}
	if err := r.db.GetAll(ctx, &sauces); err != nil {
		return nil, fmt.Errorf("get all sauces: %w", err)
	}

	return sauces, nil
}

func (r *SauceRepository) GetSauceByID(ctx context.Context, id string) (Sauce, error) {
	var sauce Sauce

	err := r.db.GetOneBy(ctx, "id", id, &sauce)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Sauce{}, ErrSauceNotFound
		}
		return Sauce{}, fmt.Errorf("get sauce by id: %w", err)
	}

	return sauce, nil
}

func (r *SauceRepository) GetReactions(ctx context.Context, sauceID string) ([]Reaction, error) {
	reactions := []Reaction{}
	if err := r.db.GetAllBy(ctx, "sauce_id", sauceID, &reactions); err != nil {
		return nil, fmt.Errorf("get reactions: %w", err)
	}

	return reactions, nil
}

func (r *SauceRepository) GetAllReactions(ctx context.Context) ([]Reaction, error) {
	reactions := []Reaction{}
	if err := r.db.GetAll(ctx, &reactions); err != nil {
		return nil, fmt.Errorf("get all reactions: %w", err)
	}

	return reactions, nil
}

func (r *SauceRepository) CreateSauce(ctx context.Context, sauce Sauce) error {
	if err := r.db.SaveToTable(ctx, &sauce); err != nil {
		return fmt.Errorf("create sauce: %w", err)
	}

	return nil
}

func (r *SauceRepository) UpdateSauce(ctx context.Context, sauce Sauce) error {
	if err := r.db.Save(ctx, &sauce); err != nil {
		return fmt.Errorf("update sauce: %w", err)
	}

	return nil
}

func (r *SauceRepository) DeleteSauce(ctx context.Context, id string) error {
	return r.db.Transaction(ctx, func(tx Storage) error {
		if err := tx.DeleteWhere(ctx, map[string]any{"sauce_id": id}, &Reaction{}); err != nil {
			return fmt.Errorf("delete reactions: %w", err)
		}
		if err := tx.DeleteWhere(ctx, map[string]any{"id": id}, &Sauce{}); err != nil {
			return fmt.Errorf("delete sauce: %w", err)
		}
		return nil
	})
}

// Rate applies a like, dislike or neutral action for one user on one sauce.
// The membership check and the counter update run in a single transaction so
// concurrent requests cannot produce a count/membership mismatch.
func (r *SauceRepository) Rate(ctx context.Context, sauceID, userID string, value int) error {
	return r.db.Transaction(ctx, func(tx Storage) error {
		var sauce Sauce
		if err := tx.GetOneBy(ctx, "id", sauceID, &sauce); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return ErrSauceNotFound
			}
			return fmt.Errorf("get sauce: %w", err)
		}

		conds := map[string]any{"sauce_id": sauceID, "user_id": userID}
		sauceCond := map[string]any{"id": sauceID}

		var existing Reaction
		err := tx.GetOneWhere(ctx, conds, &existing)
		if err != nil && !errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("get reaction: %w", err)
		}
		found := err == nil

		switch value {
		case ReactionNeutral:
			if !found {
				return nil
			}
			if err := tx.DeleteWhere(ctx, conds, &Reaction{}); err != nil {
				return fmt.Errorf("delete reaction: %w", err)
			}
			if err := tx.Increment(ctx, &Sauce{}, counterColumn(existing.Value), -1, sauceCond); err != nil {
				return fmt.Errorf("decrement counter: %w", err)
			}
			return nil
		case ReactionLike, ReactionDislike:
			if found && existing.Value == value {
				return ErrAlreadyRated
			}
			if found {
				// switching sides: move the reaction, adjust both counters
				existing.Value = value
				if err := tx.Save(ctx, &existing); err != nil {
					return fmt.Errorf("update reaction: %w", err)
				}
				if err := tx.Increment(ctx, &Sauce{}, counterColumn(-value), -1, sauceCond); err != nil {
					return fmt.Errorf("decrement counter: %w", err)
				}
			} else {
				reaction := Reaction{SauceID: sauceID, UserID: userID, Value: value}
				if err := tx.SaveToTable(ctx, &reaction); err != nil {
					return fmt.Errorf("insert reaction: %w", err)
				}
			}
			if err := tx.Increment(ctx, &Sauce{}, counterColumn(value), 1, sauceCond); err != nil {
				return fmt.Errorf("increment counter: %w", err)
			}
			return nil
		default:
			return fmt.Errorf("unsupported rating value: %d", value)
		}
	})
}

func counterColumn(value int) string {
	if value == ReactionLike {
		return "likes"
	}
	return "dislikes"
}
