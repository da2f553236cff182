package repository_test

import (
	"context"
	"errors"

	"piquante/internal/db"
	"piquante/internal/repository"
	"piquante/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SauceRepository", func() {
	var (
		repo        *repository.SauceRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewSauceRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		// repository transactions run against the same fake storage
		fakeStorage.TransactionStub = func(ctx context.Context, fn func(tx db.Store) error) error {
			return fn(fakeStorage)
		}
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			It("should migrate all three tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(3))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Sauce{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.Reaction{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		BeforeEach(func() {
			user = repository.User{
				ID:           "u1",
				Email:        "chili@example.com",
				PasswordHash: "$2a$10$hash",
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("the email is free", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should insert the user", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("email"))
				Expect(value).To(Equal(user.Email))

				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
				_, record := fakeStorage.SaveToTableArgsForCall(0)
				Expect(record).To(Equal(&user))
			})
		})

		When("the email is already registered", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(nil)
			})

			It("should return email taken error and skip the insert", func() {
				Expect(err).To(MatchError(repository.ErrEmailTaken))
				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(0))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
				fakeStorage.SaveToTableReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByEmail", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByEmail(ctx, "chili@example.com")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					*entity.(*repository.User) = repository.User{ID: "u1", Email: "chili@example.com"}
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal("u1"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("GetSauceByID", func() {
		var (
			sauce repository.Sauce
			err   error
		)

		JustBeforeEach(func() {
			sauce, err = repo.GetSauceByID(ctx, "s1")
		})

		When("the sauce exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					*entity.(*repository.Sauce) = repository.Sauce{ID: "s1", Name: "Habanero Gold"}
					return nil
				}
			})

			It("should return the sauce", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(sauce.Name).To(Equal("Habanero Gold"))

				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("id"))
				Expect(value).To(Equal("s1"))
			})
		})

		When("the sauce does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return sauce not found error", func() {
				Expect(err).To(MatchError(repository.ErrSauceNotFound))
			})
		})
	})

	Describe("GetReactions", func() {
		var (
			reactions []repository.Reaction
			err       error
		)

		JustBeforeEach(func() {
			reactions, err = repo.GetReactions(ctx, "s1")
		})

		When("reactions exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, entity any) error {
					*entity.(*[]repository.Reaction) = []repository.Reaction{
						{SauceID: "s1", UserID: "u1", Value: repository.ReactionLike},
					}
					return nil
				}
			})

			It("should query by sauce id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(reactions).To(HaveLen(1))

				_, column, value, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(column).To(Equal("sauce_id"))
				Expect(value).To(Equal("s1"))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteSauce", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteSauce(ctx, "s1")
		})

		When("the delete succeeds", func() {
			It("removes reactions and the sauce in one transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.TransactionCallCount()).To(Equal(1))

				Expect(fakeStorage.DeleteWhereCallCount()).To(Equal(2))
				_, conds, model := fakeStorage.DeleteWhereArgsForCall(0)
				Expect(conds).To(Equal(map[string]any{"sauce_id": "s1"}))
				Expect(model).To(BeAssignableToTypeOf(&repository.Reaction{}))

				_, conds, model = fakeStorage.DeleteWhereArgsForCall(1)
				Expect(conds).To(Equal(map[string]any{"id": "s1"}))
				Expect(model).To(BeAssignableToTypeOf(&repository.Sauce{}))
			})
		})

		When("deleting reactions fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(fakeErr)
			})

			It("should return the error without touching the sauce", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.DeleteWhereCallCount()).To(Equal(1))
			})
		})
	})

	Describe("Rate", func() {
		var (
			value int
			err   error
		)

		BeforeEach(func() {
			value = repository.ReactionLike

			// sauce exists by default
			fakeStorage.GetOneByStub = func(ctx context.Context, column string, v any, entity any) error {
				*entity.(*repository.Sauce) = repository.Sauce{ID: "s1"}
				return nil
			}
		})

		JustBeforeEach(func() {
			err = repo.Rate(ctx, "s1", "u1", value)
		})

		When("the sauce does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = nil
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return sauce not found error", func() {
				Expect(err).To(MatchError(repository.ErrSauceNotFound))
			})
		})

		When("a user likes an unrated sauce", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereReturns(db.ErrNotFound)
			})

			It("inserts the reaction and bumps the likes counter", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
				_, record := fakeStorage.SaveToTableArgsForCall(0)
				Expect(record).To(Equal(&repository.Reaction{
					SauceID: "s1",
					UserID:  "u1",
					Value:   repository.ReactionLike,
				}))

				Expect(fakeStorage.IncrementCallCount()).To(Equal(1))
				_, _, column, delta, conds := fakeStorage.IncrementArgsForCall(0)
				Expect(column).To(Equal("likes"))
				Expect(delta).To(Equal(1))
				Expect(conds).To(Equal(map[string]any{"id": "s1"}))
			})
		})

		When("a user repeats the same like", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereStub = func(ctx context.Context, conds map[string]any, entity any) error {
					*entity.(*repository.Reaction) = repository.Reaction{
						SauceID: "s1", UserID: "u1", Value: repository.ReactionLike,
					}
					return nil
				}
			})

			It("should return already rated error without touching counters", func() {
				Expect(err).To(MatchError(repository.ErrAlreadyRated))
				Expect(fakeStorage.IncrementCallCount()).To(Equal(0))
				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(0))
			})
		})

		When("a user likes a sauce they previously disliked", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereStub = func(ctx context.Context, conds map[string]any, entity any) error {
					*entity.(*repository.Reaction) = repository.Reaction{
						SauceID: "s1", UserID: "u1", Value: repository.ReactionDislike,
					}
					return nil
				}
			})

			It("moves the reaction and adjusts both counters", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.SaveCallCount()).To(Equal(1))
				_, record := fakeStorage.SaveArgsForCall(0)
				Expect(record).To(Equal(&repository.Reaction{
					SauceID: "s1", UserID: "u1", Value: repository.ReactionLike,
				}))

				Expect(fakeStorage.IncrementCallCount()).To(Equal(2))
				_, _, column, delta, _ := fakeStorage.IncrementArgsForCall(0)
				Expect(column).To(Equal("dislikes"))
				Expect(delta).To(Equal(-1))

				_, _, column, delta, _ = fakeStorage.IncrementArgsForCall(1)
				Expect(column).To(Equal("likes"))
				Expect(delta).To(Equal(1))
			})
		})

		When("a user resets a dislike to neutral", func() {
			BeforeEach(func() {
				value = repository.ReactionNeutral
				fakeStorage.GetOneWhereStub = func(ctx context.Context, conds map[string]any, entity any) error {
					*entity.(*repository.Reaction) = repository.Reaction{
						SauceID: "s1", UserID: "u1", Value: repository.ReactionDislike,
					}
					return nil
				}
			})

			It("deletes the reaction and drops the dislikes counter", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.DeleteWhereCallCount()).To(Equal(1))
				_, conds, model := fakeStorage.DeleteWhereArgsForCall(0)
				Expect(conds).To(Equal(map[string]any{"sauce_id": "s1", "user_id": "u1"}))
				Expect(model).To(BeAssignableToTypeOf(&repository.Reaction{}))

				Expect(fakeStorage.IncrementCallCount()).To(Equal(1))
				_, _, column, delta, _ := fakeStorage.IncrementArgsForCall(0)
				Expect(column).To(Equal("dislikes"))
				Expect(delta).To(Equal(-1))
			})
		})

		When("a user resets a sauce they never rated", func() {
			BeforeEach(func() {
				value = repository.ReactionNeutral
				fakeStorage.GetOneWhereReturns(db.ErrNotFound)
			})

			It("should be a no-op", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.DeleteWhereCallCount()).To(Equal(0))
				Expect(fakeStorage.IncrementCallCount()).To(Equal(0))
			})
		})

		When("the value is outside the allowed set", func() {
			BeforeEach(func() {
				value = 2
				fakeStorage.GetOneWhereReturns(db.ErrNotFound)
			})

			It("should return an error", func() {
				Expect(err).To(HaveOccurred())
				Expect(fakeStorage.IncrementCallCount()).To(Equal(0))
			})
		})
	})
})
