package core_test

import (
	"context"
	"errors"
	"time"

	"piquante/internal/core"
	"piquante/internal/core/fake"
	"piquante/internal/repository"
	tokenIssuer "piquante/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Piquante", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.TokenIssuer
		fakeFiles  *fake.FileStore
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		piquante *core.Piquante

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.TokenIssuer)
		fakeFiles = new(fake.FileStore)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		piquante = core.NewPiquante(fakeLogger, fakeRepo, fakeJWT, fakeFiles)

		fakeErr = errors.New("fake error")
	})

	Describe("Signup", func() {
		var (
			msg core.SignupMessage
			err error
		)

		BeforeEach(func() {
			msg = core.SignupMessage{
				Email:    "chili@example.com",
				Password: "hotsauce",
			}
		})

		JustBeforeEach(func() {
			err = piquante.Signup(ctx, msg)
		})

		When("the email is free", func() {
			It("stores a user with a bcrypt hash, never the raw password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))

				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.ID).NotTo(BeEmpty())
				Expect(user.Email).To(Equal(msg.Email))
				Expect(user.PasswordHash).NotTo(Equal(msg.Password))
				Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password))).To(Succeed())
			})
		})

		When("the email is already registered", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrEmailTaken)
			})

			It("should return email taken error", func() {
				Expect(err).To(MatchError(core.ErrEmailTaken))
			})
		})

		When("saving the user fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			msg            core.LoginMessage
			result         core.LoginResult
			err            error
			userId         string
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.New().String()
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			msg = core.LoginMessage{
				Email:    "chili@example.com",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			result, err = piquante.Login(ctx, msg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{
					ID:           userId,
					Email:        msg.Email,
					PasswordHash: hashedPassword,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return the user id and a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.UserID).To(Equal(userId))
				Expect(result.Token).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserByEmailCallCount()).To(Equal(1))
				_, email := fakeRepo.GetUserByEmailArgsForCall(0)
				Expect(email).To(Equal(msg.Email))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenIssuer.TokenInfo{
					Subject:    userId,
					Expiration: 24 * time.Hour,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{
					ID:           userId,
					Email:        msg.Email,
					PasswordHash: hashedPassword,
				}, nil)
				msg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{
					ID:           userId,
					Email:        msg.Email,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("signup followed by login", func() {
		It("accepts the same credentials end to end", func() {
			var saved repository.User
			fakeRepo.CreateUserStub = func(ctx context.Context, user repository.User) error {
				saved = user
				return nil
			}

			msg := core.SignupMessage{Email: "chili@example.com", Password: "hotsauce"}
			Expect(piquante.Signup(ctx, msg)).To(Succeed())

			fakeRepo.GetUserByEmailReturns(saved, nil)
			fakeJWT.GenerateReturns(jwt.New(jwt.SigningMethodHS512))
			fakeJWT.SignReturns("signed.token", nil)

			result, err := piquante.Login(ctx, core.LoginMessage{Email: msg.Email, Password: msg.Password})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.UserID).To(Equal(saved.ID))
			Expect(result.Token).To(Equal("signed.token"))

			_, err = piquante.Login(ctx, core.LoginMessage{Email: msg.Email, Password: "wrong"})
			Expect(err).To(MatchError(core.ErrIncorrectPassword))
		})
	})

	Describe("ListSauces", func() {
		var (
			records []core.SauceRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = piquante.ListSauces(ctx)
		})

		When("sauces exist", func() {
			BeforeEach(func() {
				fakeRepo.GetSaucesReturns([]repository.Sauce{
					{ID: "s1", Name: "Habanero Gold", Likes: 2, Dislikes: 1},
					{ID: "s2", Name: "Ghost Fire"},
				}, nil)
				fakeRepo.GetAllReactionsReturns([]repository.Reaction{
					{SauceID: "s1", UserID: "u1", Value: repository.ReactionLike},
					{SauceID: "s1", UserID: "u2", Value: repository.ReactionLike},
					{SauceID: "s1", UserID: "u3", Value: repository.ReactionDislike},
					{SauceID: "s2", UserID: "u1", Value: repository.ReactionDislike},
				}, nil)
			})

			It("attaches each sauce's voters to its record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))

				Expect(records[0].UsersLiked).To(ConsistOf("u1", "u2"))
				Expect(records[0].UsersDisliked).To(ConsistOf("u3"))
				Expect(records[1].UsersLiked).To(BeEmpty())
				Expect(records[1].UsersDisliked).To(ConsistOf("u1"))
			})
		})

		When("no sauces exist", func() {
			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
			})
		})

		When("fetching sauces fails", func() {
			BeforeEach(func() {
				fakeRepo.GetSaucesReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetSauce", func() {
		var (
			record core.SauceRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = piquante.GetSauce(ctx, "s1")
		})

		When("the sauce exists", func() {
			BeforeEach(func() {
				fakeRepo.GetSauceByIDReturns(repository.Sauce{ID: "s1", Name: "Habanero Gold", Likes: 1}, nil)
				fakeRepo.GetReactionsReturns([]repository.Reaction{
					{SauceID: "s1", UserID: "u1", Value: repository.ReactionLike},
				}, nil)
			})

			It("should return the record with voters", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal("s1"))
				Expect(record.UsersLiked).To(ConsistOf("u1"))

				_, sauceId := fakeRepo.GetReactionsArgsForCall(0)
				Expect(sauceId).To(Equal("s1"))
			})
		})

		When("the sauce does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetSauceByIDReturns(repository.Sauce{}, repository.ErrSauceNotFound)
			})

			It("should return not found error", func() {
				Expect(err).To(MatchError(core.ErrSauceNotFound))
			})
		})
	})

	Describe("CreateSauce", func() {
		var (
			msg    core.SauceMessage
			record core.SauceRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.SauceMessage{
				Name:         "Habanero Gold",
				Manufacturer: "Hot Stuff Co",
				Description:  "bright and fruity",
				MainPepper:   "habanero",
				Heat:         7,
			}
		})

		JustBeforeEach(func() {
			record, err = piquante.CreateSauce(ctx, msg, "owner-1", "http://localhost:3000/images/habanero.jpg")
		})

		When("the save succeeds", func() {
			It("persists the sauce with zeroed counters and owner set", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateSauceCallCount()).To(Equal(1))

				_, sauce := fakeRepo.CreateSauceArgsForCall(0)
				Expect(sauce.ID).NotTo(BeEmpty())
				Expect(sauce.UserID).To(Equal("owner-1"))
				Expect(sauce.ImageURL).To(Equal("http://localhost:3000/images/habanero.jpg"))
				Expect(sauce.Likes).To(Equal(0))
				Expect(sauce.Dislikes).To(Equal(0))

				Expect(record.Name).To(Equal(msg.Name))
				Expect(record.UsersLiked).To(BeEmpty())
				Expect(record.UsersDisliked).To(BeEmpty())
			})
		})

		When("the save fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateSauceReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateSauce", func() {
		var (
			msg      core.SauceMessage
			imageURL string
			err      error
			stored   repository.Sauce
		)

		BeforeEach(func() {
			stored = repository.Sauce{
				ID:           "s1",
				Name:         "Habanero Gold",
				Manufacturer: "Hot Stuff Co",
				ImageURL:     "http://localhost:3000/images/old.jpg",
				Heat:         7,
				UserID:       "owner-1",
				Likes:        4,
				Dislikes:     1,
			}
			fakeRepo.GetSauceByIDReturns(stored, nil)

			msg = core.SauceMessage{
				Name:         "Habanero Platinum",
				Manufacturer: "Hot Stuff Co",
				Description:  "reworked recipe",
				MainPepper:   "habanero",
				Heat:         9,
			}
			imageURL = ""
		})

		JustBeforeEach(func() {
			err = piquante.UpdateSauce(ctx, "s1", msg, imageURL)
		})

		When("no new image is uploaded", func() {
			It("rewrites the writable fields and keeps image and counters", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeFiles.RemoveCallCount()).To(Equal(0))

				Expect(fakeRepo.UpdateSauceCallCount()).To(Equal(1))
				_, sauce := fakeRepo.UpdateSauceArgsForCall(0)
				Expect(sauce.Name).To(Equal("Habanero Platinum"))
				Expect(sauce.Heat).To(Equal(9))
				Expect(sauce.ImageURL).To(Equal(stored.ImageURL))
				Expect(sauce.UserID).To(Equal("owner-1"))
				Expect(sauce.Likes).To(Equal(4))
				Expect(sauce.Dislikes).To(Equal(1))
			})
		})

		When("a new image replaces the old one", func() {
			BeforeEach(func() {
				imageURL = "http://localhost:3000/images/new.jpg"
			})

			It("removes the previous file and stores the new URL", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeFiles.RemoveCallCount()).To(Equal(1))
				Expect(fakeFiles.RemoveArgsForCall(0)).To(Equal("old.jpg"))

				_, sauce := fakeRepo.UpdateSauceArgsForCall(0)
				Expect(sauce.ImageURL).To(Equal(imageURL))
			})
		})

		When("removing the previous file fails", func() {
			BeforeEach(func() {
				imageURL = "http://localhost:3000/images/new.jpg"
				fakeFiles.RemoveReturns(fakeErr)
			})

			It("still performs the update", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.UpdateSauceCallCount()).To(Equal(1))
			})
		})

		When("the sauce does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetSauceByIDReturns(repository.Sauce{}, repository.ErrSauceNotFound)
			})

			It("should return not found error", func() {
				Expect(err).To(MatchError(core.ErrSauceNotFound))
				Expect(fakeRepo.UpdateSauceCallCount()).To(Equal(0))
			})
		})
	})

	Describe("DeleteSauce", func() {
		var err error

		BeforeEach(func() {
			fakeRepo.GetSauceByIDReturns(repository.Sauce{
				ID:       "s1",
				ImageURL: "http://localhost:3000/images/habanero.jpg",
			}, nil)
		})

		JustBeforeEach(func() {
			err = piquante.DeleteSauce(ctx, "s1")
		})

		When("the sauce exists", func() {
			It("removes the image file and the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeFiles.RemoveCallCount()).To(Equal(1))
				Expect(fakeFiles.RemoveArgsForCall(0)).To(Equal("habanero.jpg"))

				Expect(fakeRepo.DeleteSauceCallCount()).To(Equal(1))
				_, id := fakeRepo.DeleteSauceArgsForCall(0)
				Expect(id).To(Equal("s1"))
			})
		})

		When("the file removal fails", func() {
			BeforeEach(func() {
				fakeFiles.RemoveReturns(fakeErr)
			})

			It("still deletes the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.DeleteSauceCallCount()).To(Equal(1))
			})
		})

		When("the sauce does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetSauceByIDReturns(repository.Sauce{}, repository.ErrSauceNotFound)
			})

			It("should return not found error", func() {
				Expect(err).To(MatchError(core.ErrSauceNotFound))
				Expect(fakeFiles.RemoveCallCount()).To(Equal(0))
				Expect(fakeRepo.DeleteSauceCallCount()).To(Equal(0))
			})
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteSauceReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("RateSauce", func() {
		var (
			msg core.RateMessage
			err error
		)

		BeforeEach(func() {
			msg = core.RateMessage{UserID: "u1", Value: repository.ReactionLike}
		})

		JustBeforeEach(func() {
			err = piquante.RateSauce(ctx, "s1", msg)
		})

		When("the vote is recorded", func() {
			It("passes sauce, user and value to the repository", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.RateCallCount()).To(Equal(1))

				_, sauceId, userId, value := fakeRepo.RateArgsForCall(0)
				Expect(sauceId).To(Equal("s1"))
				Expect(userId).To(Equal("u1"))
				Expect(value).To(Equal(repository.ReactionLike))
			})
		})

		When("the sauce does not exist", func() {
			BeforeEach(func() {
				fakeRepo.RateReturns(repository.ErrSauceNotFound)
			})

			It("should return not found error", func() {
				Expect(err).To(MatchError(core.ErrSauceNotFound))
			})
		})

		When("the user already cast the same vote", func() {
			BeforeEach(func() {
				fakeRepo.RateReturns(repository.ErrAlreadyRated)
			})

			It("should return already rated error", func() {
				Expect(err).To(MatchError(core.ErrAlreadyRated))
			})
		})

		When("the vote fails", func() {
			BeforeEach(func() {
				fakeRepo.RateReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
