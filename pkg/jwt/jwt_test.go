package jwt_test

import (
	"time"

	tokenIssuer "piquante/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		secret  []byte
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		secret = []byte("test-secret")
		service = tokenIssuer.NewJWTService(secret)
		info = tokenIssuer.TokenInfo{
			Subject:    "user-1",
			Expiration: 24 * time.Hour,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate", func() {
		It("builds an HS512 token with subject and expiry claims", func() {
			now := time.Now()
			tokenIssuer.TimeNow = func() time.Time { return now }

			token := service.Generate(info)
			Expect(token.Method).To(Equal(jwt.SigningMethodHS512))

			claims, ok := token.Claims.(jwt.MapClaims)
			Expect(ok).To(BeTrue())
			Expect(claims["sub"]).To(Equal("user-1"))
			Expect(claims["iat"]).To(Equal(now.Unix()))
			Expect(claims["exp"]).To(Equal(now.Add(24 * time.Hour).Unix()))
		})
	})

	Describe("Sign and Validate", func() {
		When("the token is current and signed with the right secret", func() {
			It("round-trips the claims", func() {
				signed, err := service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())
				Expect(signed).NotTo(BeEmpty())

				claims, err := service.Validate(signed)
				Expect(err).NotTo(HaveOccurred())
				Expect(claims["sub"]).To(Equal("user-1"))
			})
		})

		When("the token is signed with a different secret", func() {
			It("should return token not valid error", func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				signed, err := other.Sign(other.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token has expired", func() {
			It("should return an error", func() {
				issued := time.Now().Add(-48 * time.Hour)
				tokenIssuer.TimeNow = func() time.Time { return issued }

				signed, err := service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				tokenIssuer.TimeNow = time.Now
				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token uses a non-HMAC signing method", func() {
			It("should return token not valid error", func() {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"})
				signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token string is garbage", func() {
			It("should return token not valid error", func() {
				_, err := service.Validate("not.a.token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})
})
