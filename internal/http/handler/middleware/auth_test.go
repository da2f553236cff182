package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"piquante/internal/http/handler/middleware"
	"piquante/internal/http/handler/middleware/fake"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AuthMiddleware", func() {
	var (
		auth         *middleware.AuthMiddleware
		fakeVerifier *fake.TokenVerifier
		w            *httptest.ResponseRecorder
		req          *http.Request

		nextCalled bool
		nextUserId string
		guarded    http.Handler
	)

	BeforeEach(func() {
		fakeVerifier = new(fake.TokenVerifier)
		auth = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeVerifier)

		nextCalled = false
		nextUserId = ""
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			if v, ok := r.Context().Value(middleware.UserIDKey).(string); ok {
				nextUserId = v
			}
		})
		guarded = auth.Guard(next)

		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/sauces", nil)
	})

	JustBeforeEach(func() {
		guarded.ServeHTTP(w, req)
	})

	When("the bearer token is valid", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer good.token")
			fakeVerifier.ValidateReturns(jwt.MapClaims{"sub": "u1"}, nil)
		})

		It("puts the token subject in the request context and calls through", func() {
			Expect(nextCalled).To(BeTrue())
			Expect(nextUserId).To(Equal("u1"))

			Expect(fakeVerifier.ValidateCallCount()).To(Equal(1))
			Expect(fakeVerifier.ValidateArgsForCall(0)).To(Equal("good.token"))
		})
	})

	When("the authorization header is missing", func() {
		It("should return status 401", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("Unauthorized"))
			Expect(fakeVerifier.ValidateCallCount()).To(Equal(0))
		})
	})

	When("the header is not in Bearer format", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		})

		It("should return status 401", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(fakeVerifier.ValidateCallCount()).To(Equal(0))
		})
	})

	When("the token is invalid or expired", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer bad.token")
			fakeVerifier.ValidateReturns(nil, errors.New("token is expired"))
		})

		It("should return status 401", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	When("the token carries no subject", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer odd.token")
			fakeVerifier.ValidateReturns(jwt.MapClaims{}, nil)
		})

		It("should return status 401", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
