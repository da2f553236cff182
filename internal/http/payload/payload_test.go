package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"piquante/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeValidator", func() {
	var (
		dv  payload.DecodeValidator
		req *http.Request
	)

	jsonRequest := func(body string) *http.Request {
		r := httptest.NewRequest("POST", "/", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		return r
	}

	Describe("SignupRequest", func() {
		var signup payload.SignupRequest

		BeforeEach(func() {
			signup = payload.SignupRequest{}
		})

		When("email and password are present", func() {
			BeforeEach(func() {
				req = jsonRequest(`{"email":"chili@example.com","password":"hotsauce"}`)
			})

			It("decodes the payload", func() {
				Expect(dv.DecodeAndValidateJSONPayload(req, &signup)).To(Succeed())
				Expect(signup.Email).To(Equal("chili@example.com"))
			})
		})

		When("the email is malformed", func() {
			BeforeEach(func() {
				req = jsonRequest(`{"email":"not-an-email","password":"hotsauce"}`)
			})

			It("rejects the payload", func() {
				err := dv.DecodeAndValidateJSONPayload(req, &signup)
				Expect(err).To(MatchError(ContainSubstring("email")))
			})
		})

		When("the password is missing", func() {
			BeforeEach(func() {
				req = jsonRequest(`{"email":"chili@example.com"}`)
			})

			It("rejects the payload", func() {
				err := dv.DecodeAndValidateJSONPayload(req, &signup)
				Expect(err).To(MatchError(ContainSubstring("password")))
			})
		})

		When("the body is not JSON", func() {
			BeforeEach(func() {
				req = jsonRequest(`{{{`)
			})

			It("rejects the payload", func() {
				err := dv.DecodeAndValidateJSONPayload(req, &signup)
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})
	})

	Describe("SauceRequest", func() {
		var sauce payload.SauceRequest

		BeforeEach(func() {
			sauce = payload.SauceRequest{}
		})

		When("the sauce travels inside a multipart form field", func() {
			It("decodes from the raw JSON string", func() {
				raw := `{"name":"Habanero Gold","manufacturer":"Hot Stuff Co","description":"bright","mainPepper":"habanero","heat":7}`
				Expect(dv.DecodeAndValidateJSONString(raw, &sauce)).To(Succeed())
				Expect(sauce.Heat).To(Equal(7))
			})
		})

		When("heat falls outside 1..10", func() {
			It("rejects the payload", func() {
				raw := `{"name":"Habanero Gold","manufacturer":"Hot Stuff Co","description":"bright","mainPepper":"habanero","heat":11}`
				err := dv.DecodeAndValidateJSONString(raw, &sauce)
				Expect(err).To(MatchError(ContainSubstring("heat")))
			})
		})

		When("a required field is missing", func() {
			It("rejects the payload", func() {
				raw := `{"name":"Habanero Gold","heat":7}`
				err := dv.DecodeAndValidateJSONString(raw, &sauce)
				Expect(err).To(HaveOccurred())
			})
		})

		When("derived fields ride along", func() {
			It("accepts them without complaint", func() {
				raw := `{"name":"Habanero Gold","manufacturer":"Hot Stuff Co","description":"bright","mainPepper":"habanero","heat":7,"likes":99,"usersLiked":["u9"]}`
				Expect(dv.DecodeAndValidateJSONString(raw, &sauce)).To(Succeed())
			})
		})
	})

	Describe("LikeRequest", func() {
		var like payload.LikeRequest

		BeforeEach(func() {
			like = payload.LikeRequest{}
		})

		When("the like value is in the allowed set", func() {
			It("accepts 1, 0 and -1", func() {
				for _, raw := range []string{
					`{"userId":"u1","like":1}`,
					`{"userId":"u1","like":0}`,
					`{"userId":"u1","like":-1}`,
				} {
					like = payload.LikeRequest{}
					Expect(dv.DecodeAndValidateJSONString(raw, &like)).To(Succeed())
				}
			})
		})

		When("the like value is outside the allowed set", func() {
			It("rejects the payload", func() {
				err := dv.DecodeAndValidateJSONString(`{"userId":"u1","like":2}`, &like)
				Expect(err).To(MatchError(ContainSubstring("like")))
			})
		})

		When("the like value is absent", func() {
			It("rejects the payload", func() {
				err := dv.DecodeAndValidateJSONString(`{"userId":"u1"}`, &like)
				Expect(err).To(MatchError(ContainSubstring("like")))
			})
		})

		When("the user id is absent", func() {
			It("rejects the payload", func() {
				err := dv.DecodeAndValidateJSONString(`{"like":1}`, &like)
				Expect(err).To(MatchError(ContainSubstring("userId")))
			})
		})
	})
})
