package payload

import (
	"piquante/internal/core"

	"github.com/jellydator/validation"
)

type SauceRequest struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Description  string `json:"description"`
	MainPepper   string `json:"mainPepper"`
	Heat         int    `json:"heat"`

	// Accepted for wire compatibility with the original client, never
	// trusted: ids, image URLs and rating state are computed server side.
	ID            string   `json:"_id"`
	UserID        string   `json:"userId"`
	ImageURL      string   `json:"imageUrl"`
	Likes         int      `json:"likes"`
	Dislikes      int      `json:"dislikes"`
	UsersLiked    []string `json:"usersLiked"`
	UsersDisliked []string `json:"usersDisliked"`
}

func (s SauceRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Manufacturer, validation.Required),
		validation.Field(&s.Description, validation.Required),
		validation.Field(&s.MainPepper, validation.Required),
		validation.Field(&s.Heat, validation.Min(1), validation.Max(10)),
	)
}

func (s SauceRequest) ToMessage() core.SauceMessage {
	return core.SauceMessage{
		Name:         s.Name,
		Manufacturer: s.Manufacturer,
		Description:  s.Description,
		MainPepper:   s.MainPepper,
		Heat:         s.Heat,
	}
}

type LikeRequest struct {
	UserID string `json:"userId"`
	Like   *int   `json:"like"`
}

func (l LikeRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.UserID, validation.Required),
		validation.Field(&l.Like, validation.NotNil, validation.In(1, 0, -1)),
	)
}
