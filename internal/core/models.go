package core

// SauceRecord is the wire shape of a sauce, membership sets included.
type SauceRecord struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Manufacturer  string   `json:"manufacturer"`
	Description   string   `json:"description"`
	MainPepper    string   `json:"mainPepper"`
	ImageURL      string   `json:"imageUrl"`
	Heat          int      `json:"heat"`
	UserID        string   `json:"userId"`
	Likes         int      `json:"likes"`
	Dislikes      int      `json:"dislikes"`
	UsersLiked    []string `json:"usersLiked"`
	UsersDisliked []string `json:"usersDisliked"`
}

// SauceMessage carries the client-writable sauce fields. Counters, membership
// and creator are always computed server side.
type SauceMessage struct {
	Name         string
	Manufacturer string
	Description  string
	MainPepper   string
	Heat         int
}

type SignupMessage struct {
	Email    string
	Password string
}

type LoginMessage struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

type RateMessage struct {
	UserID string
	Value  int
}
