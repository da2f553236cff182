package repository

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Sauce struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Name         string `gorm:"type:varchar(255);not null"`
	Manufacturer string `gorm:"type:varchar(255)"`
	Description  string `gorm:"type:text"`
	MainPepper   string `gorm:"type:varchar(255)"`
	ImageURL     string `gorm:"not null"`
	Heat         int    `gorm:"not null;default:0"`
	UserID       string `gorm:"size:36;not null;index"` // creator
	Likes        int    `gorm:"not null;default:0"`
	Dislikes     int    `gorm:"not null;default:0"`
}

// Reaction holds one user's rating of one sauce. The composite primary key
// keeps a user out of both camps at once.
type Reaction struct {
	SauceID string `gorm:"primaryKey;size:36"`
	UserID  string `gorm:"primaryKey;size:36"`
	Value   int    `gorm:"not null"` // ReactionLike or ReactionDislike
}

const (
	ReactionLike    = 1
	ReactionNeutral = 0
	ReactionDislike = -1
)
