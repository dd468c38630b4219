package domain

import "strings"

// Review connects one user to one game with a rating and a comment. The two
// back references (user's reviews, game's reviews) are owned jointly and must
// always be mutated together; repository implementations are the only call
// sites allowed to do that.
type Review struct {
	ID      int    `json:"review_id" gorm:"primaryKey;column:id;autoIncrement"`
	UserID  int    `json:"-" gorm:"index;not null"`
	GameID  int    `json:"-" gorm:"index;not null"`
	Rating  int    `json:"rating" gorm:"not null"`
	Comment string `json:"comment" gorm:"type:varchar(255);not null"`
	User    *User  `json:"-" gorm:"foreignKey:UserID"`
	Game    *Game  `json:"-" gorm:"foreignKey:GameID"`
}

// TableName specifies the table name for Review
func (r Review) TableName() string {
	return "reviews"
}

// NewReview creates a review after validating its owning references and the
// rating range. The entity is never created in an invalid state.
func NewReview(user *User, game *Game, rating int, comment string) (*Review, error) {
	if user == nil {
		return nil, NewInvalidEntityError("review requires a user")
	}
	if game == nil {
		return nil, NewInvalidEntityError("review requires a game")
	}
	review := &Review{
		UserID:  user.ID,
		GameID:  game.ID,
		User:    user,
		Game:    game,
		Comment: strings.TrimSpace(comment),
	}
	if err := review.SetRating(rating); err != nil {
		return nil, err
	}
	return review, nil
}

// SetRating validates the 0..5 rating range on every mutation.
func (r *Review) SetRating(rating int) error {
	if rating < 0 || rating > 5 {
		return NewInvalidEntityError("rating must be an integer between 0 and 5")
	}
	r.Rating = rating
	return nil
}

// SetComment replaces the comment, trimmed.
func (r *Review) SetComment(comment string) {
	r.Comment = strings.TrimSpace(comment)
}

// Username returns the owning user's normalized name, empty when the back
// reference is not loaded.
func (r *Review) Username() string {
	if r.User == nil {
		return ""
	}
	return r.User.Username
}

// Equal reports review equality: same user, same game, same comment.
func (r *Review) Equal(other *Review) bool {
	if other == nil {
		return false
	}
	if r.User == nil || other.User == nil || r.Game == nil || other.Game == nil {
		return r.UserID == other.UserID && r.GameID == other.GameID && r.Comment == other.Comment
	}
	return r.User.Equal(other.User) && r.Game.Equal(other.Game) && r.Comment == other.Comment
}
