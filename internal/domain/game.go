package domain

import (
	"strings"
	"time"
)

// ReleaseDateLayout is the calendar format game release dates are stored in,
// e.g. "Oct 21, 2008".
const ReleaseDateLayout = "Jan 2, 2006"

// Publisher is a value-like entity identified by its name.
type Publisher struct {
	Name string `json:"name" gorm:"primaryKey;column:name;type:varchar(255)"`
}

// NewPublisher creates a publisher. An empty or blank name yields the absent
// publisher (empty name).
func NewPublisher(name string) Publisher {
	return Publisher{Name: strings.TrimSpace(name)}
}

// TableName specifies the table name for Publisher
func (p Publisher) TableName() string {
	return "publishers"
}

// Genre is a value-like entity identified by its name.
type Genre struct {
	Name string `json:"name" gorm:"primaryKey;column:name;type:varchar(64)"`
}

// NewGenre creates a genre. An empty or blank name yields the absent genre.
func NewGenre(name string) Genre {
	return Genre{Name: strings.TrimSpace(name)}
}

// TableName specifies the table name for Genre
func (g Genre) TableName() string {
	return "genres"
}

// Game represents a catalog entry. The ID is assigned externally (it is the
// store's natural key) and never reused.
type Game struct {
	ID            int        `json:"game_id" gorm:"primaryKey;column:id;type:integer"`
	Title         string     `json:"title" gorm:"not null;type:varchar(255)"`
	Price         float64    `json:"price" gorm:"type:numeric(10,2);not null;default:0"`
	ReleaseDate   string     `json:"release_date" gorm:"type:varchar(50)"`
	Description   string     `json:"description" gorm:"type:text"`
	ImageURL      string     `json:"image_url" gorm:"type:varchar(255)"`
	WebsiteURL    string     `json:"website_url" gorm:"type:varchar(255)"`
	PublisherName *string    `json:"-" gorm:"type:varchar(255)"`
	Publisher     *Publisher `json:"publisher,omitempty" gorm:"foreignKey:PublisherName;references:Name"`
	Genres        []Genre    `json:"genres" gorm:"many2many:game_genres"`
	Reviews       []*Review  `json:"reviews,omitempty" gorm:"foreignKey:GameID"`
}

// TableName specifies the table name for Game
func (g Game) TableName() string {
	return "games"
}

// NewGame creates a game with a validated id and a trimmed title.
func NewGame(id int, title string) (*Game, error) {
	if id < 0 {
		return nil, NewInvalidEntityError("game id must be a positive integer")
	}
	g := &Game{ID: id}
	g.SetTitle(title)
	return g, nil
}

// SetTitle trims the title; a blank title becomes absent (empty).
func (g *Game) SetTitle(title string) {
	g.Title = strings.TrimSpace(title)
}

// SetPrice rejects negative prices at the moment they are set.
func (g *Game) SetPrice(price float64) error {
	if price < 0 {
		return NewInvalidEntityError("price must be a non-negative number")
	}
	g.Price = price
	return nil
}

// SetReleaseDate validates the calendar format before storing the date.
func (g *Game) SetReleaseDate(releaseDate string) error {
	if _, err := time.Parse(ReleaseDateLayout, releaseDate); err != nil {
		return NewInvalidEntityError("release date must be in 'Oct 21, 2008' format")
	}
	g.ReleaseDate = releaseDate
	return nil
}

// SetDescription trims the description; a blank description becomes absent.
func (g *Game) SetDescription(description string) {
	g.Description = strings.TrimSpace(description)
}

// SetPublisher attaches a publisher; an absent name detaches it.
func (g *Game) SetPublisher(publisher Publisher) {
	if publisher.Name == "" {
		g.Publisher = nil
		g.PublisherName = nil
		return
	}
	g.Publisher = &publisher
	g.PublisherName = &publisher.Name
}

// AddGenre appends a genre, ignoring absent names and duplicates.
func (g *Game) AddGenre(genre Genre) {
	if genre.Name == "" || g.HasGenre(genre.Name) {
		return
	}
	g.Genres = append(g.Genres, genre)
}

// RemoveGenre removes a genre by name; absent genres are ignored.
func (g *Game) RemoveGenre(genre Genre) {
	for i, existing := range g.Genres {
		if existing.Name == genre.Name {
			g.Genres = append(g.Genres[:i], g.Genres[i+1:]...)
			return
		}
	}
}

// HasGenre reports whether the game carries the named genre.
func (g *Game) HasGenre(name string) bool {
	for _, genre := range g.Genres {
		if genre.Name == name {
			return true
		}
	}
	return false
}

// AddReview appends a review to the game's collection, ignoring duplicates.
// Call sites live in the repository implementations; a review must be appended
// to the owning user's collection in the same operation.
func (g *Game) AddReview(review *Review) {
	if review == nil {
		return
	}
	for _, existing := range g.Reviews {
		if existing.Equal(review) {
			return
		}
	}
	g.Reviews = append(g.Reviews, review)
}

// RemoveReview removes a review from the game's collection; absent reviews
// are ignored.
func (g *Game) RemoveReview(review *Review) {
	if review == nil {
		return
	}
	for i, existing := range g.Reviews {
		if existing.Equal(review) {
			g.Reviews = append(g.Reviews[:i], g.Reviews[i+1:]...)
			return
		}
	}
}

// Equal reports game identity, which is the game id.
func (g *Game) Equal(other *Game) bool {
	return other != nil && g.ID == other.ID
}
