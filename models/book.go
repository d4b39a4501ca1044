package models

import (
	"fmt"
	"time"
)

// BookGender is the literary genre of a book. Stored as the
// book_gender_enum database type; the literals are persisted verbatim.
type BookGender string

const (
	GenderNovel          BookGender = "Novela"
	GenderShortStory     BookGender = "Cuento"
	GenderFantasy        BookGender = "Fantasía"
	GenderScienceFiction BookGender = "Ciencia_Ficción"
	GenderRomance        BookGender = "Romántico"
	GenderAdventure      BookGender = "Aventura"
	GenderHistorical     BookGender = "Histórico"
	GenderBiography      BookGender = "Biografía"
	GenderDocumentary    BookGender = "Documental"
	GenderPoetry         BookGender = "Poesía"
	GenderTheatre        BookGender = "Teatro"
	GenderHorror         BookGender = "Terror"
)

// BookGenders lists every accepted genre in declaration order.
var BookGenders = []BookGender{
	GenderNovel,
	GenderShortStory,
	GenderFantasy,
	GenderScienceFiction,
	GenderRomance,
	GenderAdventure,
	GenderHistorical,
	GenderBiography,
	GenderDocumentary,
	GenderPoetry,
	GenderTheatre,
	GenderHorror,
}

// Valid reports whether g is one of [BookGenders].
func (g BookGender) Valid() bool {
	for _, known := range BookGenders {
		if g == known {
			return true
		}
	}
	return false
}

// Book is a catalog entry. Maps to the "books" table.
type Book struct {
	ID           int64      `db:"id" json:"id" validate:"-"`
	Title        string     `db:"title" json:"title" validate:"required,max=255"`
	Author       string     `db:"author" json:"author" validate:"required,max=255"`
	BookGender   BookGender `db:"book_gender" json:"book_gender" validate:"enum"`
	Summary      *string    `db:"summary" json:"summary" validate:"-"`
	Availability bool       `db:"availability" json:"availability" validate:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at" validate:"-"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at" validate:"-"`

	BookReservations []BookReservation `db:"-" json:"books_reservations,omitempty" validate:"-"`
}

// NewBook builds an available book after checking the genre.
func NewBook(title, author string, gender BookGender) (Book, error) {
	if !gender.Valid() {
		return Book{}, NewValidationError("book_gender", fmt.Sprintf("unknown book gender %q", gender))
	}

	return Book{
		Title:        title,
		Author:       author,
		BookGender:   gender,
		Availability: true,
	}, nil
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

func (b Book) String() string {
	return fmt.Sprintf("<Books %s by %s>", b.Title, b.Author)
}

// Serialize converts the book into its API representation.
func (b Book) Serialize() map[string]any {
	return map[string]any{
		"id":           b.ID,
		"title":        b.Title,
		"author":       b.Author,
		"book_gender":  string(b.BookGender),
		"summary":      stringPtr(b.Summary),
		"availability": b.Availability,
		"created_at":   isoTimestamp(b.CreatedAt),
		"updated_at":   isoTimestamp(b.UpdatedAt),
	}
}

// BookUpdate carries the editable fields of a book. Nil fields are left
// unchanged.
type BookUpdate struct {
	Title        *string
	Author       *string
	Summary      *string
	BookGender   *BookGender
	Availability *bool
}

// IsEmpty reports whether the update changes nothing.
func (u BookUpdate) IsEmpty() bool {
	return u.Title == nil && u.Author == nil && u.Summary == nil && u.BookGender == nil && u.Availability == nil
}

// Apply copies the set fields onto b.
func (u BookUpdate) Apply(b *Book) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.Summary != nil {
		b.Summary = u.Summary
	}
	if u.BookGender != nil {
		b.BookGender = *u.BookGender
	}
	if u.Availability != nil {
		b.Availability = *u.Availability
	}
}
