package movie

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"moviecatalog/errs"
)

var ErrInvalidQuery = errs.Errorf(errs.EINVALID, "invalid search query")

// Columns are the display headers of a movie row, in Row order.
var Columns = []string{"Título", "Año", "Género", "Puntuación", "Actor", "Clasificación", "Sinopsis"}

// Record is a raw catalog record as returned by a Repository.
// Classification keeps whatever the store decoded (text or a number).
type Record struct {
	Title          string
	Year           int
	Genre          string
	Rating         float64
	Cast           []string
	Classification interface{}
	Synopsis       string
}

type Movie struct {
	Title          string   `json:"title"`
	Year           int      `json:"year"`
	Genre          string   `json:"genre"`
	Rating         float64  `json:"rating"`
	Cast           []string `json:"cast"`
	Classification string   `json:"classification"`
	Synopsis       string   `json:"synopsis"`
}

// NewMovie builds a Movie from a raw record. The cast is copied so the
// movie does not share storage with the record.
func NewMovie(r Record) Movie {
	cast := make([]string, len(r.Cast))
	copy(cast, r.Cast)

	return Movie{
		Title:          r.Title,
		Year:           r.Year,
		Genre:          r.Genre,
		Rating:         r.Rating,
		Cast:           cast,
		Classification: classificationText(r.Classification),
		Synopsis:       r.Synopsis,
	}
}

// NewMovies builds one Movie per record, preserving order.
func NewMovies(records []Record) []Movie {
	movies := make([]Movie, len(records))
	for i, r := range records {
		movies[i] = NewMovie(r)
	}
	return movies
}

// HasActor reports whether the cast has an entry exactly equal to name.
func (m Movie) HasActor(name string) bool {
	for _, c := range m.Cast {
		if c == name {
			return true
		}
	}
	return false
}

// Row renders the movie as display text, one field per entry of Columns.
func (m Movie) Row() []string {
	return []string{
		m.Title,
		strconv.Itoa(m.Year),
		m.Genre,
		ratingText(m.Rating),
		strings.Join(m.Cast, ", "),
		m.Classification,
		m.Synopsis,
	}
}

// ratingText uses the shortest exact decimal but always keeps one
// fractional digit, so 6 renders as "6.0" and 8.25 as "8.25".
func ratingText(r float64) string {
	if r == math.Trunc(r) && !math.IsInf(r, 0) {
		return strconv.FormatFloat(r, 'f', 1, 64)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func classificationText(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(c), 'f', -1, 32)
	default:
		return fmt.Sprint(c)
	}
}
