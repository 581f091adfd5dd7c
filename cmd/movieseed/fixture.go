package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"moviecatalog/movie"
)

const castSeparator = "|"

var fixtureColumns = []string{"title", "year", "genre", "rating", "cast", "classification", "synopsis"}

// readFixture parses a movie CSV. Cast entries are split on "|" and keep
// their original spelling and order. Numeric classifications are kept as
// integers, the way the catalog data stores them.
func readFixture(r io.Reader, limit int) ([]movie.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	idx, err := parseFixtureHeader(reader)
	if err != nil {
		return nil, err
	}

	var records []movie.Record
	line := 1
	for limit <= 0 || len(records) < limit {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		rec, err := parseFixtureRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseFixtureHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range fixtureColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q in csv header", col)
		}
	}

	return idx, nil
}

func parseFixtureRow(row []string, idx map[string]int) (movie.Record, error) {
	field := func(col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := movie.Record{
		Title:    field("title"),
		Genre:    field("genre"),
		Synopsis: field("synopsis"),
		Cast:     []string{},
	}
	if rec.Title == "" {
		return movie.Record{}, errors.New("title is empty")
	}

	if v := field("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return movie.Record{}, fmt.Errorf("invalid year %q", v)
		}
		rec.Year = year
	}

	if v := field("rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return movie.Record{}, fmt.Errorf("invalid rating %q", v)
		}
		rec.Rating = rating
	}

	for _, name := range strings.Split(field("cast"), castSeparator) {
		if name = strings.TrimSpace(name); name != "" {
			rec.Cast = append(rec.Cast, name)
		}
	}

	classification := field("classification")
	if n, err := strconv.Atoi(classification); err == nil {
		rec.Classification = n
	} else {
		rec.Classification = classification
	}

	return rec, nil
}
