package movie

// Actor is a cast member within one query result. Movies holds positions
// in that result's []Movie, never the movies themselves.
type Actor struct {
	Name   string
	Movies []int
}

// WorkedWith reports whether both actors appear in at least one common movie.
func (a Actor) WorkedWith(b Actor) bool {
	return len(a.CommonMovies(b)) > 0
}

// CommonMovies returns the positions shared by a and b, in a's order.
func (a Actor) CommonMovies(b Actor) []int {
	in := make(map[int]struct{}, len(b.Movies))
	for _, i := range b.Movies {
		in[i] = struct{}{}
	}

	var common []int
	for _, i := range a.Movies {
		if _, ok := in[i]; ok {
			common = append(common, i)
		}
	}
	return common
}

// Actors indexes the cast of a result set by exact name. Actors are
// returned in order of first appearance; each lists a movie position once
// even if the name is repeated in that movie's cast.
func Actors(movies []Movie) []Actor {
	var actors []Actor
	byName := make(map[string]int)

	for i, m := range movies {
		for _, name := range m.Cast {
			idx, ok := byName[name]
			if !ok {
				idx = len(actors)
				byName[name] = idx
				actors = append(actors, Actor{Name: name})
			}
			a := &actors[idx]
			if n := len(a.Movies); n > 0 && a.Movies[n-1] == i {
				continue
			}
			a.Movies = append(a.Movies, i)
		}
	}
	return actors
}

// FindActor returns the actor whose name exactly equals name.
func FindActor(actors []Actor, name string) (Actor, bool) {
	for _, a := range actors {
		if a.Name == name {
			return a, true
		}
	}
	return Actor{}, false
}

// Common keeps the movies whose cast has entries exactly equal to both
// actor1 and actor2. Order of movies is preserved.
func Common(movies []Movie, actor1, actor2 string) []Movie {
	actors := Actors(movies)

	a1, ok := FindActor(actors, actor1)
	if !ok {
		return []Movie{}
	}
	a2, ok := FindActor(actors, actor2)
	if !ok {
		return []Movie{}
	}

	positions := a1.CommonMovies(a2)
	common := make([]Movie, len(positions))
	for i, p := range positions {
		common[i] = movies[p]
	}
	return common
}
