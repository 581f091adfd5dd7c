package movie

import "context"

type Service interface {
	FindByTitle(ctx context.Context, title string) ([]Movie, error)
	FindCommon(ctx context.Context, actor1, actor2 string) ([]Movie, error)
}

// Repository is the catalog store. Both searches are case-insensitive and
// return records in the store's natural order.
type Repository interface {
	SearchByTitle(ctx context.Context, title string) ([]Record, error)
	// SearchByCommonActorCandidates is a coarse filter: it may return
	// records that do not star both actors.
	SearchByCommonActorCandidates(ctx context.Context, actor1, actor2 string) ([]Record, error)
}

// Usecase does not validate its input; callers reject blank queries.
type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) FindByTitle(ctx context.Context, title string) ([]Movie, error) {
	records, err := uc.r.SearchByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return NewMovies(records), nil
}

func (uc *Usecase) FindCommon(ctx context.Context, actor1, actor2 string) ([]Movie, error) {
	records, err := uc.r.SearchByCommonActorCandidates(ctx, actor1, actor2)
	if err != nil {
		return nil, err
	}
	return Common(NewMovies(records), actor1, actor2), nil
}

// Importer loads records into a store. Only tooling uses it; the
// catalog queries never write.
type Importer interface {
	ImportMovies(ctx context.Context, records []Record) (int, error)
}
