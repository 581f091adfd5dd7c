package movie

import "moviecatalog/errs"

// StoreUnavailable wraps a connection or driver failure of the catalog store.
func StoreUnavailable(err error) error {
	return errs.Wrap(err, errs.EUNAVAILABLE, "catalog store unavailable")
}

func IsStoreUnavailable(err error) bool {
	return errs.ErrorCode(err) == errs.EUNAVAILABLE
}
