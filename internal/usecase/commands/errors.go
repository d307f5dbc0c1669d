package commands

import "slotswap/internal/infra"

// readErr translates a repository not-found into the sentinel the
// handlers switch on; other repository errors pass through.
func readErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return err
}
