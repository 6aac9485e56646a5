package content

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("validation failed")
var ErrNotFound = errors.New("not found")

func duplicateID(collection, id string) error {
	return fmt.Errorf("%w: %s: duplicate id %q", ErrValidation, collection, id)
}

func missingID(collection, id string) error {
	return fmt.Errorf("%w: %s: no record with id %q", ErrNotFound, collection, id)
}

func invalidSeries(series string, idx int, reason string) error {
	return fmt.Errorf("%w: %s[%d]: %s", ErrValidation, series, idx, reason)
}
