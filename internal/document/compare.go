package document

import (
	"strings"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// Compare defines the total order used for collection sorting and
// next/previous navigation: primary by date, secondary by path. It
// returns ErrIncomparable when other does not expose a data mapping;
// callers treat such pairs as equal-ordered rather than aborting.
func (r *Record) Compare(other any) (int, error) {
	o, ok := other.(*Record)
	if !ok || o.Data == nil {
		return 0, sgerrors.ErrIncomparable
	}

	ad, aok := r.Date()
	bd, bok := o.Date()
	if aok && bok && !ad.Equal(bd) {
		if ad.Before(bd) {
			return -1, nil
		}
		return 1, nil
	}
	return strings.Compare(r.path, o.path), nil
}
