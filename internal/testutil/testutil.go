package testutil

import (
	"github.com/google/go-cmp/cmp"

	"github.com/amberhealth/telemetry/internal/timeutil"
)

var defaultCmpOptions = []cmp.Option{
	// Times compare by instant, not representation, so windows parsed from
	// different ISO-8601 offsets still match.
	cmp.Comparer(func(x, y timeutil.Time) bool {
		return x.Time().Equal(y.Time())
	}),
}

func Diff(a, b interface{}, opts ...cmp.Option) string {
	opts = append(opts, defaultCmpOptions...)
	return cmp.Diff(a, b, opts...)
}
