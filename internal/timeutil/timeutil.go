package timeutil

import (
	"strconv"
	"time"
)

// ISO8601Millis is the canonical format for every dated field on the wire.
// Millisecond precision matches what the ingest endpoint stores.
const ISO8601Millis = "2006-01-02T15:04:05.000Z07:00"

type Time time.Time

func Of(t time.Time) Time {
	return Time(t)
}

// UnmarshalJSON accepts either an ISO-8601 string or unix seconds, since
// collector documents carry whichever the OS layer produced.
func (t *Time) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == "{}" {
		return nil
	}
	if s[0] == '"' {
		tt, err := time.Parse(`"`+time.RFC3339+`"`, s)
		if err != nil {
			return err
		}
		*t = Time(tt)
	} else {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*t = Time(time.Unix(i, 0))
	}
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(t).Format(ISO8601Millis))), nil
}

func (t Time) Time() time.Time {
	return time.Time(t)
}
