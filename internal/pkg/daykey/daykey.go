// Package daykey buckets timestamps into calendar days of the fixed service timezone.
package daykey

import "time"

const layout = "2006-01-02"

type Key string

func For(t time.Time, loc *time.Location) Key {
	return Key(t.In(loc).Format(layout))
}

func Parse(s string) (Key, error) {
	if _, err := time.Parse(layout, s); err != nil {
		return "", err
	}
	return Key(s), nil
}

// StartOf returns the service-local midnight that opens the day.
func (k Key) StartOf(loc *time.Location) time.Time {
	t, err := time.ParseInLocation(layout, string(k), loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (k Key) String() string {
	return string(k)
}
