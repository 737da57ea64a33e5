package common

import "time"

const DateFormat = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

func GetDate() string {
	return GetDateFromTime(time.Now().UTC())
}

func GetDateFromTime(t time.Time) string {
	return t.Format(DateFormat)
}
