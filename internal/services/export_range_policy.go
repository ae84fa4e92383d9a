package services

import (
	"errors"
	"strings"
	"time"
)

const MaxExportRangeDays = 366

var (
	ErrExportFromDateInvalid = errors.New("export invalid from date")
	ErrExportToDateInvalid   = errors.New("export invalid to date")
	ErrExportRangeInvalid    = errors.New("export invalid range")
	ErrExportRangeTooLong    = errors.New("export range too long")
)

// ParseExportRange resolves an inclusive day range. A missing "to" means
// today and a missing "from" means the start of the trailing week ending at
// "to".
func ParseExportRange(rawFrom string, rawTo string, today time.Time, location *time.Location) (time.Time, time.Time, error) {
	fromRaw := strings.TrimSpace(rawFrom)
	toRaw := strings.TrimSpace(rawTo)

	to := DateAtLocation(today, location)
	if toRaw != "" {
		parsedTo, err := ParseDay(toRaw, location)
		if err != nil {
			return time.Time{}, time.Time{}, ErrExportToDateInvalid
		}
		to = parsedTo
	}

	from := to.AddDate(0, 0, -(WeeklyWindowDays - 1))
	if fromRaw != "" {
		parsedFrom, err := ParseDay(fromRaw, location)
		if err != nil {
			return time.Time{}, time.Time{}, ErrExportFromDateInvalid
		}
		from = parsedFrom
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, ErrExportRangeInvalid
	}
	if daysInRange(from, to) > MaxExportRangeDays {
		return time.Time{}, time.Time{}, ErrExportRangeTooLong
	}
	return from, to, nil
}

func daysInRange(from time.Time, to time.Time) int {
	count := 0
	for cursor := from; !cursor.After(to); cursor = cursor.AddDate(0, 0, 1) {
		count++
		if count > MaxExportRangeDays {
			break
		}
	}
	return count
}
