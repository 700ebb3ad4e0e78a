// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package volume

import (
	"time"

	"github.com/mzalesak/periodika/internal/platform/constants"
)

// # Weekly Periodicity

// Weekday identifies one day of the issuing week. The catalog week starts
// on Monday.
type Weekday string

const (
	WeekdayMonday    Weekday = "monday"
	WeekdayTuesday   Weekday = "tuesday"
	WeekdayWednesday Weekday = "wednesday"
	WeekdayThursday  Weekday = "thursday"
	WeekdayFriday    Weekday = "friday"
	WeekdaySaturday  Weekday = "saturday"
	WeekdaySunday    Weekday = "sunday"
)

// Weekdays returns the seven weekdays in catalog order (Monday first).
func Weekdays() []Weekday {
	return []Weekday{
		WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday,
		WeekdayFriday, WeekdaySaturday, WeekdaySunday,
	}
}

// weekdayOf maps a calendar date to the catalog weekday.
func weekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return WeekdayMonday
	case time.Tuesday:
		return WeekdayTuesday
	case time.Wednesday:
		return WeekdayWednesday
	case time.Thursday:
		return WeekdayThursday
	case time.Friday:
		return WeekdayFriday
	case time.Saturday:
		return WeekdaySaturday
	default:
		return WeekdaySunday
	}
}

// PeriodicityEntry describes the issuing defaults for one weekday: whether
// the periodical issues that day and which publication, page count, and
// naming a fresh specimen draft starts with.
type PeriodicityEntry struct {
	Weekday       Weekday `json:"weekday"`
	Active        bool    `json:"active"`
	PublicationID string  `json:"publication_id"`
	PagesCount    int     `json:"pages_count"`
	Name          string  `json:"name"`
	SubName       string  `json:"sub_name"`
	IsAttachment  bool    `json:"is_attachment"`
}

// entryFor returns the periodicity entry for the given weekday.
// The second return is false when the template has no such entry, which can
// only happen on un-repaired input.
func (v *Volume) entryFor(day Weekday) (PeriodicityEntry, bool) {
	for _, entry := range v.Periodicity {
		if entry.Weekday == day {
			return entry, true
		}
	}
	return PeriodicityEntry{}, false
}

// # Periodicity Expansion

// displayDateFormat is how publication dates are presented in the
// cataloging tables.
const displayDateFormat = "02.01.2006"

// GenerateSpecimens expands a volume's periodicity template into per-day
// specimen drafts over the volume's [DateFrom, DateTo] range.
//
// One draft is produced for every day whose weekday entry is active,
// carrying the entry's publication, page-count, and naming defaults and
// already repaired against the volume. Sequence numbers are left unassigned;
// the cataloger numbers the drafts via the renumbering action once existence
// flags are entered.
//
// An unparseable or inverted date range yields no drafts.
func GenerateSpecimens(v *Volume) []*Specimen {
	from, err := time.Parse(constants.ISODateFormat, v.DateFrom)
	if err != nil {
		return nil
	}

	to, err := time.Parse(constants.ISODateFormat, v.DateTo)
	if err != nil || to.Before(from) {
		return nil
	}

	var drafts []*Specimen
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		entry, ok := v.entryFor(weekdayOf(day))
		if !ok || !entry.Active {
			continue
		}

		draft := RepairSpecimen(Specimen{
			PublicationID:         entry.PublicationID,
			MutationID:            v.MutationID,
			IsAttachment:          entry.IsAttachment,
			Name:                  entry.Name,
			SubName:               entry.SubName,
			MutationMark:          v.MutationMark,
			PublicationDate:       day.Format(constants.ISODateFormat),
			PublicationDateString: day.Format(displayDateFormat),
			PagesCount:            entry.PagesCount,
		}, v)

		drafts = append(drafts, &draft)
	}

	return drafts
}
