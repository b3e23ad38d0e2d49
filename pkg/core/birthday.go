package core

import "time"

// BirthdayGroup lists contacts to congratulate on a given weekday.
type BirthdayGroup struct {
	Day   time.Weekday
	Names []string
}

// weekday display order, Monday first.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// UpcomingBirthdays returns the contacts whose birthday (month and day, year
// ignored) falls within [today, today+days], inclusive. Dec->Jan wraparound
// is handled by also considering next year's occurrence. Birthdays landing
// on a weekend are congratulated on the following Monday; groups come back
// in Monday..Sunday order.
func (b *AddressBook) UpcomingBirthdays(today time.Time, days int) []BirthdayGroup {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	byDay := make(map[time.Weekday][]string)

	for _, c := range b.Contacts {
		if c.Birthday == nil {
			continue
		}
		occurrence, ok := nextOccurrence(c.Birthday.Time, today, days)
		if !ok {
			continue
		}
		congrats := shiftWeekend(occurrence)
		byDay[congrats.Weekday()] = append(byDay[congrats.Weekday()], c.Name)
	}

	var groups []BirthdayGroup
	for _, day := range weekdayOrder {
		if names, ok := byDay[day]; ok {
			groups = append(groups, BirthdayGroup{Day: day, Names: names})
		}
	}
	return groups
}

// nextOccurrence finds the birthday's occurrence within the window, checking
// this year and, for wraparound, the next. Feb 29 normalizes to Mar 1 in
// non-leap years.
func nextOccurrence(birthday, today time.Time, days int) (time.Time, bool) {
	for _, year := range []int{today.Year(), today.Year() + 1} {
		occ := time.Date(year, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
		diff := int(occ.Sub(today).Hours() / 24)
		if diff >= 0 && diff <= days {
			return occ, true
		}
	}
	return time.Time{}, false
}

func shiftWeekend(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	default:
		return date
	}
}
