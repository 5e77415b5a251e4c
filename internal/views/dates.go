package views

import (
	"time"

	"golang.org/x/text/language"

	model "taskboard.com/taskboard/internal/models"
)

const isoDate = "2006-01-02"

// supportedLocales and dateLayouts are parallel; index 0 is the fallback.
var (
	supportedLocales = []language.Tag{
		language.Und,
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Spanish,
		language.Russian,
		language.Japanese,
		language.Chinese,
	}
	dateLayouts = []string{
		isoDate,
		"1/2/2006",
		"02/01/2006",
		"2.1.2006",
		"02/01/2006",
		"2/1/2006",
		"02.01.2006",
		"2006/1/2",
		"2006/1/2",
	}
	localeMatcher = language.NewMatcher(supportedLocales)
)

// DateLayout picks a calendar date layout for an Accept-Language header.
// Unknown or missing languages get ISO dates.
func DateLayout(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return isoDate
	}
	_, idx, confidence := localeMatcher.Match(tags...)
	if confidence == language.No {
		return isoDate
	}
	return dateLayouts[idx]
}

// FormatDueDate renders the calendar date of a stored due date. Values that
// do not parse are shown as their date portion unchanged.
func FormatDueDate(raw, layout string) string {
	date := model.DatePortion(raw)
	if date == "" {
		return ""
	}
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return date
	}
	return t.Format(layout)
}
