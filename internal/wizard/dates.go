package wizard

import (
	"fmt"
	"time"
)

// SlaughterDateWindowDays is the length of the rolling date window offered at
// the schedule step.
const SlaughterDateWindowDays = 60

// DateOption pairs a machine value (YYYY-MM-DD) with a locale-formatted
// display label.
type DateOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var arabicMonths = [12]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

var arabicWeekdays = [7]string{
	"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت",
}

var malayMonths = [12]string{
	"Jan", "Feb", "Mac", "Apr", "Mei", "Jun",
	"Jul", "Ogo", "Sep", "Okt", "Nov", "Dis",
}

var malayWeekdays = [7]string{"Ahd", "Isn", "Sel", "Rab", "Kha", "Jum", "Sab"}

func formatDateLabel(t time.Time, locale string) string {
	switch locale {
	case "ar":
		return fmt.Sprintf("%s، %d %s %d", arabicWeekdays[t.Weekday()], t.Day(), arabicMonths[t.Month()-1], t.Year())
	case "ms":
		return fmt.Sprintf("%s, %d %s %d", malayWeekdays[t.Weekday()], t.Day(), malayMonths[t.Month()-1], t.Year())
	case "zh":
		return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
	default:
		return t.Format("Mon, 2 Jan 2006")
	}
}

// SlaughterDateWindow returns the selectable slaughter dates: a rolling
// 60-day window starting at now, labels formatted for the locale.
func SlaughterDateWindow(now time.Time, locale string) []DateOption {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	options := make([]DateOption, 0, SlaughterDateWindowDays)
	for i := 0; i < SlaughterDateWindowDays; i++ {
		d := start.AddDate(0, 0, i)
		options = append(options, DateOption{
			Value: d.Format("2006-01-02"),
			Label: formatDateLabel(d, locale),
		})
	}
	return options
}
