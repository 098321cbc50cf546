package utils

import "time"

const (
	// MonthLabelLayout é o formato dos rótulos mensais (YYYY-MM)
	MonthLabelLayout = "2006-01"
	dateLayout       = "2006-01-02"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseDateIn interpreta uma data YYYY-MM-DD como meia-noite no fuso informado
func ParseDateIn(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, dateStr, loc)
}

// AddMonths soma meses mantendo o dia, limitado ao último dia do mês de destino
// (31/03 - 1 mês = 28/02 ou 29/02, nunca 03/03).
func AddMonths(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())

	day := t.Day()
	if last := DaysInMonth(firstOfTarget); day > last {
		day = last
	}

	return time.Date(
		firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		t.Location(),
	)
}

// DaysInMonth retorna a quantidade de dias do mês de t
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EqualDate compara apenas ano, mês e dia
func EqualDate(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() && date1.Month() == date2.Month() && date1.Day() == date2.Day()
}

// MonthLabel formata t como YYYY-MM no fuso informado
func MonthLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(MonthLabelLayout)
}
