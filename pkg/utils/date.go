package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DaysBetween retorna o número de dias entre as datas, inclusivo nas pontas
func DaysBetween(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	if endDay.Before(startDay) {
		return 0
	}

	return int(endDay.Sub(startDay).Hours()/24) + 1
}

// PreviousPeriod calcula a janela de comparação imediatamente anterior,
// com o mesmo número de dias do período informado
func PreviousPeriod(start, end time.Time) (time.Time, time.Time) {
	days := DaysBetween(start, end)
	prevEnd := start.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -(days - 1))

	return prevStart, prevEnd
}
