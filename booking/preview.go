package booking

import (
	"errors"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

var ErrInvalidWindow = errors.New("rango horario inválido")

type Window struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// PreviewSlots returns the windows a generation request over [start, end) is
// expected to produce: contiguous, all minutes wide, the last one ending at or
// before end.
func PreviewSlots(date, start, end string, minutes int) ([]Window, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, errors.New("fecha inválida, usa AAAA-MM-DD")
	}
	from, err := time.Parse(clockLayout, start)
	if err != nil {
		return nil, ErrInvalidWindow
	}
	to, err := time.Parse(clockLayout, end)
	if err != nil {
		return nil, ErrInvalidWindow
	}
	if !to.After(from) {
		return nil, errors.New("la hora de fin debe ser posterior a la de inicio")
	}
	if minutes <= 0 {
		return nil, errors.New("la duración debe ser mayor que cero")
	}
	step := time.Duration(minutes) * time.Minute
	var out []Window
	for t := from; !t.Add(step).After(to); t = t.Add(step) {
		out = append(out, Window{Date: date, StartTime: t.Format(clockLayout), EndTime: t.Add(step).Format(clockLayout)})
	}
	if len(out) == 0 {
		return nil, errors.New("la duración no cabe en el rango horario")
	}
	return out, nil
}
