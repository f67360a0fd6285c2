// Package timewindow hace la aritmética de calendario pura que convierte
// una fecha local en un intervalo UTC semiabierto [start, end).
//
// El offset local es fijo (no DST): todos los callers deben usar la misma
// *time.Location construida una vez al arrancar el proceso.
package timewindow

import (
	"fmt"
	"time"
)

// Window es un intervalo UTC semiabierto [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reporta si t cae dentro del intervalo [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Date es una fecha de calendario local, sin hora ni zona.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parsea YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf devuelve la fecha de calendario de t vista en loc.
func DateOf(t time.Time, loc *time.Location) Date {
	lt := t.In(loc)
	return Date{Year: lt.Year(), Month: lt.Month(), Day: lt.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) Equal(o Date) bool {
	return d == o
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) After(o Date) bool {
	return o.Before(d)
}

// localMidnight construye las 00:00 locales del día d en loc.
func (d Date) localMidnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// DayRangeUTC devuelve [inicio del día local, inicio del día siguiente)
// convertido a UTC.
//
// El orden importa: primero se arma la medianoche en hora local y recién
// después se convierte a UTC. Truncar un timestamp ya-UTC a medianoche UTC
// produce ventanas corridas respecto del día del usuario (bug ya corregido
// una vez; no reintroducir).
func DayRangeUTC(d Date, loc *time.Location) Window {
	start := d.localMidnight(loc)
	end := start.AddDate(0, 0, 1)
	return Window{Start: start.UTC(), End: end.UTC()}
}

// WeekRangeUTC devuelve la semana ISO que contiene a d:
// [lunes 00:00 local, lunes siguiente 00:00 local), convertida a UTC.
func WeekRangeUTC(d Date, loc *time.Location) Window {
	day := d.localMidnight(loc)

	// time.Weekday: domingo=0; para ISO el lunes es 1 y el domingo 7.
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7
	}

	monday := day.AddDate(0, 0, -(wd - 1))
	end := monday.AddDate(0, 0, 7)
	return Window{Start: monday.UTC(), End: end.UTC()}
}
