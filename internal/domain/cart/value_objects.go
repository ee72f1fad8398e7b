package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidPeriod = errors.New("end date must not be before start date")
)

// Date is a calendar day without time of day or zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, string(b))
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Period is an inclusive range of rental days.
type Period struct {
	Start Date
	End   Date
}

func NewPeriod(start, end Date) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, ErrInvalidDate
	}
	if end.Before(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Start: start, End: end}, nil
}

func (p Period) Validate() error {
	_, err := NewPeriod(p.Start, p.End)
	return err
}

const secondsPerDay = 24 * 60 * 60

// Days counts both the first and the last day. Dates sit on UTC midnights,
// so the Unix difference is a whole number of days for any range.
func (p Period) Days() int {
	return int((p.End.Time().Unix()-p.Start.Time().Unix())/secondsPerDay) + 1
}

func (p Period) String() string {
	return p.Start.String() + "/" + p.End.String()
}

// LineKey identifies a cart line: one product over one period.
type LineKey struct {
	ProductID int64
	Period    Period
}

func NewLineKey(productID int64, start, end Date) LineKey {
	return LineKey{ProductID: productID, Period: Period{Start: start, End: end}}
}

func (k LineKey) String() string {
	return fmt.Sprintf("%d@%s", k.ProductID, k.Period)
}
