package ledger

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// Month is a calendar month, the granularity installment dues are computed at.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a YYYY-MM string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Add returns the month n whole months after m, carrying into the year.
func (m Month) Add(n int) Month {
	idx := m.Year*12 + int(m.Month) - 1 + n
	return Month{Year: idx / 12, Month: time.Month(idx%12 + 1)}
}

// Sub returns the number of whole months from other to m.
func (m Month) Sub(other Month) int {
	return (m.Year-other.Year)*12 + int(m.Month) - int(other.Month)
}

func (m Month) Before(other Month) bool { return m.Sub(other) < 0 }
func (m Month) After(other Month) bool  { return m.Sub(other) > 0 }

// monthOfDate extracts the month of a YYYY-MM-DD string.
func monthOfDate(s string) (Month, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Month{}, false
	}
	return MonthOf(t), true
}
