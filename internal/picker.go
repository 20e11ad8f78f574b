package internal

import (
	"fmt"
	"strings"
	"time"
)

const (
	fieldHours = iota
	fieldMinutes
	fieldSeconds
)

var (
	pickerLimits = [3]int{24, 60, 60}
	pickerUnits  = [3]string{"hours", "min", "sec"}
)

// Picker is the hours/minutes/seconds duration input shown while no
// session is active.
type Picker struct {
	fields [3]int
	focus  int
}

func NewPicker(d time.Duration) *Picker {
	p := &Picker{focus: fieldMinutes}
	p.Set(d)
	return p
}

// Set loads d into the columns, clamped to [0, 23:59:59].
func (p *Picker) Set(d time.Duration) {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}
	if limit := 24*3600 - 1; total > limit {
		total = limit
	}
	p.fields[fieldHours] = total / 3600
	p.fields[fieldMinutes] = (total % 3600) / 60
	p.fields[fieldSeconds] = total % 60
}

func (p *Picker) ConfiguredDuration() int {
	return p.fields[fieldHours]*3600 + p.fields[fieldMinutes]*60 + p.fields[fieldSeconds]
}

func (p *Picker) Focus() int { return p.focus }

func (p *Picker) Increment() { p.add(1) }
func (p *Picker) Decrement() { p.add(-1) }

func (p *Picker) add(delta int) {
	limit := pickerLimits[p.focus]
	p.fields[p.focus] = (p.fields[p.focus] + delta + limit) % limit
}

func (p *Picker) Next() { p.focus = (p.focus + 1) % len(p.fields) }
func (p *Picker) Prev() { p.focus = (p.focus + len(p.fields) - 1) % len(p.fields) }

func (p *Picker) View() string {
	values := make([]string, len(p.fields))
	units := make([]string, len(p.fields))
	for i, v := range p.fields {
		cell := fmt.Sprintf(" %02d ", v)
		unit := fmt.Sprintf("%-4s", pickerUnits[i])
		if i == p.focus {
			values[i] = pickerFocusedStyle.Render(cell)
			units[i] = inputStyle.Render(unit)
		} else {
			values[i] = pickerStyle.Render(cell)
			units[i] = inactiveStyle.Render(unit)
		}
	}
	return strings.Join(values, ":") + "\n" + strings.Join(units, " ")
}
