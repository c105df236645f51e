package mapper

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mamadbah2/finca/internal/domain/models"
)

// fields parses text form values, keeping the first failure so a mapping
// function can read every field and check once at the end.
type fields struct {
	err error
}

func (p *fields) fail(field, value string, cause error) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: %s %q: %v", models.ErrValidation, field, value, cause)
	}
}

func (p *fields) float(field, value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		p.fail(field, value, fmt.Errorf("value required"))
		return 0
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		p.fail(field, value, err)
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		p.fail(field, value, fmt.Errorf("not a finite number"))
		return 0
	}
	return v
}

func (p *fields) optFloat(field, value string) *float64 {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	v := p.float(field, value)
	if p.err != nil {
		return nil
	}
	return &v
}

func (p *fields) int(field, value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		p.fail(field, value, fmt.Errorf("value required"))
		return 0
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		p.fail(field, value, err)
		return 0
	}
	return v
}

func (p *fields) optInt(field, value string, fallback int) int {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return p.int(field, value)
}

func (p *fields) date(field, value string) time.Time {
	value = strings.TrimSpace(value)
	if strings.Contains(value, "T") {
		ts, err := time.Parse(time.RFC3339, value)
		if err != nil {
			p.fail(field, value, err)
			return time.Time{}
		}
		// the calendar day as written, whatever the offset
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	}
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		p.fail(field, value, err)
		return time.Time{}
	}
	return t
}

func (p *fields) optDate(field, value string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	t := p.date(field, value)
	if p.err != nil {
		return nil
	}
	return &t
}

func text(value string) string {
	return strings.TrimSpace(value)
}

func optText(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
