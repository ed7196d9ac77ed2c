package domain

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DailyActivity representa um dia de atividade de um SDR
type DailyActivity struct {
	ID            string    `json:"id,omitempty"`
	Day           Date      `json:"day"`
	Dials         Count     `json:"dials"`
	Conversations Count     `json:"conversations"`
	Calls         Count     `json:"calls"`
	Emails        Count     `json:"emails"`
	LinkedIn      Count     `json:"linkedIn"`
	Meetings      Count     `json:"meetings"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// ActivityQuery filtra a listagem do repositório de atividades
type ActivityQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Count é um contador de atividade com coerção leniente:
// números e strings numéricas são aceitos, qualquer outra coisa (ou negativo) vira 0.
type Count int

func (c *Count) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*c = 0
		return nil
	}

	if b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			*c = 0
			return nil
		}
		*c = nonNegative(leadingInt(s))
		return nil
	}

	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*c = 0
		return nil
	}
	*c = nonNegative(int(f))
	return nil
}

func nonNegative(n int) Count {
	if n < 0 {
		return 0
	}
	return Count(n)
}

// leadingInt lê o inteiro no início da string ("12abc" -> 12, "abc" -> 0)
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		ch := s[end]
		if (ch == '-' || ch == '+') && end == 0 {
			end++
			continue
		}
		if ch < '0' || ch > '9' {
			break
		}
		end++
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// Date é uma data de calendário serializada como YYYY-MM-DD
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate aceita YYYY-MM-DD ou RFC3339
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return NewDate(t), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, errors.Wrapf(err, "invalid date %q", s)
	}
	return NewDate(t), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = Date{}
		return nil
	}

	s, err := strconv.Unquote(string(b))
	if err != nil {
		return errors.Wrap(err, "date must be a string")
	}
	if strings.TrimSpace(s) == "" {
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
