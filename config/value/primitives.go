package value

import (
	"fmt"
	"strconv"
	"strings"
)

// string

type String string

func NewString(p *string, val string) *String {
	*p = val

	return (*String)(p)
}

func (s *String) Set(val string) error {
	*s = String(val)
	return nil
}

func (s *String) String() string {
	return string(*s)
}

func (s *String) Validate() error {
	return nil
}

func (s *String) IsEmpty() bool {
	return len(string(*s)) == 0
}

// string from a fixed set of choices

type StringEnum struct {
	p       *string
	choices []string
}

func NewStringEnum(p *string, val string, choices []string) *StringEnum {
	v := &StringEnum{
		p:       p,
		choices: choices,
	}

	*p = val

	return v
}

func (s *StringEnum) Set(val string) error {
	for _, c := range s.choices {
		if strings.EqualFold(c, val) {
			*s.p = c
			return nil
		}
	}

	return fmt.Errorf("'%s' is not one of: %s", val, strings.Join(s.choices, ", "))
}

func (s *StringEnum) String() string {
	return *s.p
}

func (s *StringEnum) Validate() error {
	for _, c := range s.choices {
		if c == *s.p {
			return nil
		}
	}

	return fmt.Errorf("'%s' is not one of: %s", *s.p, strings.Join(s.choices, ", "))
}

func (s *StringEnum) IsEmpty() bool {
	return len(*s.p) == 0
}

// boolean

type Bool bool

func NewBool(p *bool, val bool) *Bool {
	*p = val

	return (*Bool)(p)
}

func (b *Bool) Set(val string) error {
	v, err := strconv.ParseBool(val)
	if err != nil {
		return err
	}
	*b = Bool(v)
	return nil
}

func (b *Bool) String() string {
	return strconv.FormatBool(bool(*b))
}

func (b *Bool) Validate() error {
	return nil
}

func (b *Bool) IsEmpty() bool {
	return !bool(*b)
}
