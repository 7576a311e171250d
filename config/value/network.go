package value

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
)

var reNumeric = regexp.MustCompile("^[0-9]+$")

// optional address

type Address string

func NewAddress(p *string, val string) *Address {
	*p = val

	return (*Address)(p)
}

func (s *Address) Set(val string) error {
	// Check if the new value is only a port number
	if reNumeric.MatchString(val) {
		val = ":" + val
	}

	*s = Address(val)
	return nil
}

func (s *Address) String() string {
	return string(*s)
}

func (s *Address) Validate() error {
	if len(string(*s)) == 0 {
		return nil
	}

	_, port, err := net.SplitHostPort(string(*s))
	if err != nil {
		return err
	}

	if !reNumeric.MatchString(port) {
		return fmt.Errorf("the port must be numerical")
	}

	return nil
}

func (s *Address) IsEmpty() bool {
	return len(string(*s)) == 0
}

// host name or IP address without port

type Host string

func NewHost(p *string, val string) *Host {
	*p = val

	return (*Host)(p)
}

func (s *Host) Set(val string) error {
	*s = Host(strings.TrimSpace(val))
	return nil
}

func (s *Host) String() string {
	return string(*s)
}

func (s *Host) Validate() error {
	val := string(*s)

	if len(val) == 0 {
		return nil
	}

	if strings.ContainsAny(val, " /") {
		return fmt.Errorf("'%s' is not a valid host", val)
	}

	if strings.Contains(val, ":") && net.ParseIP(val) == nil {
		return fmt.Errorf("'%s' must not contain a port", val)
	}

	return nil
}

func (s *Host) IsEmpty() bool {
	return len(string(*s)) == 0
}

// network port

type Port int

func NewPort(p *int, val int) *Port {
	*p = val

	return (*Port)(p)
}

func (i *Port) Set(val string) error {
	v, err := strconv.Atoi(val)
	if err != nil {
		return err
	}
	*i = Port(v)
	return nil
}

func (i *Port) String() string {
	return strconv.Itoa(int(*i))
}

func (i *Port) Validate() error {
	val := int(*i)

	if val < 0 || val >= (1<<16) {
		return fmt.Errorf("%d is not in the range of [0, %d]", val, 1<<16-1)
	}

	return nil
}

func (i *Port) IsEmpty() bool {
	return int(*i) == 0
}
