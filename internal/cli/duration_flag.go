package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/spf13/pflag"
)

// durationValue is a pflag.Value accepting only the countdown options.
// A trailing "s" is allowed, so "--duration 90s" works.
type durationValue struct {
	p *int
}

var _ pflag.Value = (*durationValue)(nil)

func newDurationValue(p *int) *durationValue {
	return &durationValue{p: p}
}

func (d *durationValue) String() string {
	if d.p == nil {
		return ""
	}
	return strconv.Itoa(*d.p)
}

func (d *durationValue) Set(s string) error {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "s"))
	if err != nil {
		return fmt.Errorf("%q is not a number of seconds", s)
	}
	if err := domain.ValidateDuration(n); err != nil {
		return err
	}
	*d.p = n
	return nil
}

func (d *durationValue) Type() string { return "seconds" }
