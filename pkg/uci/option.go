package uci

import (
	"fmt"
	"strings"
)

type Option interface {
	UciName() string
	UciString() string
	Set(s string) error
}

// ComboOption is a UCI combo. Get and Change connect it to the engine.
type ComboOption struct {
	Name   string
	Vars   []string
	Get    func() string
	Change func(string)
}

func (opt *ComboOption) UciName() string {
	return opt.Name
}

func (opt *ComboOption) UciString() string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "option name %v type %v default %v", opt.Name, "combo", opt.Get())
	for _, v := range opt.Vars {
		fmt.Fprintf(sb, " var %v", v)
	}
	return sb.String()
}

func (opt *ComboOption) Set(s string) error {
	for _, v := range opt.Vars {
		if strings.EqualFold(v, s) {
			opt.Change(v)
			return nil
		}
	}
	return fmt.Errorf("option %v: unknown value %v", opt.Name, s)
}
