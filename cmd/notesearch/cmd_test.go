package main

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
	"text/template"
)

func TestCommander_run(t *testing.T) {
	newCommander := func(out *bytes.Buffer) (commander, *[]string) {
		var got []string
		fs := flag.NewFlagSet("echo", flag.ContinueOnError)
		fs.SetOutput(out)
		upper := fs.Bool("upper", false, "upper-case the output")
		return commander{{
			FlagSet:          fs,
			ShortDescription: "echo arguments",
			aliases:          []string{"e"},
			handler: func(args []string) error {
				switch {
				case len(args) == 0:
					return &usageError{errors.New("no arguments")}
				case args[0] == "fail":
					return &exitCodeError{exitCode: 3}
				case args[0] == "error":
					return errors.New("failed")
				}
				s := strings.Join(args, " ")
				if *upper {
					s = strings.ToUpper(s)
				}
				got = append(got, s)
				return nil
			},
		}}, &got
	}
	usage := template.Must(template.New("").Parse(`usage:{{range .Commands}} {{.NameAndAliases}}{{end}}`))

	tests := map[string]struct {
		args     []string
		wantCode int
		wantRun  []string
		wantOut  string
	}{
		"help":             {args: []string{"help"}, wantCode: 0, wantOut: "usage: echo,e"},
		"no command":       {args: nil, wantCode: 0, wantOut: "usage: echo,e"},
		"run":              {args: []string{"echo", "a", "b"}, wantCode: 0, wantRun: []string{"a b"}},
		"alias with flags": {args: []string{"e", "-upper", "a"}, wantCode: 0, wantRun: []string{"A"}},
		"usage error":      {args: []string{"echo"}, wantCode: 2, wantOut: "Usage:"},
		"exit code":        {args: []string{"echo", "fail"}, wantCode: 3},
		"error":            {args: []string{"echo", "error"}, wantCode: 1},
		"unknown command":  {args: []string{"nope"}, wantCode: 2},
		"bad flag":         {args: []string{"echo", "-nope"}, wantCode: 2},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			c, ran := newCommander(&out)
			top := flag.NewFlagSet("test", flag.ContinueOnError)
			top.SetOutput(&out)
			if code := c.run(top, "test", usage, test.args); code != test.wantCode {
				t.Errorf("got exit code %d, want %d", code, test.wantCode)
			}
			if strings.Join(*ran, "|") != strings.Join(test.wantRun, "|") {
				t.Errorf("got runs %q, want %q", *ran, test.wantRun)
			}
			if !strings.Contains(out.String(), test.wantOut) {
				t.Errorf("got output %q, want contains %q", out.String(), test.wantOut)
			}
		})
	}
}
