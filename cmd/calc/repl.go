package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/calc"
)

const banner = `calc: type an expression, or "help"`

func repl(s *session) error {
	fmt.Fprintln(s.out, banner)
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(complete)
	for {
		text, err := ln.Prompt("> ")
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		case err != nil:
			return err
		}
		if strings.TrimSpace(text) != "" {
			ln.AppendHistory(text)
		}
		if !s.line(text) {
			return nil
		}
	}
}

// complete completes the identifier at the end of line. Function names
// complete with their open bracket.
func complete(line string) []string {
	i := len(line)
	for i > 0 && isLetter(line[i-1]) {
		i--
	}
	prefix, word := line[:i], line[i:]
	if word == "" {
		return nil
	}
	var c []string
	for _, name := range calc.Names() {
		if !strings.HasPrefix(name, word) {
			continue
		}
		e, _ := calc.Lookup(name)
		if e.IsFunc() {
			name += "("
		}
		c = append(c, prefix+name)
	}
	return c
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
