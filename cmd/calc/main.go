package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"
	"strings"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, keys string
		echo               bool
	)
	flag.StringVar(&inname, "in", "", "input file with one expression per line (- for stdin)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.StringVar(&keys, "keys", "", "replay space-separated keypad presses and print the display")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.Parse()

	s := &session{out: os.Stdout, verb: verb + "\n", echo: echo}
	switch {
	case keys != "":
		os.Exit(runKeys(os.Stdout, keys, echo))
	case inname != "" || flag.NArg() > 0:
		var srcs []string
		if inname != "" {
			lines, err := readFile(inname)
			if err != nil {
				log.Fatal(err)
			}
			srcs = append(srcs, lines...)
		}
		srcs = append(srcs, flag.Args()...)
		os.Exit(s.batch(srcs))
	default:
		if err := repl(s); err != nil {
			log.Fatal(err)
		}
	}
}

func infile(inname string) (io.ReadCloser, error) {
	if inname == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(inname)
}

// readFile returns the non-blank lines of the named file, or of stdin if the
// name is -.
func readFile(inname string) ([]string, error) {
	f, err := infile(inname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if l := strings.TrimSpace(sc.Text()); l != "" {
			lines = append(lines, l)
		}
	}
	return lines, sc.Err()
}
