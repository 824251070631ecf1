// Command repair compresses a file with the Re-Pair grammar compressor
// and reports the resulting grammar size.
//
//	repair -f FILENAME [-p PREFIX_LENGTH] [-m ADDITIONAL_MEMORY]
//
// -p limits compression to the first PREFIX_LENGTH bytes of the file;
// -m sets the arena slack in bytes (default 200).
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/repair"
)

const (
	exitOK        = 0
	exitFatal     = 1 // core failure (symbol width exhausted)
	exitBadNumber = 2 // unparseable or non-positive numeric argument
	exitBadOption = 3 // option missing its value, or filesystem error on sizing
	exitBadFile   = 4 // no filename given, or file unreadable
)

type cmdline struct {
	filename string
	prefix   int
	memory   int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, code := parse(args, stderr)
	if code != exitOK {
		return code
	}
	if opts.filename == "" {
		fmt.Fprintln(stderr, "Need to specify a filename")
		return exitBadFile
	}
	info, err := os.Stat(opts.filename)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitBadOption
	}
	data, err := os.ReadFile(opts.filename)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitBadFile
	}

	copts := []repair.Option{repair.WithSlack(opts.memory)}
	if opts.prefix > 0 {
		copts = append(copts, repair.WithPrefix(opts.prefix))
	}
	c, err := repair.New(data, copts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitBadOption
	}
	n := len(data)
	if opts.prefix > 0 && opts.prefix < n {
		n = opts.prefix
	}
	fmt.Fprintf(stdout, "compressing %s (%d of %d bytes)\n", opts.filename, n, info.Size())
	g, err := c.Compress()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFatal
	}
	fmt.Fprintf(stdout, "size of start symbol: %d\n", c.StartLength())
	fmt.Fprintf(stdout, "number of rounds: %d\n", c.Rounds())
	fmt.Fprintf(stdout, "number of non-terminals: %d\n", len(g.Rules))
	return exitOK
}

func parse(args []string, stderr io.Writer) (cmdline, int) {
	opts := cmdline{memory: 200}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-f":
			v, ok := optionValue(args, &i)
			if !ok {
				fmt.Fprintln(stderr, "Option -f requires a value")
				return opts, exitBadOption
			}
			opts.filename = v
		case "-p":
			v, ok := optionValue(args, &i)
			if !ok {
				fmt.Fprintln(stderr, "Option -p requires a value")
				return opts, exitBadOption
			}
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				fmt.Fprintf(stderr, "Invalid prefix length %q\n", v)
				return opts, exitBadNumber
			}
			opts.prefix = n
		case "-m":
			v, ok := optionValue(args, &i)
			if !ok {
				fmt.Fprintln(stderr, "Option -m requires a value")
				return opts, exitBadOption
			}
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				fmt.Fprintf(stderr, "Invalid memory amount %q\n", v)
				return opts, exitBadNumber
			}
			opts.memory = n
		default:
			fmt.Fprintf(stderr, "Unknown option %q\n", args[i])
			return opts, exitBadOption
		}
	}
	return opts, exitOK
}

func optionValue(args []string, i *int) (string, bool) {
	if *i+1 >= len(args) {
		return "", false
	}
	*i++
	return args[*i], true
}
