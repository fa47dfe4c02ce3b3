// Command base122 encodes and decodes Base122 text on the command line.
package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/mnightingale/base122"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// EncodeCommand encodes its argument, or standard input, to Base122.
type EncodeCommand struct {
	Args struct {
		Text []string `positional-arg-name:"TEXT"`
	} `positional-args:"yes"`
}

func (c *EncodeCommand) Execute(args []string) error {
	data, err := inputBytes(c.Args.Text)
	if err != nil {
		return err
	}

	fmt.Println(base122.Encode(data))
	return nil
}

// DecodeCommand decodes its argument, or standard input, back to raw bytes
// on standard output.
type DecodeCommand struct {
	Args struct {
		Text []string `positional-arg-name:"ENCODED"`
	} `positional-args:"yes"`
}

func (c *DecodeCommand) Execute(args []string) error {
	var encoded string
	if len(c.Args.Text) > 0 {
		encoded = c.Args.Text[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return errors.WithStack(err)
		}
		// Shells append a trailing newline when piping encoded text around.
		encoded = strings.TrimSpace(string(data))
	}

	decoded, err := base122.Decode(encoded)
	if err != nil {
		return err
	}

	if _, err := os.Stdout.Write(decoded); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// inputBytes returns the first positional argument as bytes, or everything
// from standard input when no argument was given.
func inputBytes(args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}

func addCommand(parser *flags.Parser, name, short, long string, cmd interface{}) {
	if _, err := parser.AddCommand(name, short, long, cmd); err != nil {
		log.Errorf("%+v", errors.WithStack(err))
		os.Exit(1)
	}
}

func main() {
	parser := flags.NewNamedParser(path.Base(os.Args[0]), flags.HelpFlag|flags.PrintErrors)

	addCommand(parser,
		"encode",
		"Encode data to Base122",
		"Encode the given text, or standard input, and print the Base122 text",
		&EncodeCommand{},
	)
	addCommand(parser,
		"decode",
		"Decode Base122 text",
		"Decode the given Base122 text, or standard input, and write the raw bytes to standard output",
		&DecodeCommand{},
	)
	addCommand(parser,
		"demo",
		"Run a demonstration",
		"Encode and decode a set of example inputs and report sizes against Base64",
		&DemoCommand{},
	)
	addCommand(parser,
		"benchmark",
		"Run performance benchmarks",
		"Measure encode/decode throughput and output density against Base64 and Base91",
		&BenchmarkCommand{},
	)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		if _, ok := err.(*flags.Error); !ok {
			log.Errorf("%v", err)
		}
		os.Exit(1)
	}
}
