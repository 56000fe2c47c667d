// Command vtdump feeds a byte stream through a terminal screen and
// prints the resulting grid plus any pending replies.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/vtscreen/govte"
	"github.com/vtscreen/govte/screen"
)

func main() {
	lines := flag.Int("lines", 24, "screen height in rows")
	columns := flag.Int("columns", 80, "screen width in columns")
	strict := flag.Bool("strict", false, "panic on internal bounds violations instead of skipping them")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var input []byte
	var err error
	if path := flag.Arg(0); path != "" {
		input, err = os.ReadFile(path)
	} else {
		input, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to read input")
	}

	s, err := screen.NewScreen(*lines, *columns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to construct screen")
	}
	s.Strict = *strict
	s.SetLogger(screen.NewZerologAdapter(logger))

	p := govte.NewProcessor(s)
	p.Advance(s, input)

	dumpGrid(s)

	if reply := s.DrainReplyBuffer(); len(reply) > 0 {
		fmt.Printf("\nreply buffer: %q\n", string(reply))
	}
}

func dumpGrid(s *screen.Screen) {
	lines, columns := s.Dimensions()
	x, y := s.CursorPos()

	fmt.Printf("%dx%d, cursor (%d, %d)\n", lines, columns, x, y)
	fmt.Println(strings.Repeat("-", columns))
	for _, line := range s.Lines() {
		fmt.Println(line.String())
	}
	fmt.Println(strings.Repeat("-", columns))
}
