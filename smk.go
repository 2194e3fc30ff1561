//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/timburks/smk/commander"
	"github.com/timburks/smk/editor"
	"github.com/timburks/smk/screen"
	"github.com/timburks/smk/terminal"
	smk "github.com/timburks/smk/types"
)

func openTerminal(driver string) (smk.Terminal, error) {
	switch driver {
	case "tty":
		return terminal.OpenTTY()
	case "termbox":
		return terminal.OpenTermbox()
	default:
		return nil, fmt.Errorf("unknown driver %q", driver)
	}
}

// die clears the screen, restores the terminal and exits with an error.
func die(s *screen.Screen, err error) {
	log.Output(2, err.Error())
	if s != nil {
		s.Close()
	}
	fmt.Fprintf(os.Stderr, "smk: %v\n", err)
	os.Exit(1)
}

func main() {
	driver := flag.String("driver", "tty", "terminal driver: tty or termbox")
	lineNumbers := flag.String("line-numbers", "off", "line numbers: off, absolute or relative")
	logfile := flag.String("log", "", "write a debug log to this file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: smk [flags] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Open a log file. Stdout belongs to the editor.
	log.SetOutput(io.Discard)
	if *logfile != "" {
		f, err := os.OpenFile(*logfile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
		if err != nil {
			die(nil, err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	mode, ok := smk.ParseLineNumberMode(*lineNumbers)
	if !ok {
		die(nil, fmt.Errorf("unknown line number mode %q", *lineNumbers))
	}

	t, err := openTerminal(*driver)
	if err != nil {
		die(nil, err)
	}
	log.Printf("using %s driver", *driver)

	// Create a screen to manage display.
	s := screen.NewScreen(t)
	defer s.Close()

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	e.LineNumbers = mode
	if flag.NArg() > 0 {
		filename := flag.Arg(0)
		log.Printf("reading %s", filename)
		if err := e.ReadFile(filename); err != nil {
			die(s, err)
		}
	}
	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-O = open | Ctrl-N = line numbers")

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, s)

	// Run the main event loop.
	for c.IsRunning() {
		if err := s.Render(e); err != nil {
			die(s, err)
		}
		key, err := s.ReadKey()
		if err != nil {
			die(s, fmt.Errorf("reading input: %w", err))
		}
		if err := c.ProcessKey(key); err != nil {
			die(s, err)
		}
	}
}
