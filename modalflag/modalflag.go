// This file is part of widegb.
//
// widegb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// widegb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with widegb.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse().
type Modes struct {
	// where to print help messages. defaults to os.Stdout
	Output io.Writer

	// recreated by NewMode()
	flags *flag.FlagSet

	// the argument list and the index of the first argument that has not
	// been consumed by a mode
	args    []string
	argsIdx int

	// sub-modes available to the next call to Parse(). the first entry is
	// the default
	subModes []string

	// modes selected by each call to Parse(). never reset
	path []string

	// printed after the flag information on -help
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to be parsed and begins a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode forgets the flags and sub-modes of the previous mode. Arguments
// not consumed by earlier calls to Parse() remain.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.Usage = func() {}
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
}

// AdditionalHelp is printed after the flag and sub-mode information.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubModes adds to the list of sub-modes. The first sub-mode to be added
// is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// command line processing should continue. if sub-modes were added the
	// selected mode can be retrieved with Mode()
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// the error returned alongside this result explains the problem
	ParseError
)

// Parse the arguments not yet consumed.
func (md *Modes) Parse() (ParseResult, error) {
	// error messages from the flag package are returned, not printed
	md.flags.SetOutput(io.Discard)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.help()
			return ParseHelp, nil
		}
		return ParseError, fmt.Errorf("modalflag: %w", err)
	}

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m == arg {
			mode = m

			// the mode argument and any flags preceding it have been consumed
			md.argsIdx = len(md.args) - md.flags.NArg() + 1
			break // for loop
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

func (md *Modes) help() {
	output := md.Output
	if output == nil {
		output = os.Stdout
	}

	var numFlags int
	md.flags.VisitAll(func(_ *flag.Flag) {
		numFlags++
	})

	if numFlags == 0 && len(md.subModes) == 0 && md.additionalHelp == "" {
		if md.Path() == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s mode\n", md.Path())
		}
		return
	}

	if md.Path() == "" {
		fmt.Fprintln(output, "Usage:")
	} else {
		fmt.Fprintf(output, "Usage of %s mode:\n", md.Path())
	}

	if numFlags > 0 {
		md.flags.SetOutput(output)
		md.flags.PrintDefaults()
	}

	if len(md.subModes) > 0 {
		if numFlags > 0 {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", md.additionalHelp)
	}
}

// RemainingArgs returns the arguments left over after the most recent call
// to Parse(). A mode argument is not included.
func (md *Modes) RemainingArgs() []string {
	args := md.flags.Args()
	if len(md.subModes) > 0 && len(args) > 0 && strings.ToUpper(args[0]) == md.Mode() {
		return args[1:]
	}
	return args
}

// GetArg returns the numbered argument from the list returned by
// RemainingArgs(). An empty string is returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddBool adds a boolean flag to the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration adds a duration flag to the current mode.
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt adds an integer flag to the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString adds a string flag to the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Pair is a flag value of the form "a,b".
type Pair struct {
	A, B int

	// the flag was specified on the command line
	Specified bool
}

func (p *Pair) String() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d,%d", p.A, p.B)
}

type pairValue struct {
	*Pair
}

func (v pairValue) Set(s string) error {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("expected two comma separated values")
	}

	var err error
	v.A, err = strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return err
	}
	v.B, err = strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return err
	}
	v.Specified = true

	return nil
}

// AddPair adds a flag taking two comma separated integers to the current
// mode.
func (md *Modes) AddPair(name string, a, b int, usage string) *Pair {
	p := &Pair{A: a, B: b}
	md.flags.Var(pairValue{Pair: p}, name, usage)
	return p
}

// Visit calls fn for every flag that was set by the most recent call to
// Parse().
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
