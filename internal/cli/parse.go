// internal/cli/parse.go
package cli

import (
	"errors"
	"io"

	"github.com/alecthomas/kong"

	"assayfilter/internal/version"
)

// ErrHelp is returned when --help or --version was handled during parsing;
// the caller should exit 0 without doing any work.
var ErrHelp = errors.New("help requested")

// LogFlags are shared by every command.
type LogFlags struct {
	Level  string `default:"warn" enum:"debug,info,warn,error" help:"Diagnostic log level (${enum})."`
	Format string `default:"text" enum:"text,json" help:"Diagnostic log format (${enum})."`
}

// exitSignal carries kong's exit request out of Parse without killing the process.
type exitSignal int

func parse(target any, name, desc string, argv []string, stdout, stderr io.Writer) (err error) {
	parser, err := kong.New(target,
		kong.Name(name),
		kong.Description(desc),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitSignal(code)) }),
		kong.Vars{"version": name + " version " + version.Version},
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(exitSignal); ok {
				err = ErrHelp
				return
			}
			panic(r)
		}
	}()
	_, err = parser.Parse(argv)
	return err
}

// PrintUsage prints the compact usage attached to a kong parse error. It
// reports false when err did not come from the parser.
func PrintUsage(err error) bool {
	var pe *kong.ParseError
	if !errors.As(err, &pe) || pe.Context == nil {
		return false
	}
	_ = pe.Context.PrintUsage(true)
	return true
}
