// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
)

// Errorf prints "Error: ..." to dst, in red when dst is a color-capable terminal.
func Errorf(dst io.Writer, format string, a ...any) {
	printTagged(dst, errColor, "Error: ", format, a...)
}

// Warnf prints "WARNING: ..." unless quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	printTagged(dst, warnColor, "WARNING: ", format, a...)
}

func printTagged(dst io.Writer, c *color.Color, tag, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if useColor(dst) {
		_, _ = c.Fprint(dst, tag)
		_, _ = fmt.Fprintln(dst, msg)
		return
	}
	_, _ = fmt.Fprintln(dst, tag+msg)
}

// useColor is true only for real terminals; buffers and pipes stay plain.
func useColor(dst io.Writer) bool {
	f, ok := dst.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return f == os.Stderr || f == os.Stdout
}
