// Package writers owns everything that lands on disk or stdout.
//
// Design:
//   • Output files are written atomically (temp + rename); a failed run
//     never leaves a truncated file behind.
//   • Lines are written verbatim; terminators travel with the line.
//   • Broken pipes on stdout are not errors (see IsBrokenPipe).
package writers
