// Package classify decides, line by line, whether a record is kept and how
// it is rewritten. It never imports app, cli, pipeline or writers; keep it
// domain-only so the pipeline can fan it out without knowing what it does.
package classify
