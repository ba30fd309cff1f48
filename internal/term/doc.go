// Package term holds the terminal plumbing used by the tooltip terminal host:
// window size, raw mode, input readiness and the ANSI sequences for cursor
// movement, the alternate screen and SGR mouse reporting.
package term
