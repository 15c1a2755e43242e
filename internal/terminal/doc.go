// Package terminal provides the two terminal capabilities the game needs:
// key-by-key input and styled, clearable output.
//
// Features:
//   - Raw mode (no line buffering, no echo) via golang.org/x/term, restored on Close
//   - Raw byte decoding into key events; escape sequences are swallowed
//   - A buffered key stream with pacing waits that keep keys typed meanwhile
//   - ANSI styling through a colorable writer, disabled for non-terminals and NO_COLOR
//
// Both capabilities are plain values (Keys over a channel, Screen over an io.Writer)
// so tests can script key sequences and capture rendered frames.
package terminal
