package ingest

import "fmt"

// Logger receives non-fatal per-row ingestion warnings (spec §7: "non-fatal
// per-row issues are logged via an injected logger; the offending cell is
// treated as null"). Mirrors the teacher's database.Logger shape.
type Logger interface {
	Print(v ...any)
	Printf(format string, v ...any)
	Println(v ...any)
}

// StdoutLogger writes every message to stdout.
type StdoutLogger struct{}

func (s StdoutLogger) Print(v ...any)                 { fmt.Print(v...) }
func (s StdoutLogger) Printf(format string, v ...any) { fmt.Printf(format, v...) }
func (s StdoutLogger) Println(v ...any)               { fmt.Println(v...) }

// NullLogger discards every message; the default when no logger is
// injected.
type NullLogger struct{}

func (n NullLogger) Print(v ...any)                 {}
func (n NullLogger) Printf(format string, v ...any) {}
func (n NullLogger) Println(v ...any)               {}
