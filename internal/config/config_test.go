package config

import (
	"errors"
	"io"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	opts, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.FindAll {
		t.Error("FindAll should default to false")
	}
	if opts.AllowRepeat {
		t.Error("AllowRepeat should default to false")
	}
	if opts.Fill != DefaultFill {
		t.Errorf("Fill = %q, want %q", opts.Fill, DefaultFill)
	}
	if opts.ImagePath != "" || opts.TileFile != "" {
		t.Errorf("ImagePath/TileFile should default empty, got %q / %q", opts.ImagePath, opts.TileFile)
	}
}

func TestParseRejectsConflictingMode(t *testing.T) {
	_, err := Parse([]string{"-A", "-O"}, io.Discard)
	if !errors.Is(err, ErrConflictingMode) {
		t.Fatalf("Parse(-A -O) err = %v, want %v", err, ErrConflictingMode)
	}
}

func TestParseLongAndShortFlagsAgree(t *testing.T) {
	short, err := Parse([]string{"-A", "-r", "-w", "o"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	long, err := Parse([]string{"-all", "-allow-repeat", "-w", "o"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *short != *long {
		t.Errorf("short/long flags disagree: %+v vs %+v", short, long)
	}
	if !short.FindAll || !short.AllowRepeat || short.Fill != 'o' {
		t.Errorf("unexpected parsed options: %+v", short)
	}
}

func TestParsePassesThroughFilePaths(t *testing.T) {
	opts, err := Parse([]string{"-i", "board.txt", "-b", "pieces.txt"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.ImagePath != "board.txt" || opts.TileFile != "pieces.txt" {
		t.Errorf("unexpected paths: %+v", opts)
	}
}
