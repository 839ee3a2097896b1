package gcode

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFormatter_Number(t *testing.T) {
	tests := []struct {
		name string
		f    Formatter
		v    float64
		want string
	}{
		{"whole", Formatter{}, 5, "5"},
		{"negative whole", Formatter{}, -2, "-2"},
		{"zero", Formatter{}, 0, "0"},
		{"negative zero", Formatter{}, -0.00001, "0"},
		{"trim zeros", Formatter{}, 1.25, "1.25"},
		{"round", Formatter{}, -0.250980392, "-0.251"},
		{"precision 2", Formatter{Precision: 2}, 3.14159, "3.14"},
		{"precision clamp", Formatter{Precision: 50}, 0.5, "0.5"},
		{"large", Formatter{}, 1234.5, "1234.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Number(tt.v); got != tt.want {
				t.Errorf("Number(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestBlock_Format(t *testing.T) {
	tests := []struct {
		b    Block
		want string
	}{
		{Block{Command: Rapid, Words: []Word{Z(5)}}, "G00Z5"},
		{Block{Command: Rapid, Words: []Word{X(1.1), Y(2.2)}}, "G00X1.1Y2.2"},
		{Block{Command: Linear, Words: []Word{Z(-0.125)}}, "G01Z-0.125"},
		{Block{Command: "M30"}, "M30"},
	}

	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("Block.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBlock_Has(t *testing.T) {
	b := Block{Command: Rapid, Words: []Word{X(1), Y(2)}}
	if !b.Has('Y') {
		t.Error("Has('Y') = false, want true")
	}
	if b.Has('Z') {
		t.Error("Has('Z') = true, want false")
	}
}

func TestProgram_Build(t *testing.T) {
	var p Program
	p.Rapid(Z(5))
	p.Rapid(X(1.1), Y(2))
	p.Linear(Z(-0.25))

	want := []Block{
		{Command: Rapid, Words: []Word{Z(5)}},
		{Command: Rapid, Words: []Word{X(1.1), Y(2)}},
		{Command: Linear, Words: []Word{Z(-0.25)}},
	}
	if diff := cmp.Diff(want, p.Blocks()); diff != "" {
		t.Errorf("Blocks() mismatch (-want +got):\n%s", diff)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}

	wantText := "G00Z5\nG00X1.1Y2\nG01Z-0.25\n"
	if got := p.String(); got != wantText {
		t.Errorf("String() = %q, want %q", got, wantText)
	}
}

func TestProgram_Concat(t *testing.T) {
	a := NewProgram(2)
	a.Rapid(Z(1))
	b := NewProgram(1)
	b.Linear(Z(-1))

	a.Concat(b)
	a.Concat(nil)

	if got, want := a.String(), "G00Z1\nG01Z-1\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestProgram_EncodeMatchesFormat(t *testing.T) {
	p := NewProgram(0)
	for i := range 100 {
		p.Rapid(X(float64(i)*0.3), Y(float64(i)))
		p.Linear(Z(-float64(i) / 7))
	}

	var buf bytes.Buffer
	if err := p.Encode(&buf, Formatter{Precision: 3}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got, want := buf.String(), p.Format(Formatter{Precision: 3}); got != want {
		t.Error("Encode() output differs from Format()")
	}
}

func TestEnvelope_Write(t *testing.T) {
	p := NewProgram(0)
	p.Rapid(Z(0.1))

	tests := []struct {
		name string
		env  Envelope
		want []string
	}{
		{
			name: "no coolant",
			env: Envelope{
				Generated: time.Date(2011, time.March, 4, 13, 5, 9, 0, time.UTC),
				Preamble:  "G20\nG90",
				Feed:      10,
				Speed:     1000,
			},
			want: []string{
				"(Generated by the CNC Halftone Wizard.)",
				"(Generated at 13:05:09 04 Mar 2011)",
				"G20",
				"G90",
				"F10",
				"S1000",
				"G00Z0.1",
				"M30",
			},
		},
		{
			name: "coolant and empty preamble",
			env:  Envelope{Title: "job (1)", Feed: 2.5, Speed: 0, Coolant: true},
			want: []string{
				"(job [1])",
				"",
				"F2.5",
				"S0",
				"M08",
				"G00Z0.1",
				"M09",
				"M30",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.env.Write(&buf, p, Formatter{}); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Write() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEnvelope_WriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ngc")

	p := NewProgram(0)
	p.Rapid(Z(5))
	if err := (Envelope{}).WriteFile(path, p, Formatter{}); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\nG00Z5\nM30\n") {
		t.Errorf("file content = %q, missing program body", data)
	}
}

func TestEnvelope_WriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.ngc")

	err := (Envelope{}).WriteFile(path, NewProgram(0), Formatter{})
	if err == nil {
		t.Fatal("WriteFile() into missing directory should fail")
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("WriteFile() error = %v, want wrapped *fs.PathError", err)
	}
}
