package gcode

import (
	"bufio"
	"io"
)

// Motion commands.
const (
	// Rapid moves the tool at maximum speed (not cutting).
	Rapid = "G00"

	// Linear moves the tool at the programmed feed rate (cutting).
	Linear = "G01"
)

// Word is one address word, such as X1.5 or Z-0.25.
type Word struct {
	Letter byte
	Value  float64
}

// X returns an X-axis word.
func X(v float64) Word { return Word{Letter: 'X', Value: v} }

// Y returns a Y-axis word.
func Y(v float64) Word { return Word{Letter: 'Y', Value: v} }

// Z returns a Z-axis word.
func Z(v float64) Word { return Word{Letter: 'Z', Value: v} }

// Block is a single program line.
type Block struct {
	Command string
	Words   []Word
}

// Has reports whether the block carries a word for letter.
func (b Block) Has(letter byte) bool {
	for _, w := range b.Words {
		if w.Letter == letter {
			return true
		}
	}
	return false
}

// AppendFormat appends the textual form of b, without a line terminator.
func (b Block) AppendFormat(dst []byte, f Formatter) []byte {
	dst = append(dst, b.Command...)
	for _, w := range b.Words {
		dst = append(dst, w.Letter)
		dst = f.appendNumber(dst, w.Value)
	}
	return dst
}

// Format returns b as text using f.
func (b Block) Format(f Formatter) string {
	return string(b.AppendFormat(nil, f))
}

// String returns b formatted with the zero Formatter.
func (b Block) String() string {
	return b.Format(Formatter{})
}

// Program is an ordered, append-only list of blocks.
//
// The zero value is an empty program ready to use. Program is not safe for
// concurrent mutation; builders that work in parallel should build
// separate programs and Concat them in order.
type Program struct {
	blocks []Block
}

// NewProgram returns an empty program with room for n blocks.
func NewProgram(n int) *Program {
	return &Program{blocks: make([]Block, 0, n)}
}

// Rapid appends a G00 block.
func (p *Program) Rapid(words ...Word) {
	p.blocks = append(p.blocks, Block{Command: Rapid, Words: words})
}

// Linear appends a G01 block.
func (p *Program) Linear(words ...Word) {
	p.blocks = append(p.blocks, Block{Command: Linear, Words: words})
}

// Concat appends every block of q.
func (p *Program) Concat(q *Program) {
	if q == nil {
		return
	}
	p.blocks = append(p.blocks, q.blocks...)
}

// Blocks returns the program's blocks. The slice must not be modified.
func (p *Program) Blocks() []Block {
	return p.blocks
}

// Len returns the number of blocks. A nil program has none.
func (p *Program) Len() int {
	if p == nil {
		return 0
	}
	return len(p.blocks)
}

// Format returns the program as newline-terminated text.
func (p *Program) Format(f Formatter) string {
	buf := make([]byte, 0, len(p.blocks)*16)
	for _, b := range p.blocks {
		buf = b.AppendFormat(buf, f)
		buf = append(buf, '\n')
	}
	return string(buf)
}

// String formats the program with the zero Formatter.
func (p *Program) String() string {
	return p.Format(Formatter{})
}

// Encode writes the program to w using f.
func (p *Program) Encode(w io.Writer, f Formatter) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, 32)
	for _, b := range p.blocks {
		line = b.AppendFormat(line[:0], f)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
