package query

// Lexer scans a condition string once and records where each operator
// character first occurs.
//
// Operator characters are ASCII, so scanning bytes is safe for UTF-8 input:
// they never appear inside a multi-byte sequence.
type Lexer struct {
	input string
	pos   int
	ch    byte
	first [3]int
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	for i := range l.first {
		l.first[i] = -1
	}
	l.readChar()
	return l
}

// readChar reads the next character
func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.pos]
	}
	l.pos++
}

// Scan walks the whole input and returns the lexer for chaining
func (l *Lexer) Scan() *Lexer {
	for l.pos <= len(l.input) {
		if op, ok := operatorFor(l.ch); ok && l.first[op] < 0 {
			l.first[op] = l.pos - 1
		}
		l.readChar()
	}
	return l
}

// Position returns the byte offset of the first occurrence of op, or -1
func (l *Lexer) Position(op Operator) int {
	if int(op) < 0 || int(op) >= len(l.first) {
		return -1
	}
	return l.first[op]
}

// Separator picks the operator that splits the condition. Operators are
// tried in priority order ("<", ">", "="), not by position, so "a=b<c"
// splits on "<".
func (l *Lexer) Separator() (Operator, int, bool) {
	for _, op := range operatorPriority {
		if pos := l.first[op]; pos >= 0 {
			return op, pos, true
		}
	}
	return 0, -1, false
}
