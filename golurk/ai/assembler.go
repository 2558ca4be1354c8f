package ai

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrBadScript = errors.New("bad ai script")

const NO_ENTRY = -1

// Program is assembled script bytecode plus the byte offset each logic id starts at
type Program struct {
	Code    []byte
	Entries [LOGIC_COUNT]int
}

type stmtKind int

const (
	STMT_INSTRUCTION stmtKind = iota
	STMT_LABEL
	STMT_BYTES
	STMT_HWORDS
	STMT_WORDS
	STMT_LOGIC
)

type statement struct {
	kind stmtKind
	line int
	name string
	op   Opcode
	args []string
}

func (s statement) size() int {
	switch s.kind {
	case STMT_INSTRUCTION:
		return s.op.Size()
	case STMT_BYTES:
		return len(s.args)
	case STMT_HWORDS:
		return 2 * len(s.args)
	case STMT_WORDS:
		return 4 * len(s.args)
	}

	return 0
}

var (
	envOnce sync.Once
	env     map[string]any
)

func symbols() map[string]any {
	envOnce.Do(func() {
		env = scriptConstants()
	})

	return env
}

// Assemble turns script source into a Program. Sources are laid out back to back, so labels
// in one may be referenced from another.
//
// Syntax, one statement per line:
//
//	Label:                  defines a label at the current offset
//	if_hp_less_than AI_USER, 50, Label
//	.byte EFFECT_SLEEP, EFFECT_YAWN, -1
//	.2byte MOVE_FISSURE, -1
//	.logic LOGIC_TRY_TO_FAINT, Label
//
// Everything after @ or // is a comment. Operands that are not addresses are expressions
// over the script constants, e.g. bitor(STATUS1_SLEEP, STATUS1_FREEZE).
func Assemble(sources ...string) (Program, error) {
	var stmts []statement

	lineOffset := 0
	for _, source := range sources {
		parsed, lines, err := parse(source, lineOffset)
		if err != nil {
			return Program{}, err
		}

		stmts = append(stmts, parsed...)
		lineOffset += lines
	}

	labels := make(map[string]int)
	offset := 0
	for _, stmt := range stmts {
		if stmt.kind == STMT_LABEL {
			if _, exists := labels[stmt.name]; exists {
				return Program{}, fmt.Errorf("%w: line %d: duplicate label %q", ErrBadScript, stmt.line, stmt.name)
			}
			labels[stmt.name] = offset
		}

		offset += stmt.size()
	}

	prog := Program{Code: make([]byte, 0, offset)}
	for i := range prog.Entries {
		prog.Entries[i] = NO_ENTRY
	}

	for _, stmt := range stmts {
		var err error

		switch stmt.kind {
		case STMT_INSTRUCTION:
			prog.Code, err = emitInstruction(prog.Code, stmt, labels)
		case STMT_BYTES:
			prog.Code, err = emitData(prog.Code, stmt, 1)
		case STMT_HWORDS:
			prog.Code, err = emitData(prog.Code, stmt, 2)
		case STMT_WORDS:
			prog.Code, err = emitData(prog.Code, stmt, 4)
		case STMT_LOGIC:
			err = setEntry(&prog, stmt, labels)
		}

		if err != nil {
			return Program{}, err
		}
	}

	return prog, nil
}

func parse(source string, lineOffset int) ([]statement, int, error) {
	var stmts []statement

	scanner := bufio.NewScanner(strings.NewReader(source))
	lineNo := lineOffset
	for scanner.Scan() {
		lineNo++

		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasSuffix(line, ":") {
			stmts = append(stmts, statement{kind: STMT_LABEL, line: lineNo, name: strings.TrimRight(line, ":")})
			continue
		}

		name, rest, _ := strings.Cut(line, " ")
		args := splitArgs(rest)

		switch name {
		case ".byte":
			stmts = append(stmts, statement{kind: STMT_BYTES, line: lineNo, args: args})
			continue
		case ".2byte":
			stmts = append(stmts, statement{kind: STMT_HWORDS, line: lineNo, args: args})
			continue
		case ".4byte":
			stmts = append(stmts, statement{kind: STMT_WORDS, line: lineNo, args: args})
			continue
		case ".logic":
			if len(args) != 2 {
				return nil, 0, fmt.Errorf("%w: line %d: .logic takes an id and a label", ErrBadScript, lineNo)
			}
			stmts = append(stmts, statement{kind: STMT_LOGIC, line: lineNo, args: args})
			continue
		}

		expanded := [][]string{append([]string{name}, args...)}
		if macro, ok := macros[name]; ok {
			var err error
			if expanded, err = macro(args); err != nil {
				return nil, 0, fmt.Errorf("%w: line %d: %w", ErrBadScript, lineNo, err)
			}
		}

		for _, inst := range expanded {
			op, ok := LookupOpcode(inst[0])
			if !ok {
				return nil, 0, fmt.Errorf("%w: line %d: unknown instruction %q", ErrBadScript, lineNo, inst[0])
			}
			if len(inst)-1 != len(op.operands()) {
				return nil, 0, fmt.Errorf("%w: line %d: %s takes %d operands, got %d",
					ErrBadScript, lineNo, op, len(op.operands()), len(inst)-1)
			}

			stmts = append(stmts, statement{kind: STMT_INSTRUCTION, line: lineNo, op: op, args: inst[1:]})
		}
	}

	return stmts, lineNo - lineOffset, scanner.Err()
}

func stripComment(line string) string {
	if i := strings.Index(line, "@"); i >= 0 {
		line = line[:i]
	}
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}

	return strings.TrimSpace(line)
}

// splitArgs splits on commas that are not inside parentheses
func splitArgs(s string) []string {
	var args []string

	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}

	if last := strings.TrimSpace(s[start:]); last != "" || len(args) > 0 {
		args = append(args, last)
	}

	return args
}

func evaluate(src string, line int) (int, error) {
	program, err := expr.Compile(src, expr.Env(symbols()))
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %w", ErrBadScript, line, err)
	}

	out, err := vm.Run(program, symbols())
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %w", ErrBadScript, line, err)
	}

	switch v := out.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("%w: line %d: %q is not a number", ErrBadScript, line, src)
}

func resolveLabel(name string, line int, labels map[string]int) (int, error) {
	offset, ok := labels[name]
	if !ok {
		return 0, fmt.Errorf("%w: line %d: undefined label %q", ErrBadScript, line, name)
	}

	return offset, nil
}

// appendValue writes value in size little-endian bytes, accepting negative values that fit the signed range
func appendValue(code []byte, value int, size int, line int) ([]byte, error) {
	bits := 8 * size
	if value < -(1<<(bits-1)) || value >= 1<<bits {
		return nil, fmt.Errorf("%w: line %d: %d does not fit in %d bytes", ErrBadScript, line, value, size)
	}

	switch size {
	case 1:
		return append(code, byte(value)), nil
	case 2:
		return binary.LittleEndian.AppendUint16(code, uint16(value)), nil
	}

	return binary.LittleEndian.AppendUint32(code, uint32(value)), nil
}

func emitInstruction(code []byte, stmt statement, labels map[string]int) ([]byte, error) {
	code = append(code, byte(stmt.op))

	for i, kind := range stmt.op.operands() {
		var value int
		var err error

		switch kind {
		case 'j', 'p', 'l', 'L':
			value, err = resolveLabel(stmt.args[i], stmt.line, labels)
		default:
			value, err = evaluate(stmt.args[i], stmt.line)
		}
		if err != nil {
			return nil, err
		}

		if code, err = appendValue(code, value, operandSize(kind), stmt.line); err != nil {
			return nil, err
		}
	}

	return code, nil
}

func emitData(code []byte, stmt statement, size int) ([]byte, error) {
	for _, arg := range stmt.args {
		value, err := evaluate(arg, stmt.line)
		if err != nil {
			return nil, err
		}

		if code, err = appendValue(code, value, size, stmt.line); err != nil {
			return nil, err
		}
	}

	return code, nil
}

func setEntry(prog *Program, stmt statement, labels map[string]int) error {
	logic, err := evaluate(stmt.args[0], stmt.line)
	if err != nil {
		return err
	}
	if logic < 0 || logic >= LOGIC_COUNT {
		return fmt.Errorf("%w: line %d: logic id %d out of range", ErrBadScript, stmt.line, logic)
	}

	offset, err := resolveLabel(stmt.args[1], stmt.line, labels)
	if err != nil {
		return err
	}

	prog.Entries[logic] = offset
	return nil
}
