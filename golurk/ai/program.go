package ai

import (
	"encoding/binary"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Instruction is one decoded opcode. Jump targets are instruction indexes, never byte offsets.
type Instruction struct {
	Op     Opcode
	Offset int

	// Args holds the non-address operands in order. Pointer compares carry the byte they point at.
	Args []int
	// List is the inline data of the list membership opcodes, terminator excluded
	List   []int
	Target int
}

func (inst Instruction) HasTarget() bool {
	return inst.Op.Jumps()
}

func (inst Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(inst.Op.String())

	parts := lo.Map(inst.Args, func(arg int, _ int) string {
		return fmt.Sprint(arg)
	})
	if inst.List != nil {
		parts = append(parts, fmt.Sprint(inst.List))
	}
	if inst.HasTarget() {
		parts = append(parts, fmt.Sprintf("-> %d", inst.Target))
	}

	if len(parts) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(parts, ", "))
	}

	return sb.String()
}

// Script is a decoded Program, ready to run. It is immutable and safe to share between goroutines.
type Script struct {
	Instructions []Instruction
	entries      [LOGIC_COUNT]int
}

// Entry returns the first instruction of a logic id, NO_ENTRY when it has none
func (s *Script) Entry(logic int) int {
	if logic < 0 || logic >= LOGIC_COUNT {
		return NO_ENTRY
	}

	return s.entries[logic]
}

func (s *Script) Disassemble(w io.Writer) error {
	entryAt := make(map[int][]int)
	for logic, entry := range s.entries {
		if entry != NO_ENTRY {
			entryAt[entry] = append(entryAt[entry], logic)
		}
	}

	for i, inst := range s.Instructions {
		for _, logic := range entryAt[i] {
			if _, err := fmt.Fprintf(w, "%s:\n", LogicName(logic)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "%5d  %04X  %s\n", i, inst.Offset, inst); err != nil {
			return err
		}
	}

	return nil
}

type decoder struct {
	code []byte
	// owner maps each code byte to the offset of the instruction covering it
	owner   map[int]int
	decoded map[int]Instruction
	work    []int
}

// Decode walks every path reachable from the entry points and builds the instruction sequence.
// Jumps that land outside the code or inside another instruction's operands, lists without a
// terminator and execution running off the end of the code are rejected with ErrBadScript.
// Unknown opcodes decode fine and stop the run when reached.
func Decode(prog Program) (*Script, error) {
	d := &decoder{
		code:    prog.Code,
		owner:   make(map[int]int),
		decoded: make(map[int]Instruction),
	}

	for logic, entry := range prog.Entries {
		if entry == NO_ENTRY {
			continue
		}
		if entry < 0 || entry >= len(prog.Code) {
			return nil, fmt.Errorf("%w: %s entry %d outside code", ErrBadScript, LogicName(logic), entry)
		}

		d.work = append(d.work, entry)
	}

	for len(d.work) > 0 {
		offset := d.work[len(d.work)-1]
		d.work = d.work[:len(d.work)-1]

		if err := d.decodeAt(offset); err != nil {
			return nil, err
		}
	}

	offsets := lo.Keys(d.decoded)
	slices.Sort(offsets)

	index := make(map[int]int, len(offsets))
	for i, offset := range offsets {
		index[offset] = i
	}

	script := &Script{Instructions: make([]Instruction, len(offsets))}
	for i, offset := range offsets {
		inst := d.decoded[offset]
		if inst.HasTarget() {
			inst.Target = index[inst.Target]
		}

		script.Instructions[i] = inst
	}

	for logic, entry := range prog.Entries {
		script.entries[logic] = NO_ENTRY
		if entry != NO_ENTRY {
			script.entries[logic] = index[entry]
		}
	}

	return script, nil
}

// LoadScript assembles and decodes in one go
func LoadScript(sources ...string) (*Script, error) {
	prog, err := Assemble(sources...)
	if err != nil {
		return nil, err
	}

	return Decode(prog)
}

func (d *decoder) decodeAt(offset int) error {
	if _, done := d.decoded[offset]; done {
		return nil
	}

	if offset < 0 || offset >= len(d.code) {
		return fmt.Errorf("%w: control reaches offset %d outside code", ErrBadScript, offset)
	}
	if start, covered := d.owner[offset]; covered {
		return fmt.Errorf("%w: offset %04X jumps into the operands of the instruction at %04X", ErrBadScript, offset, start)
	}

	op := Opcode(d.code[offset])
	inst := Instruction{Op: op, Offset: offset}

	size := op.Size()
	if !op.Valid() {
		size = 1
	}
	if offset+size > len(d.code) {
		return fmt.Errorf("%w: %s at %04X is truncated", ErrBadScript, op, offset)
	}

	for i := offset; i < offset+size; i++ {
		if start, covered := d.owner[i]; covered {
			return fmt.Errorf("%w: %s at %04X overlaps the instruction at %04X", ErrBadScript, op, offset, start)
		}
		if _, isStart := d.decoded[i]; isStart {
			return fmt.Errorf("%w: %s at %04X overlaps the instruction at %04X", ErrBadScript, op, offset, i)
		}
		d.owner[i] = offset
	}

	pos := offset + 1
	for _, kind := range op.operands() {
		var err error

		switch kind {
		case 'b':
			value := int(d.code[pos])
			if op == OP_SCORE {
				value = int(int8(d.code[pos]))
			}
			inst.Args = append(inst.Args, value)
		case 'h':
			inst.Args = append(inst.Args, int(binary.LittleEndian.Uint16(d.code[pos:])))
		case 'w':
			inst.Args = append(inst.Args, int(binary.LittleEndian.Uint32(d.code[pos:])))
		case 'p':
			addr := int(binary.LittleEndian.Uint32(d.code[pos:]))
			if addr >= len(d.code) {
				return fmt.Errorf("%w: %s at %04X points outside code", ErrBadScript, op, offset)
			}
			inst.Args = append(inst.Args, int(d.code[addr]))
		case 'l':
			inst.List, err = d.readList(int(binary.LittleEndian.Uint32(d.code[pos:])), 1)
		case 'L':
			inst.List, err = d.readList(int(binary.LittleEndian.Uint32(d.code[pos:])), 2)
		case 'j':
			inst.Target = int(binary.LittleEndian.Uint32(d.code[pos:]))
			d.work = append(d.work, inst.Target)
		}

		if err != nil {
			return fmt.Errorf("%s at %04X: %w", op, offset, err)
		}

		pos += operandSize(kind)
	}

	d.decoded[offset] = inst

	if op.FallsThrough() {
		if offset+size >= len(d.code) {
			return fmt.Errorf("%w: %s at %04X runs off the end of the code", ErrBadScript, op, offset)
		}
		d.work = append(d.work, offset+size)
	}

	return nil
}

func (d *decoder) readList(addr int, width int) ([]int, error) {
	terminator := 0xFF
	if width == 2 {
		terminator = 0xFFFF
	}

	list := []int{}
	for pos := addr; pos >= 0 && pos+width <= len(d.code); pos += width {
		value := int(d.code[pos])
		if width == 2 {
			value = int(binary.LittleEndian.Uint16(d.code[pos:]))
		}

		if value == terminator {
			return list, nil
		}
		list = append(list, value)
	}

	return nil, fmt.Errorf("%w: list at %04X has no terminator", ErrBadScript, addr)
}
