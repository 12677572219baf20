// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":         "0",
	"REGISTER_COUNT": fmt.Sprintf("%d", REGISTER_COUNT),
}

// sourceLine is the grammar of a single line, after comments and $(...)
// expressions are removed.
type sourceLine struct {
	Equate      *sourceEquate      `  @@`
	Instruction *sourceInstruction `| @@`
}

// .equ NAME VALUE
type sourceEquate struct {
	Name  string `".equ" @Ident`
	Value string `@(Register | Number | Ident)`
}

// mnemonic operand,operand,...
type sourceInstruction struct {
	Mnemonic string   `@Ident`
	Operands []string `( @(Register | Number | Ident) ( "," @(Register | Number | Ident) )* )?`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Directive", Pattern: `\.[a-zA-Z]+`},
	{Name: "Register", Pattern: `\$[a-zA-Z0-9]+`},
	{Name: "Number", Pattern: `[-+]?[0-9][0-9a-zA-Z_]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `,`},
})

var lineParser = participle.MustBuild[sourceLine](
	participle.Lexer(lineLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

var parenExpr = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler turns instruction scripts into programs.
type Assembler struct {
	Verbose bool              // If set, verbosely logs the assembler actions.
	Equate  map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines an equate that survives Reset.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Reset discards all equates except the system and predefined ones.
func (asm *Assembler) Reset() {
	asm.Equate = maps.Clone(sysEquate)
	maps.Copy(asm.Equate, asm.predefine)
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, _err := strconv.ParseInt(str, 0, 64)
		if _err != nil {
			// Ignore non-integer equates. They may be registers.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// ParseLine assembles one line of text. Lines holding only a comment, blank
// space or an .equ directive produce no statement.
func (asm *Assembler) ParseLine(text string, lineno int) (st Statement, ok bool, err error) {
	if asm.Equate == nil {
		asm.Reset()
	}

	line, _, _ := strings.Cut(text, ";")
	line, _, _ = strings.Cut(line, "#")
	line = strings.TrimSpace(line)

	if len(line) == 0 {
		return
	}

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Equate["LINENO"] = strconv.Itoa(lineno)

	// Do $() evaluations
	expanded := parenExpr.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return strconv.FormatInt(value, 10)
	})
	if err != nil {
		return
	}

	parsed, err := lineParser.ParseString("", expanded)
	if err != nil {
		if strings.HasPrefix(expanded, ".equ") {
			err = errors.Join(ErrEquateSyntax, ErrLineSyntax, err)
		} else {
			err = errors.Join(ErrLineSyntax, err)
		}
		return
	}

	if parsed.Equate != nil {
		name := parsed.Equate.Name
		if _, dup := asm.Equate[name]; dup {
			err = ErrEquateDuplicate
			return
		}
		value := parsed.Equate.Value
		if equate, found := asm.Equate[value]; found {
			value = equate
		}
		asm.Equate[name] = value
		if asm.Verbose {
			log.Printf("asm: %v: .equ %v %v", lineno, name, value)
		}
		return
	}

	if parsed.Instruction == nil {
		err = ErrLineSyntax
		return
	}

	words := slices.Clone(parsed.Instruction.Operands)
	for n, word := range words {
		equate, found := asm.Equate[word]
		if found {
			words[n] = equate
		}
	}

	st = Statement{
		LineNo:   lineno,
		Line:     line,
		Opcode:   parsed.Instruction.Mnemonic,
		Operands: strings.Join(words, ","),
	}
	ok = true

	if asm.Verbose {
		log.Printf("asm: %v: %v", lineno, st)
	}

	return
}

// Parse parses an input stream into a Program of statements.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	asm.Reset()

	prog = &Program{}

	var lineno int
	for scanner.Scan() {
		lineno += 1

		var st Statement
		var ok bool
		st, ok, err = asm.ParseLine(scanner.Text(), lineno)
		if err != nil {
			return
		}
		if ok {
			prog.Statements = append(prog.Statements, st)
		}
	}

	err = scanner.Err()
	return
}
