// Command minipy runs guest-language source files, or, with no arguments,
// opens a line-oriented prompt, generalized to a block-structured guest
// language where a single REPL "statement" can span several indented
// lines.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"minipy"
	"minipy/lexer"
	"minipy/object"
	"minipy/parser"
)

func main() {
	args := os.Args[1:]
	if len(args) == 2 && args[0] == "--ast" {
		os.Exit(dumpAst(args[1]))
	}
	switch len(args) {
	case 0:
		if err := runPrompt(); err != nil {
			log.Fatal(err)
		}
	case 1:
		os.Exit(runFile(args[0]))
	default:
		fmt.Fprintln(os.Stderr, "usage: minipy [--ast] [script]")
		os.Exit(64)
	}
}

// dumpAst parses path without executing it and prints the parenthesized
// debug form of its root Compound as a single "(block ...)" line — a
// diagnostic companion to runFile for inspecting what the parser built.
func dumpAst(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 66
	}
	prog, err := parser.Parse(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	fmt.Println(prog.String())
	return 0
}

// runFile reads path in full and executes it as one program against
// stdout: exit 0 on success, a distinct non-zero code per error kind
// otherwise.
func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 66
	}

	ctx := object.NewContext(os.Stdout)
	if err := minipy.Run(string(src), ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	return 0
}

// exitCodeFor assigns sysexits.h-flavored codes to each of the three
// disjoint error kinds the interpreter can raise: a malformed token
// stream is a data error (65), a malformed program is a usage error
// (64), and anything else is a runtime failure (70).
func exitCodeFor(err error) int {
	switch err.(type) {
	case *lexer.Error:
		return 65
	case *parser.Error:
		return 64
	default:
		return 70
	}
}

// runPrompt reads one logical unit of source at a time — consecutive
// non-blank lines, the way a blank line ends a multi-line def/class/if
// block the same way it does at a Python prompt — and runs each against
// one persistent Session, so a binding made on one line is visible on the
// next. Errors are printed and the prompt continues so the user can
// retry.
func runPrompt() error {
	reader := bufio.NewReader(os.Stdin)
	session := minipy.NewSession()
	ctx := object.NewContext(os.Stdout)

	for {
		fmt.Print(">>> ")
		chunk, err := readChunk(reader)
		if err == io.EOF && chunk == "" {
			return nil
		}
		if chunk == "" {
			if err != nil {
				return err
			}
			continue
		}
		if runErr := session.Run(chunk, ctx); runErr != nil {
			fmt.Fprintln(os.Stderr, runErr)
		}
		if err == io.EOF {
			return nil
		}
	}
}

// readChunk accumulates lines until a blank line or EOF, returning
// whatever was read alongside the error (io.EOF included) that stopped it.
func readChunk(reader *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		line, err := reader.ReadString('\n')
		trimmed := strings.TrimRight(line, "\n")
		if trimmed != "" {
			sb.WriteString(trimmed)
			sb.WriteByte('\n')
		}
		if err != nil {
			return sb.String(), err
		}
		if trimmed == "" && sb.Len() > 0 {
			return sb.String(), nil
		}
		if trimmed == "" {
			return "", nil
		}
	}
}
