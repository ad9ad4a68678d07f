// Command mathex is a small CLI around the mathex expression evaluator.
//
// It supports three modes of operation:
//   - Expression evaluation mode (-e flag)
//   - Interactive REPL mode (-i flag)
//   - File evaluation mode (positional argument)
//
// Examples:
//
//	mathex -e "atan(1)*4 - pi"   # Evaluate expression
//	mathex -i                    # Start REPL
//	mathex file.expr             # Evaluate file contents
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/conneroisu/mathex"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive REPL mode")
		expression  = flag.String("e", "", "Evaluate expression")
		help        = flag.Bool("h", false, "Show help")
	)
	flag.Parse()

	switch {
	case *help:
		showHelp()
	case *expression != "":
		evalExpression(*expression)
	case *interactive:
		startREPL()
	case flag.NArg() > 0:
		evalFile(flag.Arg(0))
	default:
		showHelp()
	}
}

func showHelp() {
	fmt.Println("mathex - a small arithmetic expression evaluator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  mathex [options] [file]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -i          Interactive REPL mode")
	fmt.Println("  -e EXPR     Evaluate expression")
	fmt.Println("  -h          Show this help")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  mathex -e 'atan(1)*4 - pi'")
	fmt.Println("  mathex -i")
	fmt.Println("  mathex file.expr")
}

func evalExpression(expr string) {
	result, err := mathex.Interp(expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result)
}

func evalFile(filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrapf(err, "reading %s", filename))
		os.Exit(1)
	}

	evalExpression(strings.TrimSpace(string(content)))
}

func startREPL() {
	fmt.Println("mathex repl - Type :quit to exit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("mathex> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == ":quit" || line == ":q" {
			break
		}

		if strings.HasPrefix(line, ":") {
			handleReplCommand(line)

			continue
		}

		result, err := mathex.Interp(line)
		if err != nil {
			fmt.Printf("Parse error: %v\n", err)

			continue
		}

		fmt.Println(result)
	}
}

func handleReplCommand(cmd string) {
	switch cmd {
	case ":help", ":h":
		fmt.Println("Available commands:")
		fmt.Println("  :help, :h    Show this help")
		fmt.Println("  :quit, :q    Exit the REPL")
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		fmt.Println("Type :help for available commands")
	}
}
