package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/loxi-lang/loxi/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	tokShowPos    bool
	tokShowType   bool
	tokOnlyErrors bool
	tokJSON       bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [script]",
	Short: "Print the token stream for a Language program",
	Long: `Tokenize a Language program and print the resulting tokens.

Examples:
  # Tokenize a script file
  loxi tokens script.lox

  # Show token types and positions
  loxi tokens --show-type --show-pos script.lox

  # Show only illegal tokens
  loxi tokens --only-errors script.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: tokenizeScript,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from a file")
	tokensCmd.Flags().BoolVar(&tokShowPos, "show-pos", false, "show token positions (line:column)")
	tokensCmd.Flags().BoolVar(&tokShowType, "show-type", false, "show token type names")
	tokensCmd.Flags().BoolVar(&tokOnlyErrors, "only-errors", false, "show only illegal tokens")
	tokensCmd.Flags().BoolVar(&tokJSON, "json", false, "serialize tokens as a JSON array")
}

type jsonToken struct {
	Type    string `json:"type"`
	Lexeme  string `json:"lexeme"`
	Literal any    `json:"literal,omitempty"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

func tokenizeScript(_ *cobra.Command, args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(source)

	var jsonTokens []jsonToken
	errorCount := 0

	for {
		tok := l.NextToken()

		if tokOnlyErrors && tok.Type != lexer.ILLEGAL {
			if tok.Type == lexer.EOF {
				break
			}
			continue
		}

		if tok.Type == lexer.ILLEGAL {
			errorCount++
		}

		if tokJSON {
			jsonTokens = append(jsonTokens, jsonToken{
				Type: tok.Type.String(), Lexeme: tok.Lexeme, Literal: tok.Literal,
				Line: tok.Pos.Line, Column: tok.Pos.Column,
			})
		} else {
			printToken(tok)
		}

		if tok.Type == lexer.EOF {
			break
		}
	}

	if tokJSON {
		data, err := json.MarshalIndent(jsonTokens, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	}

	if tokOnlyErrors && errorCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errorCount)
	}
	return nil
}

func printToken(tok lexer.Token) {
	var output string
	if tokShowType {
		output = fmt.Sprintf("[%-12s]", tok.Type)
	}

	switch {
	case tok.Type == lexer.EOF:
		output += " EOF"
	case tok.Type == lexer.ILLEGAL:
		output += fmt.Sprintf(" ILLEGAL: %q", tok.Lexeme)
	case tok.Lexeme == "":
		output += fmt.Sprintf(" %s", tok.Type)
	default:
		output += fmt.Sprintf(" %q", tok.Lexeme)
	}

	if tokShowPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	fmt.Fprintln(os.Stdout, output)
}
