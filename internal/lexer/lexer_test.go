package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `var x = 5;
x = x + 10;
print "hi";
`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{VAR, "var"},
		{IDENT, "x"},
		{EQUAL, "="},
		{NUMBER, "5"},
		{SEMICOLON, ";"},
		{IDENT, "x"},
		{EQUAL, "="},
		{IDENT, "x"},
		{PLUS, "+"},
		{NUMBER, "10"},
		{SEMICOLON, ";"},
		{PRINT, "print"},
		{STRING, "\"hi\""},
		{SEMICOLON, ";"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (lexeme=%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLiteral {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Lexeme)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	l := New("123 45.67 0.5")
	tests := []float64{123, 45.67, 0.5}
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Type != NUMBER {
			t.Fatalf("tests[%d]: expected NUMBER, got %s", i, tok.Type)
		}
		if tok.Literal.(float64) != want {
			t.Fatalf("tests[%d]: expected %v, got %v", i, want, tok.Literal)
		}
	}
}

func TestKeywordsVsIdentifiers(t *testing.T) {
	l := New("and class else false for fun if nil or print return super this true var while classy")
	want := []TokenType{AND, CLASS, ELSE, FALSE, FOR, FUN, IF, NIL, OR, PRINT, RETURN, SUPER, THIS, TRUE, VAR, WHILE, IDENT}
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("tests[%d]: expected %s, got %s (%q)", i, tt, tok.Type, tok.Lexeme)
		}
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	l := New("var a\n= 1;")
	// var
	tok := l.NextToken()
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Fatalf("expected 1:1, got %d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	l.NextToken() // a
	tok = l.NextToken()
	if tok.Type != EQUAL || tok.Pos.Line != 2 || tok.Pos.Column != 1 {
		t.Fatalf("expected EQUAL at 2:1, got %s at %d:%d", tok.Type, tok.Pos.Line, tok.Pos.Column)
	}
}

func TestUnterminatedStringIsAnError(t *testing.T) {
	l := New(`"unterminated`)
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lexer error, got %d", len(l.Errors()))
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	l := New("var a = 1; // trailing comment\nvar b = 2;")
	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	for _, ty := range types {
		if ty == ILLEGAL {
			t.Fatalf("unexpected ILLEGAL token in stream: %v", types)
		}
	}
	// Two 5-token declarations plus EOF: no tokens from the comment text.
	if len(types) != 11 {
		t.Fatalf("expected 11 tokens, got %d: %v", len(types), types)
	}
}

func TestStringPassesNonASCIIBytesThrough(t *testing.T) {
	l := New(`"café"`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	if tok.Literal != "café" {
		t.Fatalf("expected literal %q, got %v", "café", tok.Literal)
	}
}
