package formula

import "testing"

func TestLexerTokenize(t *testing.T) {
	tokens, err := NewLexer("1 + A1 * (2 - B2)").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	want := []TokenType{
		TokenNumber, TokenPlus, TokenCellRef, TokenStar,
		TokenLParen, TokenNumber, TokenMinus, TokenCellRef, TokenRParen,
		TokenEOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(want), tokens)
	}
	for i, tok := range tokens {
		if tok.Type != want[i] {
			t.Errorf("token %d: type = %v, want %v", i, tok.Type, want[i])
		}
	}
}

func TestLexerRejectsUnknownCharacter(t *testing.T) {
	if _, err := NewLexer("1 & 2").Tokenize(); err == nil {
		t.Fatal("expected an error for '&'")
	}
}

func TestLooksLikeCellRef(t *testing.T) {
	cases := map[string]bool{
		"A1":  true,
		"AZ9": true,
		"A":   false,
		"1":   false,
		"1A":  false,
	}
	for s, want := range cases {
		if got := looksLikeCellRef(s); got != want {
			t.Errorf("looksLikeCellRef(%q) = %v, want %v", s, got, want)
		}
	}
}
