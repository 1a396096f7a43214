package textnorm

import "testing"

func TestLower(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"Acordo":          "acordo",
		"COLABORAÇÃO":     "colaboração",
		"Prazo URGENTE!":  "prazo urgente!",
		"mútuo e Mútuo": "mútuo e mútuo",
	}
	for in, want := range cases {
		if got := Lower(in); got != want {
			t.Fatalf("Lower(%q): expected %q, got %q", in, want, got)
		}
	}
}
