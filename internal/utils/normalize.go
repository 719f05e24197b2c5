package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveAccents remove acentos e diacríticos mantendo maiúsculas
// Exemplo: "Glória" -> "Gloria", "São Conrado" -> "Sao Conrado"
func RemoveAccents(s string) string {
	if s == "" {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, s)
	return normalized
}

// FoldName normaliza nomes de bairro e logradouro para comparação e indexação:
// sem acentos, minúsculas, espaços colapsados.
// Exemplo: "  Vila  Isabel " -> "vila isabel", "Méier" -> "meier"
func FoldName(name string) string {
	folded := strings.ToLower(RemoveAccents(name))
	return strings.Join(strings.Fields(folded), " ")
}
