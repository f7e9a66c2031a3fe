package analyzing

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator cria um comparador de texto sensível ao idioma. Não é seguro para uso concorrente,
// por isso cada motor cria o seu.
func newCollator() *collate.Collator {
	return collate.New(language.Und)
}
