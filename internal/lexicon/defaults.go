package lexicon

import "github.com/verte-zerg/parley/internal/model"

var defaultWords = map[model.Category][]string{
	model.Positive: {
		"acordo", "benefício", "colaboração", "ganho", "oportunidade",
		"parceria", "solução", "sucesso", "vantagem", "valor",
	},
	model.Negative: {
		"conflito", "custo", "desvantagem", "disputa", "falha",
		"perda", "problema", "risco", "ruptura", "tensão",
	},
	model.Power: {
		"certamente", "claramente", "definitivamente", "essencial", "exatamente",
		"garantido", "imperativo", "necessário", "precisamente", "vital",
	},
	model.Collaborative: {
		"ambos", "compartilhar", "conjunto", "cooperação", "equipe",
		"juntos", "mútuo", "parceria", "reciprocidade", "sinergia",
	},
}

func cloneWords(src map[model.Category][]string) map[model.Category][]string {
	dst := make(map[model.Category][]string, len(src))
	for cat, words := range src {
		copied := make([]string, len(words))
		copy(copied, words)
		dst[cat] = copied
	}
	return dst
}
