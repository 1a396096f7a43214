package patterns

var builtinPatterns = []Pattern{
	{
		ID:          "anchoring",
		Description: "Uso de âncora inicial extrema para influenciar percepção de valor",
		Keywords:    []string{"inicial", "oferta", "valor", "mercado", "comparável", "referência"},
		Responses: []string{
			"Reconheça a âncora, mas baseie a discussão em critérios objetivos",
			"Questione os pressupostos por trás da âncora inicial",
			"Apresente sua própria âncora em direção oposta",
		},
	},
	{
		ID:          "nibbling",
		Description: "Pedidos pequenos adicionais após acordo principal",
		Keywords:    []string{"adicional", "pequeno", "mais um", "também", "incluir", "além disso"},
		Responses: []string{
			"Estabeleça claramente que o acordo principal está fechado",
			"Peça algo em troca para cada concessão adicional",
			"Identifique o padrão e aborde-o diretamente",
		},
	},
	{
		ID:          "good_cop_bad_cop",
		Description: "Alternância entre posições duras e conciliatórias",
		Keywords:    []string{"colega", "consultar", "superior", "flexível", "rígido"},
		Responses: []string{
			"Insista em negociar com o tomador de decisão final",
			"Reconheça a tática abertamente",
			"Separe as pessoas do problema e foque nos interesses",
		},
	},
	{
		ID:          "deadline_pressure",
		Description: "Uso de prazos para forçar concessões",
		Keywords:    []string{"prazo", "tempo", "urgente", "amanhã", "hoje", "imediato"},
		Responses: []string{
			"Questione a realidade do prazo",
			"Estabeleça seu próprio cronograma",
			"Prepare alternativas caso não chegue a um acordo no prazo",
		},
	},
	{
		ID:          "limited_authority",
		Description: "Alegação de autoridade limitada para decisão",
		Keywords:    []string{"autorização", "superior", "consultar", "permissão", "limitado"},
		Responses: []string{
			"Peça para falar com quem tem autoridade",
			"Condicione concessões à aprovação final de ambos os lados",
			"Estabeleça um processo de aprovação claro",
		},
	},
	{
		ID:          "emotional_appeal",
		Description: "Uso de apelos emocionais para influenciar decisões",
		Keywords:    []string{"sentir", "família", "difícil", "situação", "ajuda", "empatia"},
		Responses: []string{
			"Reconheça as emoções, mas mantenha o foco em fatos objetivos",
			"Faça perguntas para trazer a discussão de volta aos interesses",
			"Sugira uma pausa se as emoções estiverem muito intensas",
		},
	},
	{
		ID:          "take_it_or_leave_it",
		Description: "Apresentação de proposta final sem negociação",
		Keywords:    []string{"final", "última", "melhor", "impossível", "única", "opção"},
		Responses: []string{
			"Teste o ultimato pedindo pequenas modificações",
			"Explore os interesses por trás da posição inflexível",
			"Apresente consequências de não chegar a um acordo",
		},
	},
	{
		ID:          "bogey",
		Description: "Fingir que um item tem pouco valor quando na verdade é importante",
		Keywords:    []string{"importância", "relevante", "secundário", "prioridade", "valor"},
		Responses: []string{
			"Peça justificativas para a baixa valorização do item",
			"Ofereça remover o item em troca de concessão significativa",
			"Demonstre o valor real com dados objetivos",
		},
	},
	{
		ID:          "decoy",
		Description: "Introdução de opção irrelevante para tornar outra mais atraente",
		Keywords:    []string{"alternativa", "opção", "comparar", "escolha", "preferência"},
		Responses: []string{
			"Foque apenas nas opções relevantes para seus interesses",
			"Compare cada opção com critérios objetivos",
			"Questione a relevância das alternativas apresentadas",
		},
	},
	{
		ID:          "highball_lowball",
		Description: "Oferta inicial extrema seguida de concessões planejadas",
		Keywords:    []string{"inicial", "reduzir", "ajustar", "flexibilidade", "reconsiderar"},
		Responses: []string{
			"Estabeleça faixas de negociação razoáveis desde o início",
			"Peça justificativas detalhadas para a oferta extrema",
			"Responda com dados de mercado e critérios objetivos",
		},
	},
}
