// Package exercise lists the built-in negotiation training exercises.
package exercise

import (
	"time"

	"github.com/verte-zerg/parley/internal/model"
)

// DefaultTarget is the target duration for exercises without their own.
const DefaultTarget = 30 * time.Minute

var builtin = []model.Exercise{
	{
		ID:     "batna",
		Name:   "Mapa BATNA",
		Target: 30 * time.Minute,
		Prompt: "Registre sua BATNA, a BATNA da contraparte e estratégias para fortalecer sua posição.",
	},
	{
		ID:     "meso",
		Name:   "MESO - Pacotes Equivalentes",
		Target: 45 * time.Minute,
		Prompt: "Monte três ofertas simultâneas de valor equivalente para você e diferentes para a contraparte.",
	},
	{
		ID:     "concessoes",
		Name:   "Concessões Estratégicas",
		Target: 30 * time.Minute,
		Prompt: "Planeje uma sequência de concessões decrescentes e o que pedir em troca de cada uma.",
	},
	{
		ID:     "spin",
		Name:   "Role-play SPIN",
		Target: 45 * time.Minute,
		Prompt: "Escreva perguntas de Situação, Problema, Implicação e Necessidade para um cliente difícil.",
	},
	{
		ID:     "ancora",
		Name:   "Defesa de Âncora Extrema",
		Target: 30 * time.Minute,
		Prompt: "A contraparte abriu com uma âncora extrema. Responda sem aceitar a referência proposta.",
	},
	{
		ID:     "email",
		Name:   "E-mail de Síntese",
		Target: 30 * time.Minute,
		Prompt: "Redija o e-mail de síntese após a reunião, registrando acordos, pendências e próximos passos.",
	},
	{
		ID:     "gravacao",
		Name:   "Gravação de Aberturas",
		Target: 45 * time.Minute,
		Prompt: "Escreva o roteiro da sua abertura de negociação em até dois minutos de fala.",
	},
	{
		ID:     "taticas",
		Name:   "Log de Táticas",
		Target: 30 * time.Minute,
		Prompt: "Descreva as táticas que a contraparte usou na última negociação e como você reagiu.",
	},
	{
		ID:     "framing",
		Name:   "Framing",
		Target: 30 * time.Minute,
		Prompt: "Reescreva a mesma proposta em termos de ganho e em termos de perda evitada.",
	},
	{
		ID:     "pos",
		Name:   "Pós-Negociação",
		Target: 30 * time.Minute,
		Prompt: "Avalie a negociação: o que funcionou, o que mudaria e qual valor ficou na mesa.",
	},
}

// All returns the built-in exercises in training order.
func All() []model.Exercise {
	out := make([]model.Exercise, len(builtin))
	copy(out, builtin)
	return out
}

// Lookup returns the exercise with the given id. Unknown ids get a generic
// entry named after the id with the default target.
func Lookup(id string) (model.Exercise, bool) {
	for _, ex := range builtin {
		if ex.ID == id {
			return ex, true
		}
	}
	return model.Exercise{ID: id, Name: id, Target: DefaultTarget}, false
}
