package aiplanner

import (
	"encoding/json"
	"fmt"
	"strings"

	"floripa_guide/internal/domain"
)

const systemPrompt = "Você é um planejador de viagens para Florianópolis. Gere um roteiro diário detalhado com horários, " +
	"locais, sugestões de transporte e clima aproximado. Responda APENAS em JSON, seguindo o esquema exato abaixo."

const schemaExample = `{"itinerary":[{"day":1,"date":"YYYY-MM-DD","items":[{"time":"08:00","title":"Praia da Joaquina","type":"praia","location":"Praia da Joaquina","description":"…","transport":"…"}]}],` +
	`"transport":{"summary":"…","suggestions":["Uber","Aluguel de carro"]},` +
	`"weather":{"summary":"…","daily":[{"day":1,"forecast":"…"}]},` +
	`"recommendations":[{"title":"…","reason":"…","link":"…"}],` +
	`"pdf":{"suggested_filename":"roteiro-floripa.pdf"}}`

func userPrompt(p domain.Preferences) string {
	types := make([]string, len(p.Types))
	for i, t := range p.Types {
		types[i] = string(t)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Preferências:\n- Dias: %d\n- Orçamento: %s\n- Tipos: %s\n- Grupo: %s\n\n",
		p.Days, p.Budget, strings.Join(types, ", "), p.Group)
	b.WriteString("Regras:\n" +
		"- Use locais de Floripa realistas.\n" +
		"- Distribua por dia com manhã/tarde/noite.\n" +
		"- Incluir tempo estimado e deslocamento quando fizer sentido.\n" +
		"- Clima: resumo aproximado para época atual (sem dados externos).\n" +
		"- Transporte: opções práticas (Uber, carro, ônibus, bike).\n" +
		"- Recomendações personalizadas com motivo.\n" +
		"- Retorne APENAS JSON seguindo o esquema.\n\n")
	b.WriteString("Esquema de exemplo:\n")
	b.WriteString(schemaExample)
	return b.String()
}

// decodeItinerary parses the model's message. Models often wrap the JSON in a
// markdown fence or a sentence, so only the outermost object is kept.
func decodeItinerary(content string) (domain.Itinerary, error) {
	s := strings.TrimSpace(content)
	if start, end := strings.IndexByte(s, '{'), strings.LastIndexByte(s, '}'); start >= 0 && end > start {
		s = s[start : end+1]
	}
	var it domain.Itinerary
	if err := json.Unmarshal([]byte(s), &it); err != nil {
		return domain.Itinerary{}, fmt.Errorf("%w: %v", ErrBadContent, err)
	}
	if len(it.Days) == 0 {
		return domain.Itinerary{}, fmt.Errorf("%w: no days", ErrBadContent)
	}
	for i := range it.Days {
		if it.Days[i].Day == 0 {
			it.Days[i].Day = i + 1
		}
		if it.Days[i].Items == nil {
			it.Days[i].Items = []domain.Item{}
		}
	}
	it.Source = domain.SourceAI
	return it, nil
}
