package entity

import (
	"encoding/json"
)

// GenericPayload is the catch-all webhook shape. Any JSON object that is
// neither a native ChatGuru payload nor a legacy event lands here, with the
// handful of conventional contact fields lifted out and everything else
// kept verbatim in Extra.
type GenericPayload struct {
	Nome     string `json:"nome,omitempty"`
	Celular  string `json:"celular,omitempty"`
	Email    string `json:"email,omitempty"`
	Mensagem string `json:"mensagem,omitempty"`

	Extra map[string]any `json:"-"`
}

func (g *GenericPayload) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for key, raw := range fields {
		switch key {
		case "nome":
			g.Nome = stringValue(raw)
		case "celular":
			g.Celular = stringValue(raw)
		case "email":
			g.Email = stringValue(raw)
		case "mensagem":
			g.Mensagem = stringValue(raw)
		default:
			if g.Extra == nil {
				g.Extra = make(map[string]any)
			}
			var value any
			if err := json.Unmarshal(raw, &value); err != nil {
				return err
			}
			g.Extra[key] = value
		}
	}
	return nil
}

func (g GenericPayload) MarshalJSON() ([]byte, error) {
	type plain GenericPayload
	flat, err := json.Marshal(plain(g))
	if err != nil {
		return nil, err
	}
	if len(g.Extra) == 0 {
		return flat, nil
	}
	merged := make(map[string]any, len(g.Extra)+4)
	if err := json.Unmarshal(flat, &merged); err != nil {
		return nil, err
	}
	for key, value := range g.Extra {
		merged[key] = value
	}
	return json.Marshal(merged)
}
