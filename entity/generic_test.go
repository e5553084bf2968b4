package entity

import (
	"encoding/json"
	"testing"
)

func TestGenericPayload_RoundTripKeepsExtras(t *testing.T) {
	raw := []byte(`{
		"nome": "Ana",
		"mensagem": "oi",
		"utm_source": "instagram",
		"opt_in": true
	}`)

	var g GenericPayload
	if err := json.Unmarshal(raw, &g); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	out, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var flat map[string]any
	if err := json.Unmarshal(out, &flat); err != nil {
		t.Fatalf("re-unmarshal failed: %v", err)
	}
	if _, ok := flat["Extra"]; ok {
		t.Error("extras must flatten into the object, not nest under Extra")
	}

	var again GenericPayload
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("second decode failed: %v", err)
	}
	if again.Nome != "Ana" || again.Mensagem != "oi" {
		t.Errorf("round trip lost named fields: %+v", again)
	}
	if again.Extra["utm_source"] != "instagram" {
		t.Errorf("round trip lost extras: %v", again.Extra)
	}
	if again.Extra["opt_in"] != true {
		t.Errorf("round trip lost non-string extras: %v", again.Extra)
	}
}
