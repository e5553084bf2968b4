package entity

import "testing"

func TestMediaTypeForKind(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{"image", "image/jpeg"},
		{"ptt", "audio/ogg"},
		{"audio", "audio/ogg"},
		{"video", "video/mp4"},
		{"document", "application/pdf"},
		{"widget", "application/widget"},
		{"sticker", "application/sticker"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			if got := MediaTypeForKind(tt.kind); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeMediaFields(t *testing.T) {
	tests := []struct {
		name     string
		payload  ChatGuruPayload
		wantURL  string
		wantType string
	}{
		{
			name:    "file url fills media url",
			payload: ChatGuruPayload{URLArquivo: "https://cdn/f.ogg", TipoMensagem: "ptt"},
			wantURL: "https://cdn/f.ogg", wantType: "audio/ogg",
		},
		{
			name:    "canonical fields untouched",
			payload: ChatGuruPayload{MediaURL: "https://cdn/a.jpg", MediaType: "image/png", URLArquivo: "https://cdn/b.jpg", TipoMensagem: "video"},
			wantURL: "https://cdn/a.jpg", wantType: "image/png",
		},
		{
			name:    "kind fills type only",
			payload: ChatGuruPayload{MediaURL: "https://cdn/a.jpg", TipoMensagem: "image"},
			wantURL: "https://cdn/a.jpg", wantType: "image/jpeg",
		},
		{
			name:    "nothing to normalize",
			payload: ChatGuruPayload{TextoMensagem: "oi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.payload
			p.NormalizeMediaFields()
			if p.MediaURL != tt.wantURL {
				t.Errorf("got url %q, want %q", p.MediaURL, tt.wantURL)
			}
			if p.MediaType != tt.wantType {
				t.Errorf("got type %q, want %q", p.MediaType, tt.wantType)
			}

			// Running it again must change nothing.
			again := p
			again.NormalizeMediaFields()
			if again.MediaURL != p.MediaURL || again.MediaType != p.MediaType {
				t.Errorf("not idempotent: %+v vs %+v", again, p)
			}
		})
	}
}

func TestChatGuruPayload_URLMidiaAlias(t *testing.T) {
	raw := []byte(`{"url_midia": "https://cdn/old.jpg"}`)

	var p ChatGuruPayload
	if err := p.UnmarshalJSON(raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if p.URLArquivo != "https://cdn/old.jpg" {
		t.Errorf("got url_arquivo %q, want the url_midia value", p.URLArquivo)
	}
}

func TestChatGuruPayload_CanonicalBeatsAlias(t *testing.T) {
	raw := []byte(`{"url_arquivo": "https://cdn/new.jpg", "url_midia": "https://cdn/old.jpg"}`)

	var p ChatGuruPayload
	if err := p.UnmarshalJSON(raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if p.URLArquivo != "https://cdn/new.jpg" {
		t.Errorf("got url_arquivo %q, want the canonical value", p.URLArquivo)
	}
}
