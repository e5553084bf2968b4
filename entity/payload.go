package entity

import (
	"encoding/json"
)

// ChatGuruPayload is the native webhook shape sent by the ChatGuru platform
// for campaign events, inbound messages and bot dialog steps.
//
// Free-text and media fields have accumulated several spellings across
// platform versions; UnmarshalJSON folds the legacy spellings into the
// canonical fields so the rest of the code never sees them.
type ChatGuruPayload struct {
	CampanhaID   string `json:"campanha_id,omitempty"`
	CampanhaNome string `json:"campanha_nome,omitempty"`
	Origem       string `json:"origem,omitempty"`
	Email        string `json:"email,omitempty"`
	Nome         string `json:"nome,omitempty"`

	Tags []string `json:"tags,omitempty"`

	// TextoMensagem also arrives as "mensagem", "message" or "text".
	TextoMensagem string `json:"texto_mensagem,omitempty"`

	MediaURL  string `json:"media_url,omitempty"`
	MediaType string `json:"media_type,omitempty"`

	// TipoMensagem is the platform's message kind: "chat", "image", "ptt",
	// "audio", "video", "document" and so on.
	TipoMensagem string `json:"tipo_mensagem,omitempty"`

	// URLArquivo is the newer spelling for the attachment URL, also seen
	// as "url_midia".
	URLArquivo string `json:"url_arquivo,omitempty"`

	CamposPersonalizados map[string]any `json:"campos_personalizados,omitempty"`
	BotContext           *BotContext    `json:"bot_context,omitempty"`

	ResponsavelNome  string `json:"responsavel_nome,omitempty"`
	ResponsavelEmail string `json:"responsavel_email,omitempty"`
	LinkChat         string `json:"link_chat,omitempty"`
	Celular          string `json:"celular,omitempty"`
	PhoneID          string `json:"phone_id,omitempty"`
	ChatID           string `json:"chat_id,omitempty"`
	ChatCreated      string `json:"chat_created,omitempty"`
}

// BotContext carries the dialog state flag ChatGuru attaches to bot events.
// The key is spelled exactly "ChatGuru" on the wire.
type BotContext struct {
	ChatGuru *bool `json:"ChatGuru,omitempty"`
}

func (p *ChatGuruPayload) UnmarshalJSON(data []byte) error {
	type plain ChatGuruPayload
	aux := struct {
		*plain
		Mensagem    string `json:"mensagem"`
		MessageText string `json:"message"`
		Text        string `json:"text"`
		URLMidia    string `json:"url_midia"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if p.TextoMensagem == "" {
		switch {
		case aux.Mensagem != "":
			p.TextoMensagem = aux.Mensagem
		case aux.MessageText != "":
			p.TextoMensagem = aux.MessageText
		case aux.Text != "":
			p.TextoMensagem = aux.Text
		}
	}
	if p.URLArquivo == "" {
		p.URLArquivo = aux.URLMidia
	}
	return nil
}

// NormalizeMediaFields reconciles the legacy and canonical media fields in
// place. When both canonical fields are already populated nothing changes,
// so the call is idempotent.
func (p *ChatGuruPayload) NormalizeMediaFields() {
	if p.MediaURL != "" && p.MediaType != "" {
		return
	}
	if p.MediaURL == "" && p.URLArquivo != "" {
		p.MediaURL = p.URLArquivo
	}
	if p.MediaType == "" && p.TipoMensagem != "" {
		p.MediaType = MediaTypeForKind(p.TipoMensagem)
	}
}

// MediaTypeForKind maps a ChatGuru message kind to a MIME type. Unknown
// kinds map to "application/<kind>" so downstream consumers always get a
// two-part type.
func MediaTypeForKind(kind string) string {
	switch kind {
	case "image":
		return "image/jpeg"
	case "ptt", "audio":
		return "audio/ogg"
	case "video":
		return "video/mp4"
	case "document":
		return "application/pdf"
	default:
		return "application/" + kind
	}
}
