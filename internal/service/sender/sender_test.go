package sender

import "testing"

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{"bare host", "https://api.chatguru.app", "https://api.chatguru.app/api/v1"},
		{"trailing slash", "https://api.chatguru.app/", "https://api.chatguru.app/api/v1"},
		{"full path", "https://api.chatguru.app/api/v1", "https://api.chatguru.app/api/v1"},
		{"full path trailing slash", "https://api.chatguru.app/api/v1/", "https://api.chatguru.app/api/v1"},
		{"custom host", "https://s14.chatguru.app", "https://s14.chatguru.app/api/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BaseURL(tt.endpoint); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"formatted", "+55 (11) 99999-9999", "5511999999999"},
		{"already clean", "5511999999999", "5511999999999"},
		{"dots and spaces", "55 11 9.9999.9999", "5511999999999"},
		{"no digits", "abc", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanPhone(tt.phone); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   Outcome
	}{
		{"ok", 200, `{"result": "success"}`, OutcomeOK},
		{"created", 201, "", OutcomeOK},
		{"chat not found", 404, `{"error": "Chat não encontrado"}`, OutcomeChatNotFound},
		{"chat does not exist", 400, `Chat não existe`, OutcomeChatNotFound},
		{"mangled encoding", 404, `Chat n?o encontrado`, OutcomeChatNotFound},
		{"server error", 500, "internal server error", OutcomeAPIError},
		{"unauthorized", 401, "invalid key", OutcomeAPIError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.status, tt.body); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
