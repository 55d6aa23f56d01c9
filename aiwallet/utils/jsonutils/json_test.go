package jsonutils

import "testing"

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"fenced", "Sure:\n```json\n{\"type\": \"transaction_preview\"}\n```\nok?", `{"type": "transaction_preview"}`},
		{"bare object", `Here you go {"action": "send", "details": {"amount": "1"}} done`, `{"action": "send", "details": {"amount": "1"}}`},
		{"trailing comma", `{"a": [1, 2,], "b": 1,}`, `{"a": [1, 2], "b": 1}`},
		{"plain text", "ETH is trading at $3,450.", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractJSON(tc.in); got != tc.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestExtractObject(t *testing.T) {
	obj := ExtractObject("```json\n{\"type\": \"transaction_preview\", \"action\": \"swap\"}\n```")
	if obj == nil {
		t.Fatal("expected an object")
	}
	if obj["type"] != "transaction_preview" || obj["action"] != "swap" {
		t.Errorf("unexpected object %v", obj)
	}
	if ExtractObject("{not json}") != nil {
		t.Error("expected nil for malformed JSON")
	}
	if ExtractObject("no braces here") != nil {
		t.Error("expected nil for plain text")
	}
}
