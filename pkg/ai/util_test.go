package ai

import (
	"testing"
)

func TestUnmarshalFlexible_ObjectVariants(t *testing.T) {
	type node struct {
		Label string `json:"label"`
		Year  int    `json:"year,omitempty"`
	}

	tests := []struct {
		name  string
		input string
		want  node
	}{
		{
			name:  "valid json object",
			input: `{"label":"Liga Narodowa"}`,
			want:  node{Label: "Liga Narodowa"},
		},
		{
			name:  "unquoted key and single quotes",
			input: `{label: 'Liga Narodowa'}`,
			want:  node{Label: "Liga Narodowa"},
		},
		{
			name:  "trailing comma",
			input: `{"label":"Liga Narodowa",}`,
			want:  node{Label: "Liga Narodowa"},
		},
		{
			name:  "missing endbracket",
			input: `{"label":"Liga Narodowa`,
			want:  node{Label: "Liga Narodowa"},
		},
		{
			name:  "stringified invalid json object",
			input: `"{label: 'Liga Narodowa'}"`,
			want:  node{Label: "Liga Narodowa"},
		},
		{
			name:  "duplicate leading brace",
			input: "{\n{\n  \"label\": \"Liga Narodowa\"\n}\n",
			want:  node{Label: "Liga Narodowa"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got node
			if err := UnmarshalFlexible(tc.input, &got); err != nil {
				t.Fatalf("UnmarshalFlexible() error = %v", err)
			}
			if got.Label != tc.want.Label || got.Year != tc.want.Year {
				t.Fatalf("UnmarshalFlexible() got = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestUnmarshalFlexible_ArrayVariants(t *testing.T) {
	type node struct {
		Label string `json:"label"`
	}

	input := `[{label:'A'},{label:'B',}]`
	var got []node
	if err := UnmarshalFlexible(input, &got); err != nil {
		t.Fatalf("UnmarshalFlexible() error = %v", err)
	}
	if len(got) != 2 || got[0].Label != "A" || got[1].Label != "B" {
		t.Fatalf("UnmarshalFlexible() got = %+v, want two nodes A,B", got)
	}
}

func TestUnmarshalFlexible_Unrecoverable(t *testing.T) {
	type node struct {
		Label string `json:"label"`
	}

	var got node
	if err := UnmarshalFlexible("hello", &got); err == nil {
		t.Fatalf("UnmarshalFlexible() expected error for unrecoverable input")
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "json fence",
			input: "```json\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "no fence",
			input: `{"a":1}`,
			want:  `{"a":1}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripFences(tc.input); got != tc.want {
				t.Fatalf("StripFences() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "array wrapped in prose",
			input: "Here are the predictions:\n[{\"source\":\"a\"}]\nLet me know.",
			want:  `[{"source":"a"}]`,
		},
		{
			name:  "fenced array",
			input: "```json\n[1, 2, 3]\n```",
			want:  `[1, 2, 3]`,
		},
		{
			name:  "no array",
			input: "I could not find anything relevant.",
			want:  "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractJSONArray(tc.input); got != tc.want {
				t.Fatalf("ExtractJSONArray() = %q, want %q", got, tc.want)
			}
		})
	}
}
