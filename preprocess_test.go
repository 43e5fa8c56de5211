package md2html

import (
	"context"
	"testing"
)

func TestCommonMarkPreprocessor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unix endings untouched", input: "a\nb\n", want: "a\nb\n"},
		{name: "windows endings", input: "a\r\nb\r\n", want: "a\nb\n"},
		{name: "old mac endings", input: "a\rb\r", want: "a\nb\n"},
		{name: "mixed endings", input: "a\r\nb\rc\n", want: "a\nb\nc\n"},
		{name: "fenced code content preserved", input: "```\nx\r\n\r\n\r\ny\n```", want: "```\nx\n\n\ny\n```"},
		{name: "empty", input: "", want: ""},
	}

	p := &commonMarkPreprocessor{}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := p.PreprocessMarkdown(context.Background(), tt.input)
			if got != tt.want {
				t.Errorf("PreprocessMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommonMarkPreprocessor_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &commonMarkPreprocessor{}
	if got := p.PreprocessMarkdown(ctx, "a\r\nb"); got != "a\r\nb" {
		t.Errorf("canceled context should return content unchanged, got %q", got)
	}
}
