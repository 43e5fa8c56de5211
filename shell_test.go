package md2html

import (
	"context"
	"strings"
	"testing"
)

func TestDocumentShell_ComposeShell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		body         string
		title        string
		css          string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "complete document structure",
			body:  "<h1>Hi</h1>\n",
			title: "My Doc",
			css:   ".markdown-body { margin: 0; }",
			wantContains: []string{
				"<!DOCTYPE html>",
				`<html lang="en">`,
				`<meta charset="utf-8" />`,
				`name="viewport"`,
				"<title>My Doc</title>",
				"<style>",
				".markdown-body { margin: 0; }",
				`<article class="markdown-body">`,
				"<h1>Hi</h1>",
				"</html>",
			},
		},
		{
			name:  "empty title falls back to default",
			body:  "<p>x</p>\n",
			title: "",
			wantContains: []string{
				"<title>Document</title>",
			},
		},
		{
			name:  "title is escaped",
			body:  "<p>x</p>\n",
			title: `<script>&"'`,
			wantContains: []string{
				"&lt;script&gt;",
				"&amp;",
			},
			wantNot: []string{"<title><script>"},
		},
		{
			name:  "no style block without CSS",
			body:  "<p>x</p>\n",
			title: "T",
			css:   "",
			wantNot: []string{
				"<style>",
			},
		},
		{
			name:  "CSS cannot close the style element",
			body:  "<p>x</p>\n",
			title: "T",
			css:   "a { color: red; } </style><script>alert(1)</script>",
			wantContains: []string{
				`<\/style>`,
			},
			wantNot: []string{
				"</style><script>",
			},
		},
		{
			name:  "body fragment embedded verbatim",
			body:  "<p>&lt;b&gt; stays escaped</p>\n",
			title: "T",
			wantContains: []string{
				"<p>&lt;b&gt; stays escaped</p>",
			},
		},
	}

	shell := &documentShell{}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := shell.ComposeShell(context.Background(), tt.body, tt.title, tt.css)

			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("output should not contain %q\ngot: %s", not, got)
				}
			}
		})
	}
}

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain rules untouched", input: "a { color: red; }", want: "a { color: red; }"},
		{name: "closing tag escaped", input: "</style>", want: `<\/style>`},
		{name: "every closing sequence escaped", input: "</a></b>", want: `<\/a><\/b>`},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sanitizeCSS(tt.input); got != tt.want {
				t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
