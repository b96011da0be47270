package utils

import (
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestExtractMediaURLImage(t *testing.T) {
	got, err := ExtractMediaURL("Here you go: https://cdn.example.com/out/fox.PNG enjoy", MediaImage)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "https://cdn.example.com/out/fox.PNG" {
		t.Fatalf("unexpected url: %s", got)
	}
}

func TestExtractMediaURLVideo(t *testing.T) {
	got, err := ExtractMediaURL("[video](http://media.example.com/clip.mp4)", MediaVideo)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "http://media.example.com/clip.mp4" {
		t.Fatalf("unexpected url: %s", got)
	}
}

func TestExtractMediaURLMissing(t *testing.T) {
	cases := []struct {
		text string
		kind MediaKind
	}{
		{text: "sorry, generation failed", kind: MediaImage},
		{text: "https://example.com/clip.mp4", kind: MediaImage},
		{text: "https://example.com/fox.png", kind: MediaVideo},
		{text: "https://example.com/fox.png", kind: "audio"},
	}
	for _, tc := range cases {
		if _, err := ExtractMediaURL(tc.text, tc.kind); !errors.Is(err, ErrNoMediaURL) {
			t.Fatalf("ExtractMediaURL(%q, %s): expected ErrNoMediaURL, got %v", tc.text, tc.kind, err)
		}
	}
}

func TestExtractContentText(t *testing.T) {
	content := &genai.Content{Parts: []*genai.Part{{Text: "Hello"}, nil, {Text: ", world"}}}
	if got := ExtractContentText(content); got != "Hello, world" {
		t.Fatalf("unexpected text: %q", got)
	}
	if got := ExtractContentText(nil); got != "" {
		t.Fatalf("expected empty text for nil content, got %q", got)
	}
}
