// Package command recognizes the slash commands typed into the chat input.
package command

import "strings"

// Kind is the kind of request a chat input turns into.
type Kind string

const (
	KindChat  Kind = "chat"
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

const (
	imagePrefix = "/image "
	videoPrefix = "/video "
)

// Request is a classified chat input. Prompt is the raw text for chat
// requests and the text after the command prefix for media requests.
type Request struct {
	Kind   Kind
	Prompt string
}

// IsMedia reports whether r asks for image or video generation.
func (r Request) IsMedia() bool {
	return r.Kind == KindImage || r.Kind == KindVideo
}

// Classify decides whether input is a media command. Only the exact,
// case-sensitive prefixes "/image " and "/video " match; the remainder is
// kept verbatim and may be empty. Anything else is plain chat.
func Classify(input string) Request {
	switch {
	case strings.HasPrefix(input, imagePrefix):
		return Request{Kind: KindImage, Prompt: input[len(imagePrefix):]}
	case strings.HasPrefix(input, videoPrefix):
		return Request{Kind: KindVideo, Prompt: input[len(videoPrefix):]}
	default:
		return Request{Kind: KindChat, Prompt: input}
	}
}
