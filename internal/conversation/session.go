// Package conversation runs the client side of a chat: it keeps the message
// list, dispatches slash commands and persists every change.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/easeaico/companion-web/internal/api"
	"github.com/easeaico/companion-web/internal/client"
	"github.com/easeaico/companion-web/internal/command"
	"github.com/easeaico/companion-web/internal/store"
	"github.com/easeaico/companion-web/internal/types"
)

// ErrNoCompanion is returned when no companion profile has been saved yet.
var ErrNoCompanion = errors.New("no companion configured")

const (
	WelcomeText      = "Hi there! I'm excited to get to know you better. What would you like to talk about?"
	WelcomeAgainText = "Hello again! I'm ready for a fresh conversation. What's on your mind?"
	ChatFailureText  = "I'm having trouble responding right now. Please try again in a moment."
	unknownErrorText = "An unknown error occurred."
)

// API is the subset of the companion API a session needs.
type API interface {
	Chat(ctx context.Context, companion types.CompanionProfile, history []types.Message, message string) (api.ChatResponse, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
	GenerateVideo(ctx context.Context, prompt string) (string, error)
}

// Session is one companion conversation.
type Session struct {
	store     *store.Session
	api       API
	companion types.CompanionProfile
	messages  []types.Message

	// OnPending is called with the loading placeholder while media is being
	// generated. The placeholder is never persisted.
	OnPending func(types.Message)

	now func() time.Time
}

// Open loads the companion and its history. An empty history starts with
// the welcome message.
func Open(ctx context.Context, st *store.Session, apiClient API) (*Session, error) {
	companion, err := st.Profile(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoCompanion
	}
	if err != nil {
		return nil, fmt.Errorf("load companion: %w", err)
	}

	messages, err := st.Messages(ctx)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	s := &Session{
		store:     st,
		api:       apiClient,
		companion: companion,
		messages:  messages,
		now:       time.Now,
	}
	if len(s.messages) == 0 {
		s.messages = []types.Message{s.companionMessage("welcome", WelcomeText, "")}
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Companion returns the profile the session talks to.
func (s *Session) Companion() types.CompanionProfile {
	return s.companion
}

// Messages returns a copy of the conversation.
func (s *Session) Messages() []types.Message {
	return append([]types.Message(nil), s.messages...)
}

// Send handles one line of user input and returns the messages it added.
// Blank input is ignored. Provider failures become companion messages; only
// storage failures are returned as errors.
func (s *Session) Send(ctx context.Context, input string) ([]types.Message, error) {
	content := strings.TrimSpace(input)
	if content == "" {
		return nil, nil
	}

	history := s.Messages()
	user := types.Message{
		ID:        newID("msg"),
		Content:   content,
		Sender:    types.SenderUser,
		Timestamp: s.now(),
		Type:      types.MessageText,
	}
	s.messages = append(s.messages, user)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	var reply types.Message
	if req := command.Classify(content); req.IsMedia() {
		reply = s.generateMedia(ctx, req)
	} else {
		reply = s.chat(ctx, history, content)
	}

	s.messages = append(s.messages, reply)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return []types.Message{user, reply}, nil
}

// Clear resets the conversation to a fresh greeting.
func (s *Session) Clear(ctx context.Context) error {
	s.messages = []types.Message{s.companionMessage("welcome_new", WelcomeAgainText, "")}
	return s.persist(ctx)
}

func (s *Session) chat(ctx context.Context, history []types.Message, content string) types.Message {
	resp, err := s.api.Chat(ctx, s.companion, history, content)
	if err != nil || !resp.Success {
		return s.companionMessage(newID("err"), ChatFailureText, types.MessageText)
	}
	return s.companionMessage(newID("msg")+"_companion", resp.Message, types.MessageText)
}

func (s *Session) generateMedia(ctx context.Context, req command.Request) types.Message {
	kind := types.MessageImage
	generate := s.api.GenerateImage
	if req.Kind == command.KindVideo {
		kind = types.MessageVideo
		generate = s.api.GenerateVideo
	}

	if s.OnPending != nil {
		s.OnPending(s.companionMessage(newID("loading"), fmt.Sprintf("Generating %s: %s", kind, req.Prompt), types.MessageLoading))
	}

	url, err := generate(ctx, req.Prompt)
	if err != nil {
		return s.companionMessage(newID("err"), failureText(err), types.MessageText)
	}

	msg := s.companionMessage(newID("media"), fmt.Sprintf("%s generation complete.", kind), kind)
	msg.MediaURL = url
	return msg
}

func (s *Session) companionMessage(id, content string, kind types.MessageType) types.Message {
	return types.Message{
		ID:        id,
		Content:   content,
		Sender:    types.SenderCompanion,
		Timestamp: s.now(),
		Type:      kind,
	}
}

func (s *Session) persist(ctx context.Context) error {
	if err := s.store.SaveMessages(ctx, s.messages); err != nil {
		return fmt.Errorf("save messages: %w", err)
	}
	return nil
}

func failureText(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return unknownErrorText
}

func newID(prefix string) string {
	return prefix + "_" + strings.ToLower(ulid.Make().String())
}
