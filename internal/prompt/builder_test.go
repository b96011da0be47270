package prompt

import (
	"fmt"
	"testing"

	"github.com/easeaico/companion-web/internal/types"
)

func makeHistory(n int) []types.Message {
	history := make([]types.Message, 0, n)
	for i := 0; i < n; i++ {
		sender := types.SenderUser
		if i%2 == 1 {
			sender = types.SenderCompanion
		}
		history = append(history, types.Message{
			ID:      fmt.Sprintf("msg_%d", i),
			Content: fmt.Sprintf("message %d", i),
			Sender:  sender,
		})
	}
	return history
}

func TestAssembleEmptyHistory(t *testing.T) {
	got := Assemble("sp", nil, "hi")

	want := []RoleMessage{
		{Role: RoleSystem, Content: "sp"},
		{Role: RoleUser, Content: "hi"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d messages, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("message %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestAssembleKeepsLastTenInOrder(t *testing.T) {
	history := makeHistory(15)
	got := Assemble("sp", history, "next")

	if len(got) != HistoryWindow+2 {
		t.Fatalf("expected %d messages, got %d", HistoryWindow+2, len(got))
	}
	middle := got[1 : len(got)-1]
	tail := history[len(history)-HistoryWindow:]
	for i, msg := range middle {
		if msg.Content != tail[i].Content {
			t.Fatalf("position %d: expected %q, got %q", i, tail[i].Content, msg.Content)
		}
	}
	if got[len(got)-1] != (RoleMessage{Role: RoleUser, Content: "next"}) {
		t.Fatalf("unexpected final message: %+v", got[len(got)-1])
	}
}

func TestAssembleMapsSenders(t *testing.T) {
	history := []types.Message{
		{Content: "a", Sender: types.SenderUser},
		{Content: "b", Sender: types.SenderCompanion},
		{Content: "c", Sender: "narrator"},
		{Content: "", Sender: types.SenderUser, Type: types.MessageImage, MediaURL: "https://x/y.png"},
	}
	got := Assemble("sp", history, "")

	wantRoles := []Role{RoleSystem, RoleUser, RoleAssistant, RoleAssistant, RoleUser, RoleUser}
	for i, role := range wantRoles {
		if got[i].Role != role {
			t.Fatalf("position %d: expected role %s, got %s", i, role, got[i].Role)
		}
	}
	if got[4].Content != "" || got[5].Content != "" {
		t.Fatalf("empty contents should pass through unchanged: %+v", got)
	}
}

func TestAssembleDoesNotMutateHistory(t *testing.T) {
	history := makeHistory(12)
	before := make([]types.Message, len(history))
	copy(before, history)

	_ = Assemble("sp", history, "x")

	for i := range history {
		if history[i] != before[i] {
			t.Fatalf("history mutated at %d", i)
		}
	}
}
