package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/easeaico/companion-web/internal/conversation"
	"github.com/easeaico/companion-web/internal/types"
)

func init() {
	chat := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the current companion",
		Long: "Chat with the current companion. Without --message an interactive session reads lines from stdin.\n" +
			"Start a line with /image or /video to generate media. Type /clear to start over and /quit to leave.",
		RunE: runChat,
	}
	chat.Flags().StringP("message", "m", "", "Send one message and exit")

	history := &cobra.Command{
		Use:   "history",
		Short: "Print the conversation history",
		RunE:  runHistory,
	}
	history.Flags().IntP("limit", "n", 0, "Only the last N messages (0 = all)")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the conversation history",
		RunE:  runClear,
	}

	RootCmd.AddCommand(chat, history, clearCmd)
}

func openConversation(cmd *cobra.Command) (*conversation.Session, func(), error) {
	kv, st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	session, err := conversation.Open(cmd.Context(), st, newClient())
	if err != nil {
		kv.Close()
		if errors.Is(err, conversation.ErrNoCompanion) {
			return nil, nil, errors.New("no companion yet: run `companion create` or `companion characters use`")
		}
		return nil, nil, err
	}
	return session, func() { kv.Close() }, nil
}

func runChat(cmd *cobra.Command, args []string) error {
	session, done, err := openConversation(cmd)
	if err != nil {
		return err
	}
	defer done()

	out := cmd.OutOrStdout()
	session.OnPending = func(msg types.Message) {
		fmt.Fprintf(out, "… %s\n", msg.Content)
	}
	name := session.Companion().Name

	if message, _ := cmd.Flags().GetString("message"); message != "" {
		added, err := session.Send(cmd.Context(), message)
		if err != nil {
			return err
		}
		printReplies(out, name, added)
		return nil
	}

	messages := session.Messages()
	if last := messages[len(messages)-1]; last.Sender == types.SenderCompanion {
		printMessage(out, name, last)
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/clear":
			if err := session.Clear(cmd.Context()); err != nil {
				return err
			}
			messages := session.Messages()
			printMessage(out, name, messages[0])
			continue
		}

		added, err := session.Send(cmd.Context(), line)
		if err != nil {
			return err
		}
		printReplies(out, name, added)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

func runHistory(cmd *cobra.Command, args []string) error {
	session, done, err := openConversation(cmd)
	if err != nil {
		return err
	}
	defer done()

	messages := session.Messages()
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), messages)
	}

	name := session.Companion().Name
	for _, msg := range messages {
		printMessage(cmd.OutOrStdout(), name, msg)
	}
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	session, done, err := openConversation(cmd)
	if err != nil {
		return err
	}
	defer done()

	if err := session.Clear(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Conversation cleared.")
	return nil
}

// printReplies prints everything but the echoed user message.
func printReplies(w io.Writer, name string, added []types.Message) {
	for _, msg := range added {
		if msg.Sender == types.SenderUser {
			continue
		}
		printMessage(w, name, msg)
	}
}

func printMessage(w io.Writer, name string, msg types.Message) {
	speaker := "you"
	if msg.Sender != types.SenderUser {
		speaker = name
	}
	fmt.Fprintf(w, "[%s] %s: %s\n", msg.Timestamp.Local().Format("15:04"), speaker, msg.Content)
	if msg.MediaURL != "" {
		fmt.Fprintf(w, "    %s\n", msg.MediaURL)
	}
}
