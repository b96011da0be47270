package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/easeaico/companion-web/internal/profile"
	"github.com/easeaico/companion-web/internal/prompt"
	"github.com/easeaico/companion-web/internal/types"
)

func init() {
	characters := &cobra.Command{
		Use:   "characters",
		Short: "List the preset characters",
		RunE:  runCharacters,
	}
	use := &cobra.Command{
		Use:   "use <id|name>",
		Short: "Make a preset character the current companion",
		Args:  cobra.ExactArgs(1),
		RunE:  runUseCharacter,
	}
	characters.AddCommand(use)

	avatar := &cobra.Command{
		Use:   "avatar",
		Short: "Generate or pick an avatar for the current companion",
		Long: "Generate an avatar from the companion's relationship and personality, or from --prompt.\n" +
			"With --preset N the Nth preset avatar is used instead and nothing is generated.",
		RunE: runAvatar,
	}
	avatar.Flags().StringP("prompt", "p", "", "Custom avatar prompt")
	avatar.Flags().Int("preset", 0, "Use preset avatar N (1-based)")
	avatar.Flags().Bool("list", false, "List the preset avatars")

	RootCmd.AddCommand(characters, avatar)
}

func runCharacters(cmd *cobra.Command, args []string) error {
	characters, err := newClient().Characters(cmd.Context())
	if err != nil {
		slog.Warn("Server unavailable, listing built-in characters", "error", err)
		characters = profile.Characters(time.Now())
	}

	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), characters)
	}
	for _, c := range characters {
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-12s %-9s %s\n", c.ID, c.Name, c.RelationshipType, c.Background)
	}
	return nil
}

func runUseCharacter(cmd *cobra.Command, args []string) error {
	character, err := profile.FindCharacter(args[0], time.Now())
	if err != nil {
		return err
	}

	kv, session, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer kv.Close()

	if err := session.SaveProfile(cmd.Context(), character); err != nil {
		return fmt.Errorf("save companion: %w", err)
	}
	if err := session.ClearMessages(cmd.Context()); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return writeProfile(cmd.OutOrStdout(), character)
}

func runAvatar(cmd *cobra.Command, args []string) error {
	if list, _ := cmd.Flags().GetBool("list"); list {
		for i, url := range profile.PresetAvatars {
			fmt.Fprintf(cmd.OutOrStdout(), "%d  %s\n", i+1, url)
		}
		return nil
	}

	kv, session, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer kv.Close()

	companion, err := loadProfile(cmd, session)
	if err != nil {
		return err
	}

	url, err := pickAvatar(cmd, companion)
	if err != nil {
		return err
	}

	companion.Avatar = url
	companion.LastActive = time.Now()
	if err := session.SaveProfile(cmd.Context(), companion); err != nil {
		return fmt.Errorf("save companion: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}

func pickAvatar(cmd *cobra.Command, companion types.CompanionProfile) (string, error) {
	if cmd.Flags().Changed("preset") {
		n, _ := cmd.Flags().GetInt("preset")
		if n < 1 || n > len(profile.PresetAvatars) {
			return "", fmt.Errorf("preset must be between 1 and %d", len(profile.PresetAvatars))
		}
		return profile.PresetAvatars[n-1], nil
	}

	custom, _ := cmd.Flags().GetString("prompt")
	text := prompt.AvatarPrompt(companion.RelationshipType, companion.Personality, custom)
	url, err := newClient().GenerateAvatar(cmd.Context(), text, companion.Name)
	if err != nil {
		return "", fmt.Errorf("generate avatar: %w", err)
	}
	if url == "" {
		return "", errors.New("generate avatar: empty image url")
	}
	return url, nil
}
