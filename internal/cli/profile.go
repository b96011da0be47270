package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/easeaico/companion-web/internal/profile"
	"github.com/easeaico/companion-web/internal/prompt"
	"github.com/easeaico/companion-web/internal/store"
	"github.com/easeaico/companion-web/internal/types"
)

func init() {
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a new companion",
		Long:  "Create a new companion. Unset options take the wizard defaults. The chat history starts fresh.",
		RunE:  runCreate,
	}
	addProfileFlags(create)
	create.MarkFlagRequired("name")

	edit := &cobra.Command{
		Use:   "edit",
		Short: "Edit the current companion",
		Long:  "Edit the current companion. Only the options given are changed; the id and creation time are kept.",
		RunE:  runEdit,
	}
	addProfileFlags(edit)

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the current companion",
		RunE:  runShow,
	}

	promptCmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the system prompt compiled from the current companion",
		RunE:  runPrompt,
	}
	promptCmd.Flags().Bool("remote", false, "Compile on the server instead of locally")

	traits := &cobra.Command{
		Use:   "traits",
		Short: "List the personality traits and the current companion's values",
		RunE:  runTraits,
	}

	schema := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a companion profile",
		RunE:  runSchema,
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Delete the companion and its conversation",
		RunE:  runReset,
	}

	RootCmd.AddCommand(create, edit, show, promptCmd, traits, schema, reset)
}

func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Companion name")
	cmd.Flags().StringP("relationship", "r", "", "Relationship: friend, romantic, mentor, creative")
	cmd.Flags().StringSliceP("interests", "i", nil, "Comma-separated interests (3-5 work best)")
	cmd.Flags().StringP("background", "b", "", "Background story")
	cmd.Flags().String("avatar", "", "Avatar URL")
	cmd.Flags().StringArrayP("trait", "t", nil, "Trait value as name=0..100, repeatable")
	cmd.Flags().String("length", "", "Response length: short, medium, long")
	cmd.Flags().String("detail", "", "Response detail: simple, moderate, detailed")
	cmd.Flags().Int("intimacy", 50, "Intimacy level 0..100")
}

func runCreate(cmd *cobra.Command, args []string) error {
	kv, session, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer kv.Close()

	draft := profile.Draft{}
	if err := applyProfileFlags(cmd, &draft); err != nil {
		return err
	}

	companion, err := draft.Build(nil, time.Now())
	if err != nil {
		return err
	}
	if err := session.SaveProfile(cmd.Context(), companion); err != nil {
		return fmt.Errorf("save companion: %w", err)
	}
	if err := session.ClearMessages(cmd.Context()); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return writeProfile(cmd.OutOrStdout(), companion)
}

func runEdit(cmd *cobra.Command, args []string) error {
	kv, session, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer kv.Close()

	existing, err := loadProfile(cmd, session)
	if err != nil {
		return err
	}

	draft := profile.FromProfile(existing)
	if err := applyProfileFlags(cmd, &draft); err != nil {
		return err
	}

	companion, err := draft.Build(&existing, time.Now())
	if err != nil {
		return err
	}
	if err := session.SaveProfile(cmd.Context(), companion); err != nil {
		return fmt.Errorf("save companion: %w", err)
	}
	return writeProfile(cmd.OutOrStdout(), companion)
}

func runShow(cmd *cobra.Command, args []string) error {
	kv, session, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer kv.Close()

	companion, err := loadProfile(cmd, session)
	if err != nil {
		return err
	}
	return writeProfile(cmd.OutOrStdout(), companion)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	kv, session, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer kv.Close()

	companion, err := loadProfile(cmd, session)
	if err != nil {
		return err
	}

	text := prompt.Compile(companion)
	if remote, _ := cmd.Flags().GetBool("remote"); remote {
		text, err = newClient().SystemPrompt(cmd.Context(), companion)
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func runTraits(cmd *cobra.Command, args []string) error {
	kv, session, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer kv.Close()

	companion, err := session.Profile(cmd.Context())
	hasCompanion := err == nil
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), profile.Traits)
	}
	out := cmd.OutOrStdout()
	for _, trait := range profile.Traits {
		line := fmt.Sprintf("%-16s %-12s <-> %-12s %s", trait.Key, trait.LowLabel, trait.HighLabel, trait.Description)
		if hasCompanion {
			value, _ := profile.TraitValue(companion.Personality, trait.Key)
			line = fmt.Sprintf("%s [%d]", line, value)
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func runSchema(cmd *cobra.Command, args []string) error {
	schema, err := profile.Schema()
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), schema)
}

func runReset(cmd *cobra.Command, args []string) error {
	kv, session, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer kv.Close()

	if err := session.Reset(cmd.Context()); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Companion deleted.")
	return nil
}

func loadProfile(cmd *cobra.Command, session *store.Session) (types.CompanionProfile, error) {
	companion, err := session.Profile(cmd.Context())
	if errors.Is(err, store.ErrNotFound) {
		return types.CompanionProfile{}, errors.New("no companion yet: run `companion create` or `companion characters use`")
	}
	return companion, err
}

// applyProfileFlags copies the flags the user set onto draft.
func applyProfileFlags(cmd *cobra.Command, draft *profile.Draft) error {
	flags := cmd.Flags()

	if flags.Changed("name") {
		draft.Name, _ = flags.GetString("name")
	}
	if flags.Changed("relationship") {
		value, _ := flags.GetString("relationship")
		rel := types.RelationshipType(strings.ToLower(value))
		if !rel.Known() {
			return fmt.Errorf("unknown relationship %q", value)
		}
		draft.RelationshipType = rel
	}
	if flags.Changed("interests") {
		draft.Interests, _ = flags.GetStringSlice("interests")
	}
	if flags.Changed("background") {
		draft.Background, _ = flags.GetString("background")
	}
	if flags.Changed("avatar") {
		draft.Avatar, _ = flags.GetString("avatar")
	}
	if flags.Changed("trait") {
		values, _ := flags.GetStringArray("trait")
		personality := profile.DefaultPersonality
		if draft.Personality != nil {
			personality = *draft.Personality
		}
		if err := parseTraits(values, &personality); err != nil {
			return err
		}
		draft.Personality = &personality
	}

	if flags.Changed("length") || flags.Changed("detail") || flags.Changed("intimacy") {
		style := profile.DefaultResponseStyle
		if draft.ResponseStyle != nil {
			style = *draft.ResponseStyle
		}
		if flags.Changed("length") {
			value, _ := flags.GetString("length")
			style.Length = types.ResponseLength(strings.ToLower(value))
		}
		if flags.Changed("detail") {
			value, _ := flags.GetString("detail")
			style.Detail = types.ResponseDetail(strings.ToLower(value))
		}
		if flags.Changed("intimacy") {
			style.Intimacy, _ = flags.GetInt("intimacy")
		}
		draft.ResponseStyle = &style
	}
	return nil
}

// parseTraits applies name=value pairs to p.
func parseTraits(values []string, p *types.CompanionPersonality) error {
	for _, pair := range values {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("trait %q: expected name=value", pair)
		}
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("trait %q: %w", pair, err)
		}
		if err := profile.SetTrait(p, strings.TrimSpace(name), value); err != nil {
			return err
		}
	}
	return nil
}

func writeProfile(w io.Writer, c types.CompanionProfile) error {
	if jsonOutput() {
		return printJSON(w, c)
	}
	fmt.Fprintf(w, "%s (%s)\n", c.Name, c.RelationshipType)
	fmt.Fprintf(w, "  id:         %s\n", c.ID)
	if c.Avatar != "" {
		fmt.Fprintf(w, "  avatar:     %s\n", c.Avatar)
	}
	fmt.Fprintf(w, "  interests:  %s\n", strings.Join(c.Interests, ", "))
	fmt.Fprintf(w, "  background: %s\n", c.Background)
	fmt.Fprintf(w, "  style:      %s, %s, intimacy %d\n", c.ResponseStyle.Length, c.ResponseStyle.Detail, c.ResponseStyle.Intimacy)
	p := c.Personality
	fmt.Fprintf(w, "  traits:     extroversion %d, dominance %d, playfulness %d, emotionality %d,\n", p.Extroversion, p.Dominance, p.Playfulness, p.Emotionality)
	fmt.Fprintf(w, "              adventurousness %d, romanticism %d, supportiveness %d, formality %d\n", p.Adventurousness, p.Romanticism, p.Supportiveness, p.Formality)
	return nil
}
