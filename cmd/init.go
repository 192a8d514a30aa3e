package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rnwolfe/studyplan/internal/config"
	"github.com/rnwolfe/studyplan/internal/store"
	"github.com/rnwolfe/studyplan/internal/tui"
	"github.com/rnwolfe/studyplan/internal/ui"
	"github.com/rnwolfe/studyplan/internal/user"
	"github.com/spf13/cobra"
)

var (
	initName  string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create your study profile",
	Long:  `Create a study profile and the config and data directories. Run again with --force to start a fresh profile.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Your display name (skips the prompt)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Create a new profile even if one exists")
}

func runInit(cmd *cobra.Command, _ []string) error {
	var reader *bufio.Reader
	if initName == "" && tui.IsTTY() {
		reader = bufio.NewReader(os.Stdin)
	}
	return runInitWithReader(commandContext(cmd), reader)
}

// runInitWithReader prompts on reader when it is non-nil.
func runInitWithReader(ctx context.Context, reader *bufio.Reader) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.User.ID != "" && !initForce {
		ui.Ok(fmt.Sprintf("Already set up as %s", ui.Accent.Render(displayName(cfg.User.Name))))
		ui.Tip("`studyplan init --force` to start a fresh profile.")
		return nil
	}

	fmt.Println(ui.Title.Render(ui.IconBook + " Welcome to studyplan!"))
	fmt.Println()

	name := strings.TrimSpace(initName)
	if name == "" {
		if reader != nil {
			name = prompt(reader, "  What should I call you?", guessName())
			fmt.Println()
		} else {
			name = guessName()
		}
	}

	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	u, err := user.NewStore(db.Conn()).Add(ctx, name)
	if err != nil {
		return fmt.Errorf("creating profile: %w", err)
	}

	cfg.User = config.UserConfig{Name: u.Name, ID: u.ID}
	if cfg.Schedule.Strategy == "" {
		cfg.Schedule.Strategy = config.DefaultStrategy
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	paths := config.GetPaths()
	ui.Ok(fmt.Sprintf("Profile created for %s", ui.Accent.Render(displayName(u.Name))))
	ui.Kv("Config", paths.ConfigFile)
	ui.Kv("Data", paths.DBFile)
	ui.Tip("`studyplan subject add math --priority high` to add your first subject.")
	fmt.Println()
	return nil
}

func prompt(reader *bufio.Reader, question, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("%s %s ", question, ui.Muted.Render(fmt.Sprintf("(%s)", defaultVal)))
	} else {
		fmt.Printf("%s ", question)
	}

	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}
	return input
}

func guessName() string {
	return os.Getenv("USER")
}

func displayName(name string) string {
	if name == "" {
		return "you"
	}
	return name
}
