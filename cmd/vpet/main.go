package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ayabdnabi/virtual-pet/internal/art"
	"github.com/ayabdnabi/virtual-pet/internal/catalog"
	"github.com/ayabdnabi/virtual-pet/internal/game"
	"github.com/ayabdnabi/virtual-pet/internal/guardian"
	"github.com/ayabdnabi/virtual-pet/internal/pet"
	"github.com/ayabdnabi/virtual-pet/internal/platform/config"
	"github.com/ayabdnabi/virtual-pet/internal/platform/logger"
	"github.com/ayabdnabi/virtual-pet/internal/storage"
)

const Version = "v1.0.0"

func main() {
	// A .env next to the binary is a convenience, not a requirement.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "vpet",
		Short: "vpet - a virtual pet that lives in your terminal",
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Println(Version)
				return
			}
			cmd.Help()
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(guardianCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup reads the environment once per command invocation.
func setup() (config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
	})
	return cfg, log, nil
}

// sessionConfig assembles the collaborators a game session needs,
// including the guardian ledger from disk.
func sessionConfig(cfg config.Config, log logger.Logger) (game.Config, error) {
	led, err := guardian.LoadLedger(cfg.DataDir)
	if err != nil {
		return game.Config{}, err
	}
	return game.Config{
		DataDir:  cfg.DataDir,
		Catalog:  catalog.Default(),
		Guardian: led,
		Interval: cfg.TickInterval,
		MaxSlots: cfg.MaxSlots,
		Log:      log,
	}, nil
}

var newCmd = &cobra.Command{
	Use:   "new [kind] [name]",
	Short: "Adopt a new pet (kinds: panda, peacock, ferret)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		gameCfg, err := sessionConfig(cfg, log)
		if err != nil {
			return err
		}

		kind := pet.Archetype(strings.ToLower(args[0]))
		name := args[1]

		s, err := game.NewGame(gameCfg, name, kind)
		if err != nil {
			return fmt.Errorf("failed to adopt %s: %w", name, err)
		}
		if err := s.Save(); err != nil {
			return err
		}

		fmt.Printf("%s the %s is ready! Run 'vpet start %s' to play.\n", name, kind, name)
		return nil
	},
}

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List save slots",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}

		names, err := storage.ListSaves(cfg.DataDir)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No saved pets yet. Run 'vpet new' to adopt one.")
			return nil
		}

		fmt.Printf("Save slots (%d of %d used):\n", len(names), cfg.MaxSlots)
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status [name]",
	Short: "Show a saved pet's status card",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		gameCfg, err := sessionConfig(cfg, log)
		if err != nil {
			return err
		}

		name, err := resolvePetName(cfg, args)
		if err != nil {
			return err
		}

		s, err := game.Load(gameCfg, name)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}

		fmt.Print(art.RenderStatus(s.Status()))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a save slot permanently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}

		name := args[0]
		if !storage.ValidSaveName(name) {
			return fmt.Errorf("%q is not a save name", name)
		}
		if err := storage.DeleteSave(cfg.DataDir, name); err != nil {
			return err
		}

		fmt.Printf("Deleted the save for %s.\n", name)
		return nil
	},
}

// resolvePetName picks the pet a command operates on: the explicit
// argument, or the only existing save when there is exactly one.
func resolvePetName(cfg config.Config, args []string) (string, error) {
	if len(args) > 0 && args[len(args)-1] != "" {
		return args[len(args)-1], nil
	}

	names, err := storage.ListSaves(cfg.DataDir)
	if err != nil {
		return "", err
	}
	switch len(names) {
	case 0:
		return "", fmt.Errorf("no saved pets. Run 'vpet new' to adopt one")
	case 1:
		return names[0], nil
	default:
		return "", fmt.Errorf("several pets are saved (%s); name one", strings.Join(names, ", "))
	}
}
