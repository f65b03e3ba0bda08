package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ayabdnabi/virtual-pet/internal/game"
	"github.com/ayabdnabi/virtual-pet/internal/guardian"
	"github.com/ayabdnabi/virtual-pet/internal/platform/config"
	"github.com/ayabdnabi/virtual-pet/internal/platform/logger"
)

var guardianCmd = &cobra.Command{
	Use:   "guardian",
	Short: "Guardian controls: play limits, play stats, revival",
}

func init() {
	guardianCmd.PersistentFlags().String("secret", "", "Guardian secret")

	guardianCmd.AddCommand(guardianStatsCmd)
	guardianCmd.AddCommand(guardianWindowCmd)
	guardianCmd.AddCommand(guardianReviveCmd)
	guardianCmd.AddCommand(guardianResetCmd)
	guardianCmd.AddCommand(guardianSecretCmd)
}

// guardianLedger loads the ledger and checks the --secret flag before any
// guardian operation runs.
func guardianLedger(cmd *cobra.Command) (config.Config, logger.Logger, *guardian.Ledger, error) {
	cfg, log, err := setup()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	led, err := guardian.LoadLedger(cfg.DataDir)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	secret, _ := cmd.Flags().GetString("secret")
	if !led.Authenticate(secret) {
		return config.Config{}, nil, nil, fmt.Errorf("wrong guardian secret")
	}
	return cfg, log, led, nil
}

var guardianStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play-time statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, led, err := guardianLedger(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("Sessions: %d\n", led.SessionCount)
		fmt.Printf("Total play time: %s\n", led.TotalPlay().Round(time.Second))
		fmt.Printf("Average session: %s\n", led.AveragePlay().Round(time.Second))

		if led.Enabled {
			fmt.Printf("Play window: %d:00-%d:00 (enforced)\n", led.StartHour, led.EndHour)
		} else {
			fmt.Println("Play window: not enforced")
		}

		recent := led.Sessions
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}
		if len(recent) > 0 {
			fmt.Println("\nRecent sessions:")
			for _, rec := range recent {
				d := time.Duration(rec.DurationMs) * time.Millisecond
				fmt.Printf("  %s  %s\n", rec.StartedAt.Format("2006-01-02 15:04"), d.Round(time.Second))
			}
		}
		return nil
	},
}

var guardianWindowCmd = &cobra.Command{
	Use:   "window [start end | off]",
	Short: "Limit play to certain hours, e.g. 'window 9 17', or 'window off'",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, led, err := guardianLedger(cmd)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			if strings.ToLower(args[0]) != "off" {
				return fmt.Errorf("usage: window <start> <end> or window off")
			}
			led.SetEnabled(false)
			if err := guardian.SaveLedger(cfg.DataDir, led); err != nil {
				return err
			}
			fmt.Println("Play window disabled.")
			return nil
		}

		start, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("start hour %q is not a number", args[0])
		}
		end, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("end hour %q is not a number", args[1])
		}
		if err := led.SetWindow(start, end); err != nil {
			return err
		}
		led.SetEnabled(true)
		if err := guardian.SaveLedger(cfg.DataDir, led); err != nil {
			return err
		}

		fmt.Printf("Play allowed %d:00-%d:00.\n", start, end)
		return nil
	},
}

var guardianReviveCmd = &cobra.Command{
	Use:   "revive [name]",
	Short: "Bring a dead pet back to full health",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, led, err := guardianLedger(cmd)
		if err != nil {
			return err
		}

		name, err := resolvePetName(cfg, args)
		if err != nil {
			return err
		}

		gameCfg, err := sessionConfig(cfg, log)
		if err != nil {
			return err
		}
		gameCfg.Guardian = led

		s, err := game.Load(gameCfg, name)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
		if err := s.Revive(); err != nil {
			return err
		}
		if err := s.Save(); err != nil {
			return err
		}

		fmt.Printf("%s is back on their feet!\n", name)
		return nil
	},
}

var guardianResetCmd = &cobra.Command{
	Use:       "reset [stats|window]",
	Short:     "Reset play statistics or the play window",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"stats", "window"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, led, err := guardianLedger(cmd)
		if err != nil {
			return err
		}

		switch strings.ToLower(args[0]) {
		case "stats":
			led.ResetStats()
			fmt.Println("Play statistics cleared.")
		case "window":
			led.ResetRestrictions()
			fmt.Println("Play window reset: disabled, 0:00-24:00.")
		default:
			return fmt.Errorf("reset %q is not known (want stats or window)", args[0])
		}

		return guardian.SaveLedger(cfg.DataDir, led)
	},
}

var guardianSecretCmd = &cobra.Command{
	Use:   "secret [new-secret]",
	Short: "Change the guardian secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, led, err := guardianLedger(cmd)
		if err != nil {
			return err
		}

		if err := led.SetSecret(args[0]); err != nil {
			return err
		}
		if err := guardian.SaveLedger(cfg.DataDir, led); err != nil {
			return err
		}

		fmt.Println("Guardian secret updated.")
		return nil
	},
}
