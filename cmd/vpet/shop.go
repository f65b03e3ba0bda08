package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ayabdnabi/virtual-pet/internal/catalog"
	"github.com/ayabdnabi/virtual-pet/internal/game"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse everything for sale",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(renderShop())
		return nil
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy [food|toy|gift] [item name...]",
	Short: "Buy an item for a saved pet",
	Long: `Buy an item and store it in the pet's inventory.

Food is priced per unit and bought with --qty. Toys are one of a kind:
a toy you already own cannot be bought again. Gifts are outfits; only
the outfit made for your pet's kind is sold to you, and it goes
straight into the wardrobe.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		gameCfg, err := sessionConfig(cfg, log)
		if err != nil {
			return err
		}

		petName, _ := cmd.Flags().GetString("pet")
		name, err := resolvePetName(cfg, []string{petName})
		if err != nil {
			return err
		}
		qty, _ := cmd.Flags().GetInt("qty")

		s, err := game.Load(gameCfg, name)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}

		kind := strings.ToLower(args[0])
		item := strings.Join(args[1:], " ")

		switch kind {
		case "food":
			err = s.BuyFood(item, qty)
		case "toy":
			err = s.BuyToy(item)
		case "gift":
			err = s.BuyGift(item)
		default:
			return fmt.Errorf("unknown item kind %q (want food, toy, or gift)", kind)
		}
		if err != nil {
			return err
		}
		if err := s.Save(); err != nil {
			return err
		}

		fmt.Printf("Bought %s for %s. Coins left: %d\n", item, name, s.Status().Coins)
		return nil
	},
}

func init() {
	buyCmd.Flags().Int("qty", 1, "Quantity to buy (food only)")
	buyCmd.Flags().String("pet", "", "Which saved pet buys (defaults to the only save)")
}

func renderShop() string {
	cat := catalog.Default()
	var b strings.Builder

	b.WriteString("Food (price per unit, restores fullness):\n")
	for _, f := range cat.Foods() {
		fmt.Fprintf(&b, "  %-16s %5d coins  +%d fullness  %s\n", f.Name, f.Price, f.Fullness, f.Description)
	}

	b.WriteString("\nToys (one-time purchase, reusable):\n")
	for _, t := range cat.Toys() {
		fmt.Fprintf(&b, "  %-16s %5d coins  %s\n", t.Name, t.Price, t.Description)
	}

	b.WriteString("\nGifts (outfits, one per pet kind):\n")
	for _, g := range cat.Gifts() {
		fmt.Fprintf(&b, "  %-16s %5d coins\n", g.Name, g.Price)
	}

	return b.String()
}
