package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ayabdnabi/virtual-pet/internal/art"
	"github.com/ayabdnabi/virtual-pet/internal/game"
	"github.com/ayabdnabi/virtual-pet/internal/pet"
)

var startCmd = &cobra.Command{
	Use:   "start [name]",
	Short: "Start an interactive session with a saved pet",
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

		if err := s.Start(); err != nil {
			if errors.Is(err, game.ErrOutsideWindow) {
				fmt.Printf("The guardian's play window is closed right now (allowed %d:00-%d:00).\n",
					gameCfg.Guardian.StartHour, gameCfg.Guardian.EndHour)
				return nil
			}
			return err
		}

		fmt.Print(art.RenderStatus(s.Status()))
		fmt.Println("\nType 'help' for commands, 'quit' to save and leave.")

		runSession(s, os.Stdin)

		if err := s.Close(); err != nil {
			return err
		}
		fmt.Printf("Saved. See you soon, %s!\n", name)
		return nil
	},
}

// runSession reads line commands until quit or EOF. The scheduler keeps
// ticking in the background the whole time.
func runSession(s *game.Session, in *os.File) {
	scanner := bufio.NewScanner(in)
	mourned := false
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd := strings.ToLower(fields[0])
		arg := strings.Join(fields[1:], " ")

		if cmd == "quit" || cmd == "exit" {
			return
		}
		if err := dispatch(s, cmd, arg); err != nil {
			fmt.Printf("%v\n", err)
		}

		if !mourned && s.Status().State == pet.StateDead {
			fmt.Println("Oh no, your pet has died. A guardian can revive it with 'vpet guardian revive'.")
			mourned = true
		}
	}
}

func dispatch(s *game.Session, cmd, arg string) error {
	switch cmd {
	case "help":
		fmt.Println(sessionHelp)
		return nil
	case "stats", "status":
		fmt.Print(art.RenderStatus(s.Status()))
		return nil
	case "feed":
		if arg == "" {
			return fmt.Errorf("usage: feed <food name>")
		}
		if err := s.Feed(arg); err != nil {
			return err
		}
		fmt.Println("Yum!")
		return nil
	case "play":
		if arg == "" {
			return fmt.Errorf("usage: play <toy name>")
		}
		if err := s.Play(arg); err != nil {
			return err
		}
		fmt.Println("So much fun!")
		return nil
	case "vet":
		if err := s.VisitVet(); err != nil {
			return err
		}
		fmt.Println("All patched up.")
		return nil
	case "exercise":
		if err := s.Exercise(); err != nil {
			return err
		}
		fmt.Println("Phew, good workout!")
		return nil
	case "sleep":
		if err := s.Sleep(); err != nil {
			return err
		}
		fmt.Println("Sweet dreams.")
		return nil
	case "wake":
		if err := s.Wake(); err != nil {
			return err
		}
		fmt.Println("Rise and shine!")
		return nil
	case "wear", "gift":
		if err := s.GiveGift(); err != nil {
			return err
		}
		st := s.Status()
		if st.Pet.WearingOutfit() {
			fmt.Println("Looking sharp! Bonus coins earned.")
		} else {
			fmt.Println("Outfit tucked away.")
		}
		return nil
	case "strip":
		st := s.Status()
		if !st.Pet.WearingOutfit() {
			return fmt.Errorf("nothing to take off")
		}
		if err := s.GiveGift(); err != nil {
			return err
		}
		fmt.Println("Outfit tucked away.")
		return nil
	case "shop":
		fmt.Print(renderShop())
		return nil
	case "buy":
		return buyFromSession(s, arg)
	case "save":
		if err := s.Save(); err != nil {
			return err
		}
		fmt.Println("Saved.")
		return nil
	default:
		return fmt.Errorf("unknown command %q; type 'help'", cmd)
	}
}

const sessionHelp = `Commands:
  stats               show the status card
  feed <food>         feed one unit of an owned food
  play <toy>          play with an owned toy
  vet                 take the pet to the vet
  exercise            work out together
  sleep / wake        put to bed / get up
  wear / strip        toggle the pet's outfit
  shop                browse the shop
  buy <kind> <item>   buy food/toy/gift, e.g. 'buy food Orange'
  save                save without leaving
  quit                save and leave`

// buyFromSession parses "food Orange 2" style arguments.
func buyFromSession(s *game.Session, arg string) error {
	fields := strings.Fields(arg)
	if len(fields) < 2 {
		return fmt.Errorf("usage: buy food|toy|gift <item> [qty]")
	}
	kind := strings.ToLower(fields[0])
	rest := fields[1:]

	qty := 1
	if kind == "food" && len(rest) > 1 {
		if v, err := strconv.Atoi(rest[len(rest)-1]); err == nil {
			qty = v
			rest = rest[:len(rest)-1]
		}
	}
	item := strings.Join(rest, " ")

	var err error
	switch kind {
	case "food":
		err = s.BuyFood(item, qty)
	case "toy":
		err = s.BuyToy(item)
	case "gift":
		err = s.BuyGift(item)
	default:
		return fmt.Errorf("unknown item kind %q", kind)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Bought %s. Coins left: %d\n", item, s.Status().Coins)
	return nil
}
