// Package art renders the status card: a small ASCII critter per
// archetype whose expression follows the display state, plus stat gauges.
package art

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ayabdnabi/virtual-pet/internal/game"
	"github.com/ayabdnabi/virtual-pet/internal/pet"
)

const barWidth = 20

// StatBar renders a fixed-width gauge like [##########----------] 50/100.
func StatBar(value, max int) string {
	if max <= 0 {
		max = 1
	}
	filled := value * barWidth / max
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return fmt.Sprintf("[%s%s] %d/%d",
		strings.Repeat("#", filled),
		strings.Repeat("-", barWidth-filled),
		value, max)
}

func eyes(st pet.State) string {
	switch st {
	case pet.StateDead:
		return "x.x"
	case pet.StateSleeping:
		return "-.-"
	case pet.StateAngry:
		return ">.<"
	case pet.StateHungry:
		return "O.o"
	default:
		return "o.o"
	}
}

// Critter draws the pet: a body per archetype, eyes per state. A dressed
// pet gets a little hat on top, a sleeping one snores.
func Critter(kind pet.Archetype, st pet.State, dressed bool) string {
	e := eyes(st)

	var body string
	switch kind {
	case pet.ArchetypePeacock:
		body = fmt.Sprintf("  \\\\|//\n ( %s )>\n  //|\\\\", e)
	case pet.ArchetypeFerret:
		body = fmt.Sprintf("  ____\n ( %s )~~\n  \"\"-\"\"", e)
	default:
		body = fmt.Sprintf(" @._.@\n ( %s )\n  \\_-_/", e)
	}

	if dressed {
		body = "   _n_\n" + body
	}
	if st == pet.StateSleeping {
		body += "  zzZ"
	}
	return body
}

// RenderStatus builds the whole status card from one snapshot.
func RenderStatus(st game.Status) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s the %s  [%s]\n\n", st.Pet.Name, st.Pet.Kind, st.State)
	b.WriteString(Critter(st.Pet.Kind, st.State, st.Pet.WearingOutfit()))
	b.WriteString("\n\n")

	warn := map[string]string{}
	for _, w := range st.Warnings {
		warn[w] = " (!)"
	}
	fmt.Fprintf(&b, "  health    %s%s\n", StatBar(st.Pet.Health, st.Pet.MaxHealth), warn["health"])
	fmt.Fprintf(&b, "  sleep     %s%s\n", StatBar(st.Pet.Sleep, st.Pet.MaxSleep), warn["sleep"])
	fmt.Fprintf(&b, "  fullness  %s%s\n", StatBar(st.Pet.Fullness, st.Pet.MaxFullness), warn["fullness"])
	fmt.Fprintf(&b, "  happiness %s%s\n", StatBar(st.Pet.Happiness, st.Pet.MaxHappiness), warn["happiness"])

	fmt.Fprintf(&b, "\n  coins: %d   play time: %s\n", st.Coins, st.PlayTime.Round(time.Second))
	if st.Pet.Outfit != "" {
		fmt.Fprintf(&b, "  wearing: %s\n", st.Pet.Outfit)
	}
	if st.VetWait > 0 {
		fmt.Fprintf(&b, "  vet available in %ds\n", st.VetWait)
	}
	if st.PlayWait > 0 {
		fmt.Fprintf(&b, "  ready to play in %ds\n", st.PlayWait)
	}

	if len(st.Foods) > 0 || len(st.Toys) > 0 || len(st.Outfits) > 0 {
		b.WriteString("\n  inventory:\n")
		for _, line := range inventoryLines(st) {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}

	return b.String()
}

func inventoryLines(st game.Status) []string {
	var lines []string
	for f, n := range st.Foods {
		if n > 0 {
			lines = append(lines, fmt.Sprintf("%s x%d", f.Name, n))
		}
	}
	for t, n := range st.Toys {
		if n > 0 {
			lines = append(lines, fmt.Sprintf("%s (toy)", t.Name))
		}
	}
	for name, available := range st.Outfits {
		if available {
			lines = append(lines, fmt.Sprintf("%s (outfit)", name))
		} else {
			lines = append(lines, fmt.Sprintf("%s (outfit, worn)", name))
		}
	}
	sort.Strings(lines)
	return lines
}
