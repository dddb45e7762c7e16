// Package formulacheck validates formula override files and previews their
// results before they reach a running bot.
package formulacheck

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/togarashi-bot/internal/formula"
	"github.com/KirkDiggler/togarashi-bot/internal/repositories/actors"
)

// Config holds the formula-check options
type Config struct {
	// File is a YAML override file; empty checks the built-in defaults
	File string
	// Roster is a YAML actor roster whose derived stats are printed
	Roster string
	// Bindings are sample values used to evaluate every formula
	Bindings map[string]float64
}

type bindingsFlag map[string]float64

func (b bindingsFlag) String() string {
	pairs := make([]string, 0, len(b))
	for name, value := range b {
		pairs = append(pairs, name+"="+strconv.FormatFloat(value, 'g', -1, 64))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (b bindingsFlag) Set(raw string) error {
	name, value, ok := strings.Cut(raw, "=")
	if !ok || name == "" {
		return fmt.Errorf("binding %q must look like name=value", raw)
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("binding %s: %w", name, err)
	}
	b[name] = parsed
	return nil
}

// ParseConfig parses flags into a Config
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Bindings: map[string]float64{}}
	fs.StringVar(&cfg.File, "file", "", "formula override file (default: built-in formulas)")
	fs.StringVar(&cfg.Roster, "roster", "", "actor roster to compute derived stats for")
	fs.Var(bindingsFlag(cfg.Bindings), "var", "sample binding name=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run checks the formulas and writes a report to out
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}

	set := formula.DefaultSet()
	if cfg.File != "" {
		loaded, err := formula.LoadFile(cfg.File)
		if err != nil {
			return err
		}
		set = loaded
	}

	roles := make([]string, 0, len(set))
	for role := range set {
		roles = append(roles, string(role))
	}
	sort.Strings(roles)

	engine := formula.NewEngine()
	for _, name := range roles {
		role := formula.Role(name)
		expr := set[role]

		vars, err := formula.Variables(expr)
		if err != nil {
			return fmt.Errorf("formula %s: %w", name, err)
		}
		fmt.Fprintf(out, "%s: %s\n", name, expr)

		if len(cfg.Bindings) == 0 {
			continue
		}
		if missing := unbound(vars, cfg.Bindings); len(missing) > 0 {
			fmt.Fprintf(out, "  needs %s\n", strings.Join(missing, ", "))
			continue
		}

		value, err := set.Eval(engine, role, cfg.Bindings)
		if err != nil {
			fmt.Fprintf(out, "  error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "  = %s\n", strconv.FormatFloat(value, 'g', -1, 64))
	}

	if cfg.Roster == "" {
		return nil
	}

	roster, err := actors.LoadRoster(cfg.Roster)
	if err != nil {
		return err
	}
	for _, actor := range roster {
		derived, err := actor.CalculateDerivedStats(set, engine)
		if err != nil {
			return fmt.Errorf("actor %s: %w", actor.ID, err)
		}
		fmt.Fprintf(out, "%s: health %d, vital aura %d, daily aura %d\n",
			actor.Name, derived.FullHealth, derived.VitalAura, derived.DailyAura)
	}
	return nil
}

func unbound(vars []string, bindings map[string]float64) []string {
	var missing []string
	for _, name := range vars {
		if _, ok := bindings[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
