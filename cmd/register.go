package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zjrosen/spacetraders/internal/config"
	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/log"
	"github.com/zjrosen/spacetraders/internal/presentation"
)

var (
	registerFaction string
	registerRandom  bool
)

var registerCmd = &cobra.Command{
	Use:   "register [callsign]",
	Short: "Register a new agent and save its session",
	Long: `Register a new agent with the given callsign (3 to 14 characters).

The token and the starting state are written to the save file, replacing any
session stored there.

Examples:
  spacetraders register MYAGENT
  spacetraders register MYAGENT --faction VOID
  spacetraders register --random`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		callsign := ""
		switch {
		case registerRandom && len(args) > 0:
			return fmt.Errorf("pass a callsign or --random, not both")
		case registerRandom:
			callsign = randomCallsign()
		case len(args) == 1:
			callsign = args[0]
		default:
			return cmd.Help()
		}
		return runRegister(cmd.Context(), current, callsign, registerFaction)
	},
}

func init() {
	registerCmd.Flags().StringVarP(&registerFaction, "faction", "f", "", "starting faction (default from config, COSMIC)")
	registerCmd.Flags().BoolVar(&registerRandom, "random", false, "generate a random callsign")
	rootCmd.AddCommand(registerCmd)
}

// randomCallsign returns "ST" followed by ten hex digits of a random UUID.
func randomCallsign() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ST" + strings.ToUpper(id[:10])
}

func runRegister(ctx context.Context, a *app, callsign, factionFlag string) error {
	faction, err := a.cfg.Faction()
	if err != nil {
		return err
	}
	if factionFlag != "" {
		faction, err = domain.ParseFactionSymbol(strings.ToUpper(factionFlag))
		if err != nil {
			return err
		}
	}

	if err := a.client.Register(ctx, callsign, &faction); err != nil {
		return fmt.Errorf("registering %s: %w", callsign, err)
	}
	if err := a.save(); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	if err := config.SaveLastAgent(a.configPath, config.LastAgentConfig{Callsign: callsign, Faction: string(faction)}); err != nil {
		log.Warn(log.CatConfig, "Could not remember last agent", "error", err)
	}
	return a.out.Print(presentation.FromAgent(a.client.Cache()))
}
