package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/presentation"
	"github.com/zjrosen/spacetraders/internal/session"
	"github.com/zjrosen/spacetraders/internal/value"
)

var (
	surveyFile string
	buyToken   string
)

var shipsCmd = &cobra.Command{
	Use:   "ships",
	Short: "List, move, mine with and buy ships",
}

var shipsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the ships in the saved session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShipsList(current)
	},
}

var shipsDockCmd = &cobra.Command{
	Use:   "dock <ship>",
	Short: "Dock a ship at its current waypoint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShipsMove(cmd.Context(), current, args[0], domain.NavStatusDocked)
	},
}

var shipsOrbitCmd = &cobra.Command{
	Use:   "orbit <ship>",
	Short: "Move a ship into orbit around its current waypoint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShipsMove(cmd.Context(), current, args[0], domain.NavStatusInOrbit)
	},
}

var shipsExtractCmd = &cobra.Command{
	Use:   "extract <ship>",
	Short: "Extract resources at the ship's waypoint",
	Long: `Extract resources at the ship's current waypoint.

--survey-file points at a JSON survey as returned by the survey endpoint;
expired surveys are rejected before contacting the server.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var survey *domain.Survey
		if surveyFile != "" {
			s, err := readSurvey(surveyFile, time.Now())
			if err != nil {
				return err
			}
			survey = &s
		}
		return runShipsExtract(cmd.Context(), current, args[0], survey)
	},
}

var shipsBuyCmd = &cobra.Command{
	Use:   "buy <ship-type> <waypoint>",
	Short: "Buy a ship at a shipyard",
	Long: `Buy a ship at a shipyard waypoint.

Without a save file, --token buys with that token alone; the purchase is
printed but nothing is cached or saved.

Examples:
  spacetraders ships buy SHIP_MINING_DRONE X1-ZA40-68707C
  spacetraders ships buy --token "$TOKEN" SHIP_PROBE X1-ZA40-68707C`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		shipType, err := domain.ParseShipType(strings.ToUpper(args[0]))
		if err != nil {
			return err
		}
		waypoint, err := value.NewSymbol(args[1])
		if err != nil {
			return err
		}
		return runShipsBuy(cmd.Context(), current, buyToken, shipType, waypoint)
	},
}

func init() {
	shipsExtractCmd.Flags().StringVar(&surveyFile, "survey-file", "", "JSON survey to target")
	shipsBuyCmd.Flags().StringVar(&buyToken, "token", "", "bearer token to use when there is no save file")
	shipsCmd.AddCommand(shipsListCmd, shipsDockCmd, shipsOrbitCmd, shipsExtractCmd, shipsBuyCmd)
	rootCmd.AddCommand(shipsCmd)
}

func runShipsList(a *app) error {
	if err := a.load(); err != nil {
		return err
	}
	return a.out.Print(presentation.FromShips(a.client.Cache().Ships()))
}

func runShipsMove(ctx context.Context, a *app, symbol string, target domain.ShipNavStatus) error {
	if err := a.load(); err != nil {
		return err
	}
	move := a.client.DockShip
	if target == domain.NavStatusInOrbit {
		move = a.client.OrbitShip
	}
	nav, err := move(ctx, symbol)
	if err != nil {
		return err
	}
	if err := a.save(); err != nil {
		return err
	}
	return a.out.Print(presentation.FromNav(symbol, nav))
}

func runShipsExtract(ctx context.Context, a *app, symbol string, survey *domain.Survey) error {
	if err := a.load(); err != nil {
		return err
	}
	result, err := a.client.ExtractResources(ctx, symbol, survey)
	if err != nil {
		return err
	}
	if err := a.save(); err != nil {
		return err
	}
	return a.out.Print(presentation.FromExtraction(result))
}

// runShipsBuy loads the saved session so the new ship lands in the cache.
// With no save file it falls back to token alone and saves nothing.
func runShipsBuy(ctx context.Context, a *app, token string, shipType domain.ShipType, waypoint value.Symbol) error {
	if err := a.load(); err != nil {
		var saveErr *session.SaveFileError
		if token == "" || !errors.As(err, &saveErr) || saveErr.Kind != session.SaveMissing {
			return err
		}
		if err := a.client.InitializeWithToken(token); err != nil {
			return err
		}
	}
	purchase, err := a.client.BuyShip(ctx, shipType, waypoint)
	if err != nil {
		return err
	}
	if a.client.Cache() != nil {
		if err := a.save(); err != nil {
			return err
		}
	}
	return a.out.Print(presentation.FromPurchase(purchase))
}

func readSurvey(path string, now time.Time) (domain.Survey, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is a user-supplied flag
	if err != nil {
		return domain.Survey{}, fmt.Errorf("reading survey: %w", err)
	}
	var survey domain.Survey
	if err := json.Unmarshal(data, &survey); err != nil {
		return domain.Survey{}, fmt.Errorf("decoding survey %s: %w", path, err)
	}
	if err := value.Validate(&survey); err != nil {
		return domain.Survey{}, fmt.Errorf("decoding survey %s: %w", path, err)
	}
	if survey.Expired(now) {
		return domain.Survey{}, fmt.Errorf("survey %s expired at %s", survey.Signature, survey.Expiration.Format(time.RFC3339))
	}
	return survey, nil
}
