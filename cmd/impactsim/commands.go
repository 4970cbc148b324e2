package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/impact-sim/internal/adapter/httpapi"
	"github.com/couchcryptid/impact-sim/internal/cities"
	"github.com/couchcryptid/impact-sim/internal/domain"
	"github.com/couchcryptid/impact-sim/internal/observability"
)

var (
	diameter   float64
	velocity   float64
	material   string
	surface    string
	targetCity string
	jsonOutput bool
	noColor    bool

	rootCmd = &cobra.Command{
		Use:   "impactsim",
		Short: "Estimate the effects of an asteroid or comet impact",
		Long: `impactsim estimates the physical effects of an asteroid or comet
impact on a populated location: mass, kinetic energy, TNT equivalent,
crater size, and concentric destruction zones, compared against
historical reference events.`,
	}

	simulateCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Run one impact estimation from flags and print the report",
		RunE:  runSimulate,
	}

	interactiveCmd = &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for impact parameters and render the report",
		RunE:  runInteractive,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimator as a JSON API with Prometheus metrics",
		RunE:  runServe,
	}

	materialsCmd = &cobra.Command{
		Use:   "materials",
		Short: "List impactor compositions and their densities",
		RunE:  runMaterials,
	}

	citiesCmd = &cobra.Command{
		Use:   "cities",
		Short: "List available target cities",
		RunE:  runCities,
	}
)

func init() {
	simulateCmd.Flags().Float64Var(&diameter, "diameter", 0, "impactor diameter in meters (required)")
	simulateCmd.Flags().Float64Var(&velocity, "velocity", 0, "impact velocity in m/s (required)")
	simulateCmd.Flags().StringVar(&material, "material", "", "impactor material: iron, stone, ice, nickel_iron (required)")
	simulateCmd.Flags().StringVar(&surface, "target", string(domain.SurfaceLand), "target surface: land, ocean, ice")
	simulateCmd.Flags().StringVar(&targetCity, "city", "", "target city label for the report")
	simulateCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the raw result as JSON instead of the report")

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")

	rootCmd.AddCommand(simulateCmd, interactiveCmd, serveCmd, materialsCmd, citiesCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	params := domain.ImpactParameters{
		DiameterM:   diameter,
		VelocityMps: velocity,
		Material:    domain.Material(material),
		Surface:     domain.Surface(surface),
		City:        targetCity,
	}
	if params.City != "" {
		c, ok := cities.Get(params.City)
		if !ok {
			return fmt.Errorf("unknown city %q, see 'impactsim cities'", params.City)
		}
		params.City = c.Name
	}

	result, err := domain.Simulate(params)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.Report(result))
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	srv := httpapi.NewServer(cfg.HTTPAddr, logger, metrics)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
		return err
	}

	logger.Info("shutdown complete")
	return nil
}

func runMaterials(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	for _, m := range domain.Materials() {
		fmt.Fprintf(w, "%-12s %-12s %6.0f kg/m³   %s\n", m.Material, m.Name, m.Density, m.Description)
	}
	return nil
}

func runCities(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	for i, c := range cities.All() {
		fmt.Fprintf(w, "%2d. %-14s (%s)\n", i+1, c.Name, c.Country)
	}
	return nil
}

// exitIfInterrupted translates a read error on stdin into a clean exit,
// matching ctrl-D behavior in the interactive prompt loop.
func exitIfInterrupted(err error) {
	if err != nil {
		fmt.Println("\nExiting...")
		os.Exit(0)
	}
}
