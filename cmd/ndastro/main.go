// ndastro — sidereal chart computation for the Indian system.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/seenimoa/ndastro/api"
	"github.com/seenimoa/ndastro/internal/astro"
	"github.com/seenimoa/ndastro/internal/chart"
	"github.com/seenimoa/ndastro/internal/config"
	"github.com/seenimoa/ndastro/internal/ephem"
	"github.com/seenimoa/ndastro/internal/i18n"
	"github.com/seenimoa/ndastro/pkg/models"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ndastro",
	Short: "ndastro — sidereal planetary positions and kattam charts",
	Long: `ndastro computes nirayana (sidereal) planetary positions, the
ascendant, lunar nodes and sunrise/sunset for any observer and instant,
and renders the result as a traditional South Indian kattam chart.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().Float64("lat", 0, "observer latitude in decimal degrees")
	rootCmd.PersistentFlags().Float64("lon", 0, "observer longitude in decimal degrees")
	rootCmd.PersistentFlags().String("time", "", "instant in RFC 3339 (default: now)")
	rootCmd.PersistentFlags().String("ayanamsa", "", "ayanamsa name (default from config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(planetsCmd)
	rootCmd.AddCommand(ascendantCmd)
	rootCmd.AddCommand(nodesCmd)
	rootCmd.AddCommand(kattamsCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(sunriseCmd)
	rootCmd.AddCommand(serveCmd)
}

// newEngine builds the computation engine from the configured dataset.
func newEngine() (*astro.Engine, error) {
	kernel, err := ephem.Load(cfg.Ephemeris.Dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load ephemeris: %w", err)
	}
	return astro.New(kernel), nil
}

// observerArgs resolves the observer and instant from flags, falling back
// to the configured chart defaults.
func observerArgs(cmd *cobra.Command) (lat, lon float64, at time.Time, ayanamsa string, err error) {
	lat = cfg.Chart.Latitude
	lon = cfg.Chart.Longitude
	at = time.Now().UTC()
	ayanamsa = cfg.Chart.Ayanamsa

	if cmd.Flags().Changed("lat") {
		lat, _ = cmd.Flags().GetFloat64("lat")
	}
	if cmd.Flags().Changed("lon") {
		lon, _ = cmd.Flags().GetFloat64("lon")
	}
	if v, _ := cmd.Flags().GetString("time"); v != "" {
		at, err = time.Parse(time.RFC3339, v)
		if err != nil {
			return 0, 0, time.Time{}, "", fmt.Errorf("invalid --time; use RFC 3339, e.g. 2024-06-21T05:30:00Z")
		}
	}
	if v, _ := cmd.Flags().GetString("ayanamsa"); v != "" {
		ayanamsa = v
	}
	return lat, lon, at, ayanamsa, nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ndastro %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Planets Command ---

var planetsCmd = &cobra.Command{
	Use:   "planets",
	Short: "Compute sidereal planetary positions",
	Long:  "Compute the nine sidereal positions (seven bodies plus Rahu and Kethu) for an observer and instant.",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		lat, lon, at, ayanamsa, err := observerArgs(cmd)
		if err != nil {
			return err
		}
		positions, err := engine.PlanetPositions(lat, lon, at, ayanamsa)
		if err != nil {
			return err
		}
		return printJSON(positions)
	},
}

// --- Ascendant Command ---

var ascendantCmd = &cobra.Command{
	Use:   "ascendant",
	Short: "Compute the rising point (lagna)",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		lat, lon, at, ayanamsa, err := observerArgs(cmd)
		if err != nil {
			return err
		}
		asc, err := engine.Ascendant(at, lat, lon, ayanamsa)
		if err != nil {
			return err
		}
		return printJSON(asc)
	},
}

// --- Nodes Command ---

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "Compute the lunar nodes (Rahu and Kethu)",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		_, _, at, _, err := observerArgs(cmd)
		if err != nil {
			return err
		}
		rahu, kethu := engine.LunarNodes(at)
		return printJSON(map[string]models.PlanetPosition{
			"rahu":  rahu,
			"kethu": kethu,
		})
	},
}

// --- Kattams Command ---

var kattamsCmd = &cobra.Command{
	Use:   "kattams",
	Short: "Assemble the 12 chart squares",
	Long:  "Assemble the 12 kattam records: house order, rasi, owner and occupying bodies relative to the ascendant.",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		lat, lon, at, ayanamsa, err := observerArgs(cmd)
		if err != nil {
			return err
		}
		kattams, err := engine.Kattams(lat, lon, at, ayanamsa)
		if err != nil {
			return err
		}
		return printJSON(kattams)
	},
}

// --- Chart Command ---

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render a South Indian kattam chart as SVG",
	Long: `Render the chart for an observer and instant as an SVG document.

Examples:
  ndastro chart --lat 12.59 --lon 77.36 --time 2024-06-21T05:30:00Z
  ndastro chart --name "Subject" --place Chennai --locale ta -o chart.svg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		lat, lon, at, ayanamsa, err := observerArgs(cmd)
		if err != nil {
			return err
		}

		kattams, err := engine.Kattams(lat, lon, at, ayanamsa)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = cfg.Chart.Name
		}
		place, _ := cmd.Flags().GetString("place")
		if place == "" {
			place = cfg.Chart.Place
		}
		locale, _ := cmd.Flags().GetString("locale")
		if locale == "" {
			locale = cfg.Chart.Locale
		}

		birth := models.BirthDetails{
			Name:  name,
			Date:  at.Format("2006-01-02"),
			Time:  at.Format("15:04"),
			Place: place,
		}
		svg := chart.SouthIndianSVG(kattams, birth, i18n.For(locale))

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			fmt.Println(svg)
			return nil
		}
		if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
		fmt.Printf("chart written to %s\n", out)
		return nil
	},
}

func init() {
	chartCmd.Flags().String("name", "", "subject name shown in the chart centre")
	chartCmd.Flags().String("place", "", "place name shown in the chart centre")
	chartCmd.Flags().String("locale", "", "chart locale (en, ta)")
	chartCmd.Flags().StringP("out", "o", "", "output file (default: stdout)")
}

// --- Sunrise Command ---

var sunriseCmd = &cobra.Command{
	Use:   "sunrise",
	Short: "Find sunrise and sunset for a calendar day",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		lat, lon, at, _, err := observerArgs(cmd)
		if err != nil {
			return err
		}
		times, err := engine.SunriseSunset(lat, lon, at)
		if err != nil {
			return err
		}
		return printJSON(times)
	},
}

// --- Serve Command ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start the REST API and WebSocket transit stream on the configured address.",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		logger := config.NewLogger(cfg.Logging)
		srv := api.NewServer(cfg, engine, logger)

		if host, _ := cmd.Flags().GetString("host"); host != "" {
			cfg.API.Host = host
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.API.Port = port
		}

		return srv.ListenAndServe(srv.Addr())
	},
}

func init() {
	serveCmd.Flags().String("host", "", "bind host (overrides config)")
	serveCmd.Flags().Int("port", 0, "bind port (overrides config)")
}
