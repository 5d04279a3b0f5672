package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/tutormatch/internal/config"
	"github.com/vijay-prabhu/tutormatch/internal/matcher"
	"github.com/vijay-prabhu/tutormatch/internal/output"
	"github.com/vijay-prabhu/tutormatch/internal/validation"
)

var distanceCmd = &cobra.Command{
	Use:   "distance [lat1 lng1 lat2 lng2]",
	Short: "Great-circle distance in kilometres",
	Long: `Compute the great-circle distance between two points, rounded to 0.1 km.

Points are given as coordinates, or as addresses placed by city name.

Examples:
  tutormatch distance 12.9716 77.5946 28.7041 77.1025
  tutormatch distance --from "MG Road, Bangalore" --to Delhi`,
	RunE: runDistance,
}

var (
	distanceFrom string
	distanceTo   string
)

func init() {
	rootCmd.AddCommand(distanceCmd)
	distanceCmd.Flags().StringVar(&distanceFrom, "from", "", "Start address")
	distanceCmd.Flags().StringVar(&distanceTo, "to", "", "End address")
}

func runDistance(cmd *cobra.Command, args []string) error {
	if distanceFrom != "" || distanceTo != "" {
		if distanceFrom == "" || distanceTo == "" || len(args) > 0 {
			return fmt.Errorf("use either --from and --to, or four coordinates")
		}

		// Only the geocoder is needed, so the database stays closed
		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return err
		}
		result, err := matcher.New(nil, cfg).DistanceBetween(distanceFrom, distanceTo)
		if err != nil {
			return err
		}
		return output.Output(outputFmt, result)
	}

	req, err := parseDistanceArgs(args)
	if err != nil {
		return err
	}
	result, err := matcher.Distance(req)
	if err != nil {
		return err
	}
	return output.Output(outputFmt, result)
}

func parseDistanceArgs(args []string) (validation.DistanceRequest, error) {
	if len(args) != 4 {
		return validation.DistanceRequest{}, fmt.Errorf("expected 4 coordinates (lat1 lng1 lat2 lng2), got %d", len(args))
	}

	var values [4]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return validation.DistanceRequest{}, fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		values[i] = v
	}

	return validation.DistanceRequest{
		Lat1: values[0],
		Lng1: values[1],
		Lat2: values[2],
		Lng2: values[3],
	}, nil
}
