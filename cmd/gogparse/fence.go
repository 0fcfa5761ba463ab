package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glenn-saic/simdissdk/calc"
	"github.com/glenn-saic/simdissdk/geofence"
	"github.com/glenn-saic/simdissdk/gog"
)

var fenceCmd = &cobra.Command{
	Use:   "fence <file.gog>",
	Short: "Build geofences from the polygons in an overlay file",
	Long:  "Build a geofence from every absolute polygon in an overlay file, report which are valid, and optionally test a position against them.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFence,
}

func init() {
	fenceCmd.Flags().String("point", "", "Position to test as 'lat,lon' in degrees")

	rootCmd.AddCommand(fenceCmd)
}

func runFence(cmd *cobra.Command, args []string) error {
	pointArg, _ := cmd.Flags().GetString("point")

	var probe *calc.Vec3
	if pointArg != "" {
		p, err := parseLatLon(pointArg)
		if err != nil {
			return err
		}
		probe = &p
	}

	shapes, err := parseFile(args[0])
	if err != nil {
		return err
	}

	count := 0
	for _, s := range shapes {
		poly, ok := s.(*gog.Polygon)
		if !ok || poly.IsRelative() {
			continue
		}
		count++

		label := fmt.Sprintf("fence %d", count)
		if name, set := poly.Name(); set {
			label = fmt.Sprintf("fence %d (%s)", count, name)
		}

		f := geofence.New(poly.Points(), geofence.CoordSysGeodetic)
		if !f.Valid() {
			fmt.Printf("%s: invalid (not convex)\n", label)
			continue
		}
		if probe == nil {
			fmt.Printf("%s: valid, %d vertices\n", label, len(poly.Points()))
			continue
		}
		if f.ContainsGeodetic(*probe) {
			fmt.Printf("%s: contains the point\n", label)
		} else {
			fmt.Printf("%s: does not contain the point\n", label)
		}
	}
	if count == 0 {
		fmt.Println("no absolute polygons in file")
	}
	return nil
}

func parseLatLon(s string) (calc.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return calc.Vec3{}, fmt.Errorf("point must be 'lat,lon', got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return calc.Vec3{}, fmt.Errorf("invalid latitude %q", parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return calc.Vec3{}, fmt.Errorf("invalid longitude %q", parts[1])
	}
	return calc.Vec3{X: lat * calc.DegToRad, Y: lon * calc.DegToRad}, nil
}
