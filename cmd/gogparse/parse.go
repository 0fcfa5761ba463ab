package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glenn-saic/simdissdk/calc"
	"github.com/glenn-saic/simdissdk/gog"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.gog>",
	Short: "Parse an overlay file and summarize its shapes",
	Long:  "Parse an overlay file into typed shapes and print a summary, a JSON listing, or a canonical rewrite.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("json", false, "Emit shapes as JSON")
	parseCmd.Flags().String("rewrite", "", "Write a canonical overlay rewrite to this path ('-' for stdout)")

	rootCmd.AddCommand(parseCmd)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	typeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2DD4BF"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func runParse(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	rewrite, _ := cmd.Flags().GetString("rewrite")

	shapes, err := parseFile(args[0])
	if err != nil {
		return err
	}

	if rewrite != "" {
		return writeRewrite(rewrite, shapes)
	}
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), shapes)
	}
	printSummary(args[0], shapes)
	return nil
}

func parseFile(path string) ([]gog.Shape, error) {
	p, err := newParser()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening overlay file: %w", err)
	}
	defer f.Close()

	shapes, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading overlay file: %w", err)
	}
	return shapes, nil
}

func writeRewrite(path string, shapes []gog.Shape) error {
	if path == "-" {
		return gog.Serialize(os.Stdout, shapes)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating rewrite file: %w", err)
	}
	defer f.Close()
	return gog.Serialize(f, shapes)
}

// shapeRecord is the JSON form of a loaded shape. The ID is assigned at load
// time so separate loads of the same file get distinct IDs.
type shapeRecord struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Name     string       `json:"name,omitempty"`
	Relative bool         `json:"relative"`
	Drawn    bool         `json:"drawn"`
	Text     string       `json:"text,omitempty"`
	Radius   *float64     `json:"radius_m,omitempty"`
	Height   *float64     `json:"height_m,omitempty"`
	Points   [][3]float64 `json:"points,omitempty"`
}

func writeJSON(w io.Writer, shapes []gog.Shape) error {
	records := make([]shapeRecord, 0, len(shapes))
	for _, s := range shapes {
		records = append(records, toRecord(s))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func toRecord(s gog.Shape) shapeRecord {
	rec := shapeRecord{
		ID:       uuid.NewString(),
		Type:     s.Type().String(),
		Relative: s.IsRelative(),
	}
	rec.Name, _ = s.Name()
	rec.Drawn, _ = s.IsDrawn()

	appendPoint := func(p calc.Vec3) {
		if s.IsRelative() {
			rec.Points = append(rec.Points, [3]float64{p.X, p.Y, p.Z})
			return
		}
		rec.Points = append(rec.Points, [3]float64{p.X * calc.RadToDeg, p.Y * calc.RadToDeg, p.Z})
	}

	switch v := s.(type) {
	case *gog.Annotation:
		rec.Text = v.Text()
		appendPoint(v.Position())
	case *gog.Line:
		for _, p := range v.Points() {
			appendPoint(p)
		}
	case *gog.LineSegs:
		for _, p := range v.Points() {
			appendPoint(p)
		}
	case *gog.Polygon:
		for _, p := range v.Points() {
			appendPoint(p)
		}
	case *gog.Points:
		for _, p := range v.Points() {
			appendPoint(p)
		}
	case *gog.Orbit:
		appendPoint(v.CenterPosition())
		appendPoint(v.CenterPosition2())
		if r, set := v.Radius(); set {
			rec.Radius = &r
		}
	default:
		// the rest of the circular family
		if c, ok := s.(interface{ CenterPosition() calc.Vec3 }); ok {
			appendPoint(c.CenterPosition())
		}
		if c, ok := s.(interface{ Radius() (float64, bool) }); ok {
			if r, set := c.Radius(); set {
				rec.Radius = &r
			}
		}
		if h, ok := s.(interface{ Height() (float64, bool) }); ok {
			if height, set := h.Height(); set {
				rec.Height = &height
			}
		}
	}
	return rec
}

func printSummary(path string, shapes []gog.Shape) {
	verbose := viper.GetBool("verbose")

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s: %d shapes", path, len(shapes))))
	for i, s := range shapes {
		label := s.Type().String()
		if name, set := s.Name(); set {
			label += " " + dimStyle.Render("("+name+")")
		}
		fmt.Printf("  %2d  %s\n", i+1, typeStyle.Render(label))
		if !verbose {
			continue
		}
		if a, ok := s.(*gog.Annotation); ok {
			fmt.Printf("      text: %s\n", a.Text())
		}
		if drawn, set := s.IsDrawn(); set && !drawn {
			fmt.Println(dimStyle.Render("      hidden"))
		}
		if s.IsRelative() {
			fmt.Println(dimStyle.Render("      relative offsets"))
		}
	}
}
