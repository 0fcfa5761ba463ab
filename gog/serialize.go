package gog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/glenn-saic/simdissdk/calc"
)

// Serialize writes shapes back out as overlay text, one block per shape.
// Output is canonical rather than a copy of the source: values are in base
// units under explicit meters/radians directives, positions are printed in
// degrees, and only explicitly set optional fields appear. Parsing the
// output yields shapes equal to the input.
func Serialize(w io.Writer, shapes []Shape) error {
	bw := bufio.NewWriter(w)
	for _, s := range shapes {
		writeShape(bw, s)
	}
	return bw.Flush()
}

func writeShape(w *bufio.Writer, s Shape) {
	fmt.Fprintln(w, "start")
	if a, ok := s.(*Annotation); ok {
		fmt.Fprintf(w, "annotation %s\n", a.Text())
	} else {
		fmt.Fprintln(w, s.Type().String())
	}
	fmt.Fprintln(w, "rangeunits meters")
	fmt.Fprintln(w, "altitudeunits meters")
	fmt.Fprintln(w, "angleunits radians")

	switch v := s.(type) {
	case *Circle:
		writeCenter(w, s, v.CenterPosition())
		writeCircular(w, &v.circularAttrs)
		writeFillable(w, &v.fillableAttrs)
	case *Sphere:
		writeCenter(w, s, v.CenterPosition())
		writeCircular(w, &v.circularAttrs)
		writeFillable(w, &v.fillableAttrs)
	case *Hemisphere:
		writeCenter(w, s, v.CenterPosition())
		writeCircular(w, &v.circularAttrs)
		writeFillable(w, &v.fillableAttrs)
	case *Cone:
		writeCenter(w, s, v.CenterPosition())
		writeCircular(w, &v.circularAttrs)
		writeHeight(w, &v.heightAttrs)
		writeFillable(w, &v.fillableAttrs)
	case *Ellipsoid:
		writeCenter(w, s, v.CenterPosition())
		writeCircular(w, &v.circularAttrs)
		writeHeight(w, &v.heightAttrs)
		if axis, set := v.MajorAxis(); set {
			fmt.Fprintf(w, "majoraxis %s\n", formatFloat(axis))
		}
		if axis, set := v.MinorAxis(); set {
			fmt.Fprintf(w, "minoraxis %s\n", formatFloat(axis))
		}
		writeFillable(w, &v.fillableAttrs)
	case *Arc:
		writeCenter(w, s, v.CenterPosition())
		writeCircular(w, &v.circularAttrs)
		writeElliptical(w, &v.ellipticalAttrs)
		writeFillable(w, &v.fillableAttrs)
	case *Ellipse:
		writeCenter(w, s, v.CenterPosition())
		writeCircular(w, &v.circularAttrs)
		writeElliptical(w, &v.ellipticalAttrs)
		writeFillable(w, &v.fillableAttrs)
	case *Cylinder:
		writeCenter(w, s, v.CenterPosition())
		writeCircular(w, &v.circularAttrs)
		writeElliptical(w, &v.ellipticalAttrs)
		writeHeight(w, &v.heightAttrs)
		writeFillable(w, &v.fillableAttrs)
	case *Orbit:
		writeCenter(w, s, v.CenterPosition())
		writePosition(w, center2Keyword(s), v.CenterPosition2(), s.IsRelative())
		writeCircular(w, &v.circularAttrs)
		writeFillable(w, &v.fillableAttrs)
	case *Line:
		writePointBased(w, s, &v.pointBasedAttrs)
	case *LineSegs:
		writePointBased(w, s, &v.pointBasedAttrs)
	case *Polygon:
		writePointBased(w, s, &v.pointBasedAttrs)
	case *Points:
		for _, p := range v.Points() {
			writePosition(w, positionKeyword(s), p, s.IsRelative())
		}
		if size, set := v.PointSize(); set {
			fmt.Fprintf(w, "pointsize %d\n", size)
		}
		if c, set := v.Color(); set {
			fmt.Fprintf(w, "linecolor hex %s\n", c.HexString())
		}
		if outlined, set := v.IsOutlined(); set {
			fmt.Fprintf(w, "outline %t\n", outlined)
		}
	case *Annotation:
		writePosition(w, positionKeyword(s), v.Position(), s.IsRelative())
		if name, set := v.FontName(); set {
			fmt.Fprintf(w, "fontname %s\n", name)
		}
		if size, set := v.TextSize(); set {
			fmt.Fprintf(w, "fontsize %d\n", size)
		}
		if c, set := v.TextColor(); set {
			fmt.Fprintf(w, "linecolor hex %s\n", c.HexString())
		}
		if c, set := v.OutlineColor(); set {
			fmt.Fprintf(w, "textoutlinecolor hex %s\n", c.HexString())
		}
		if thickness, set := v.OutlineThickness(); set {
			fmt.Fprintf(w, "textoutlinethickness %s\n", thickness)
		}
		if icon, set := v.IconFile(); set {
			fmt.Fprintf(w, "kml_icon %s\n", icon)
		}
	}

	writeBase(w, s)
	fmt.Fprintln(w, "end")
}

func writeBase(w *bufio.Writer, s Shape) {
	if name, set := s.Name(); set {
		fmt.Fprintf(w, "3d name %s\n", name)
	}
	if drawn, set := s.IsDrawn(); set && !drawn {
		fmt.Fprintln(w, "off")
	}
	if active, set := s.IsDepthBufferActive(); set {
		fmt.Fprintf(w, "depthbuffer %t\n", active)
	}
	if offset, set := s.AltitudeOffset(); set {
		fmt.Fprintf(w, "3d offsetalt %s\n", formatFloat(offset))
	}
	if mode, set := s.AltitudeMode(); set {
		fmt.Fprintf(w, "altitudemode %s\n", mode)
	}
	if ref, set := s.ReferencePosition(); set {
		fmt.Fprintf(w, "referencepoint %s %s %s\n",
			formatFloat(ref.X*calc.RadToDeg), formatFloat(ref.Y*calc.RadToDeg), formatFloat(ref.Z))
	}
	if scale, set := s.Scale(); set {
		fmt.Fprintf(w, "scale %s %s %s\n",
			formatFloat(scale.X), formatFloat(scale.Y), formatFloat(scale.Z))
	}
	components := ""
	if yaw, set := s.IsFollowingYaw(); set && yaw {
		components += "c"
	}
	if pitch, set := s.IsFollowingPitch(); set && pitch {
		components += "p"
	}
	if roll, set := s.IsFollowingRoll(); set && roll {
		components += "r"
	}
	if components != "" {
		fmt.Fprintf(w, "3d follow %s\n", components)
	}
	if offset, set := s.YawOffset(); set {
		fmt.Fprintf(w, "3d offsetyaw %s\n", formatFloat(offset))
	}
	if offset, set := s.PitchOffset(); set {
		fmt.Fprintf(w, "3d offsetpitch %s\n", formatFloat(offset))
	}
	if offset, set := s.RollOffset(); set {
		fmt.Fprintf(w, "3d offsetroll %s\n", formatFloat(offset))
	}
}

func writeCircular(w *bufio.Writer, c *circularAttrs) {
	if radius, set := c.Radius(); set {
		fmt.Fprintf(w, "radius %s\n", formatFloat(radius))
	}
}

func writeHeight(w *bufio.Writer, h *heightAttrs) {
	if height, set := h.Height(); set {
		fmt.Fprintf(w, "height %s\n", formatFloat(height))
	}
}

func writeElliptical(w *bufio.Writer, e *ellipticalAttrs) {
	if start, set := e.AngleStart(); set {
		fmt.Fprintf(w, "anglestart %s\n", formatFloat(start))
	}
	if sweep, set := e.AngleSweep(); set {
		fmt.Fprintf(w, "angledeg %s\n", formatFloat(sweep))
	}
	if axis, set := e.MajorAxis(); set {
		fmt.Fprintf(w, "majoraxis %s\n", formatFloat(axis))
	}
	if axis, set := e.MinorAxis(); set {
		fmt.Fprintf(w, "minoraxis %s\n", formatFloat(axis))
	}
}

func writeFillable(w *bufio.Writer, f *fillableAttrs) {
	if width, set := f.LineWidth(); set {
		fmt.Fprintf(w, "linewidth %d\n", width)
	}
	if style, set := f.LineStyle(); set {
		fmt.Fprintf(w, "linestyle %s\n", style)
	}
	if c, set := f.LineColor(); set {
		fmt.Fprintf(w, "linecolor hex %s\n", c.HexString())
	}
	if filled, set := f.IsFilled(); set {
		fmt.Fprintf(w, "filled %t\n", filled)
	}
	if c, set := f.FillColor(); set {
		fmt.Fprintf(w, "fillcolor hex %s\n", c.HexString())
	}
	if outlined, set := f.IsOutlined(); set {
		fmt.Fprintf(w, "outline %t\n", outlined)
	}
}

func writePointBased(w *bufio.Writer, s Shape, pb *pointBasedAttrs) {
	for _, p := range pb.Points() {
		writePosition(w, positionKeyword(s), p, s.IsRelative())
	}
	if style, set := pb.Tessellation(); set {
		switch style {
		case TessellationNone:
			fmt.Fprintln(w, "tessellate false")
		case TessellationRhumbline:
			fmt.Fprintln(w, "tessellate true")
		case TessellationGreatCircle:
			fmt.Fprintln(w, "tessellate true")
			fmt.Fprintln(w, "lineprojection greatcircle")
		}
	}
	writeFillable(w, &pb.fillableAttrs)
}

func writeCenter(w *bufio.Writer, s Shape, pos calc.Vec3) {
	keyword := "centerlla"
	if s.IsRelative() {
		keyword = "centerxyz"
	}
	writePosition(w, keyword, pos, s.IsRelative())
}

func center2Keyword(s Shape) string {
	if s.IsRelative() {
		return "centerxyz2"
	}
	return "centerlla2"
}

func positionKeyword(s Shape) string {
	if s.IsRelative() {
		return "xyz"
	}
	return "lla"
}

// writePosition prints a position row. Geodetic positions go out in degrees
// since latitude and longitude are always read that way; relative offsets go
// out in meters under the meters directives.
func writePosition(w *bufio.Writer, keyword string, pos calc.Vec3, relative bool) {
	x, y := pos.X, pos.Y
	if !relative {
		x *= calc.RadToDeg
		y *= calc.RadToDeg
	}
	fmt.Fprintf(w, "%s %s %s %s\n", keyword, formatFloat(x), formatFloat(y), formatFloat(pos.Z))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
