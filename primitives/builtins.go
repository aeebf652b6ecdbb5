package primitives

func wrap(fn func() Primitive) Factory {
	return func(points []Point, color string) Primitive {
		p := fn()
		if color != "" {
			p.Data().Stroke = color
		}
		p.SetPoints(points)
		return p
	}
}

type builtin struct {
	typeID      string
	displayName string
	kind        Kind
	fn          func() Primitive
	text        bool
	levels      bool
	pointsCfg   bool
}

func registerBuiltins(r *Registry) {
	entries := []builtin{
		// Lines.
		{"trend_line", "Trend Line", KindLine, func() Primitive { return NewTrendLine("trend_line", "Trend Line", ExtendNone) }, true, false, false},
		{"ray", "Ray", KindLine, func() Primitive { return NewTrendLine("ray", "Ray", ExtendRight) }, true, false, false},
		{"extended_line", "Extended Line", KindLine, func() Primitive { return NewTrendLine("extended_line", "Extended Line", ExtendBoth) }, true, false, false},
		{"info_line", "Info Line", KindLine, func() Primitive {
			t := NewTrendLine("info_line", "Info Line", ExtendNone)
			t.ShowStats = true
			return t
		}, true, false, false},
		{"trend_angle", "Trend Angle", KindLine, func() Primitive {
			t := NewTrendLine("trend_angle", "Trend Angle", ExtendNone)
			t.ShowAngle = true
			return t
		}, true, false, false},
		{"horizontal_line", "Horizontal Line", KindLine, func() Primitive { return NewHorizontalLine("horizontal_line", "Horizontal Line", false) }, true, false, false},
		{"horizontal_ray", "Horizontal Ray", KindLine, func() Primitive { return NewHorizontalLine("horizontal_ray", "Horizontal Ray", true) }, true, false, false},
		{"vertical_line", "Vertical Line", KindLine, func() Primitive { return NewVerticalLine("vertical_line", "Vertical Line") }, true, false, false},
		{"cross_line", "Cross Line", KindLine, func() Primitive { return NewCrossLine("cross_line", "Cross Line") }, false, false, false},

		// Channels.
		{"parallel_channel", "Parallel Channel", KindChannel, func() Primitive { return NewChannel("parallel_channel", "Parallel Channel", 3, false) }, false, false, false},
		{"regression_trend", "Regression Trend", KindChannel, func() Primitive {
			c := NewChannel("regression_trend", "Regression Trend", 3, false)
			c.ShowMid = true
			return c
		}, false, false, false},
		{"flat_top_bottom", "Flat Top/Bottom", KindChannel, func() Primitive { return NewChannel("flat_top_bottom", "Flat Top/Bottom", 3, false) }, false, false, false},
		{"disjoint_channel", "Disjoint Channel", KindChannel, func() Primitive { return NewChannel("disjoint_channel", "Disjoint Channel", 4, true) }, false, false, false},

		// Shapes.
		{"rectangle", "Rectangle", KindShape, func() Primitive { return NewRectangle("rectangle", "Rectangle") }, true, false, false},
		{"rotated_rectangle", "Rotated Rectangle", KindShape, func() Primitive { return NewRectangle("rotated_rectangle", "Rotated Rectangle") }, true, false, false},
		{"circle", "Circle", KindShape, func() Primitive { return NewEllipseShape("circle", "Circle", true) }, false, false, false},
		{"ellipse", "Ellipse", KindShape, func() Primitive { return NewEllipseShape("ellipse", "Ellipse", false) }, false, false, false},
		{"triangle", "Triangle", KindShape, func() Primitive { return NewTriangle("triangle", "Triangle") }, false, false, false},
		{"arc", "Arc", KindShape, func() Primitive { return NewArcShape("arc", "Arc") }, false, false, false},
		{"polyline", "Polyline", KindShape, func() Primitive { return NewPolyline("polyline", "Polyline", false, false) }, false, false, true},
		{"path", "Path", KindShape, func() Primitive { return NewPolyline("path", "Path", false, true) }, false, false, true},
		{"curve", "Curve", KindShape, func() Primitive { return NewPolyline("curve", "Curve", true, false) }, false, false, true},
		{"double_curve", "Double Curve", KindShape, func() Primitive { return NewPolyline("double_curve", "Double Curve", true, false) }, false, false, true},

		// Fibonacci.
		{"fib_retracement", "Fib Retracement", KindFibonacci, func() Primitive { return NewFibRetracement("fib_retracement", "Fib Retracement", 2, DefaultFibLevels()) }, false, true, false},
		{"fib_trend_extension", "Fib Trend Extension", KindFibonacci, func() Primitive {
			return NewFibRetracement("fib_trend_extension", "Fib Trend Extension", 3, ExtendedFibLevels())
		}, false, true, false},
		{"fib_channel", "Fib Channel", KindFibonacci, func() Primitive {
			f := NewFibRetracement("fib_channel", "Fib Channel", 3, DefaultFibLevels())
			f.ExtendRight = true
			return f
		}, false, true, false},
		{"fib_time_zones", "Fib Time Zones", KindFibonacci, func() Primitive { return NewFibTimeZones("fib_time_zones", "Fib Time Zones", false) }, false, false, false},
		{"fib_trend_time", "Fib Trend Time", KindFibonacci, func() Primitive { return NewFibTimeZones("fib_trend_time", "Fib Trend Time", true) }, false, false, false},
		{"fib_speed_resistance", "Fib Speed Resistance", KindFibonacci, func() Primitive { return NewFibFan("fib_speed_resistance", "Fib Speed Resistance", false, true) }, false, true, false},
		{"fib_wedge", "Fib Wedge", KindFibonacci, func() Primitive { return NewFibFan("fib_wedge", "Fib Wedge", true, false) }, false, true, false},
		{"fib_fan", "Fib Fan", KindFibonacci, func() Primitive { return NewFibFan("fib_fan", "Fib Fan", false, false) }, false, true, false},
		{"fib_circles", "Fib Circles", KindFibonacci, func() Primitive { return NewFibCircles("fib_circles", "Fib Circles", false, false) }, false, true, false},
		{"fib_arcs", "Fib Arcs", KindFibonacci, func() Primitive { return NewFibCircles("fib_arcs", "Fib Arcs", true, false) }, false, true, false},
		{"fib_spiral", "Fib Spiral", KindFibonacci, func() Primitive { return NewFibCircles("fib_spiral", "Fib Spiral", false, true) }, false, false, false},

		// Gann.
		{"gann_box", "Gann Box", KindGann, func() Primitive { return NewGannBox("gann_box", "Gann Box", false) }, false, false, false},
		{"gann_square", "Gann Square", KindGann, func() Primitive { return NewGannBox("gann_square", "Gann Square", true) }, false, false, false},
		{"gann_square_fixed", "Gann Square Fixed", KindGann, func() Primitive { return NewGannBox("gann_square_fixed", "Gann Square Fixed", true) }, false, false, false},
		{"gann_fan", "Gann Fan", KindGann, func() Primitive { return NewGannFan("gann_fan", "Gann Fan") }, false, false, false},

		// Pitchforks.
		{"pitchfork", "Pitchfork", KindPitchfork, func() Primitive { return NewPitchfork("pitchfork", "Pitchfork", PitchforkStandard) }, false, false, false},
		{"schiff_pitchfork", "Schiff Pitchfork", KindPitchfork, func() Primitive { return NewPitchfork("schiff_pitchfork", "Schiff Pitchfork", PitchforkSchiff) }, false, false, false},
		{"modified_schiff_pitchfork", "Modified Schiff Pitchfork", KindPitchfork, func() Primitive {
			return NewPitchfork("modified_schiff_pitchfork", "Modified Schiff Pitchfork", PitchforkModifiedSchiff)
		}, false, false, false},
		{"inside_pitchfork", "Inside Pitchfork", KindPitchfork, func() Primitive { return NewPitchfork("inside_pitchfork", "Inside Pitchfork", PitchforkInside) }, false, false, false},

		// Patterns.
		{"xabcd_pattern", "XABCD Pattern", KindPattern, func() Primitive {
			return NewHarmonicPattern("xabcd_pattern", "XABCD Pattern", []string{"X", "A", "B", "C", "D"})
		}, false, false, false},
		{"cypher_pattern", "Cypher Pattern", KindPattern, func() Primitive {
			return NewHarmonicPattern("cypher_pattern", "Cypher Pattern", []string{"X", "A", "B", "C", "D"})
		}, false, false, false},
		{"abcd_pattern", "ABCD Pattern", KindPattern, func() Primitive {
			return NewHarmonicPattern("abcd_pattern", "ABCD Pattern", []string{"A", "B", "C", "D"})
		}, false, false, false},
		{"triangle_pattern", "Triangle Pattern", KindPattern, func() Primitive {
			return NewHarmonicPattern("triangle_pattern", "Triangle Pattern", []string{"A", "B", "C", "D"})
		}, false, false, false},
		{"three_drives", "Three Drives", KindPattern, func() Primitive {
			return NewHarmonicPattern("three_drives", "Three Drives", []string{"0", "1", "A", "2", "B", "3", "C"})
		}, false, false, false},
		{"head_shoulders", "Head and Shoulders", KindPattern, func() Primitive {
			return NewHarmonicPattern("head_shoulders", "Head and Shoulders", []string{"L", "S", "L", "H", "R", "S", "R"})
		}, false, false, false},

		// Elliott waves.
		{"elliott_impulse", "Elliott Impulse (12345)", KindElliott, func() Primitive {
			return NewElliottWave("elliott_impulse", "Elliott Impulse (12345)", []string{"0", "1", "2", "3", "4", "5"})
		}, false, false, false},
		{"elliott_correction", "Elliott Correction (ABC)", KindElliott, func() Primitive {
			return NewElliottWave("elliott_correction", "Elliott Correction (ABC)", []string{"0", "A", "B", "C"})
		}, false, false, false},
		{"elliott_triangle", "Elliott Triangle (ABCDE)", KindElliott, func() Primitive {
			return NewElliottWave("elliott_triangle", "Elliott Triangle (ABCDE)", []string{"0", "A", "B", "C", "D", "E"})
		}, false, false, false},
		{"elliott_double_combo", "Elliott Double Combo (WXY)", KindElliott, func() Primitive {
			return NewElliottWave("elliott_double_combo", "Elliott Double Combo (WXY)", []string{"0", "W", "X", "Y"})
		}, false, false, false},
		{"elliott_triple_combo", "Elliott Triple Combo (WXYXZ)", KindElliott, func() Primitive {
			return NewElliottWave("elliott_triple_combo", "Elliott Triple Combo (WXYXZ)", []string{"0", "W", "X", "Y", "X", "Z"})
		}, false, false, false},

		// Annotations.
		{"text", "Text", KindAnnotation, func() Primitive { return NewTextNote("text", "Text", false, false) }, true, false, false},
		{"anchored_text", "Anchored Text", KindAnnotation, func() Primitive { return NewTextNote("anchored_text", "Anchored Text", false, false) }, true, false, false},
		{"note", "Note", KindAnnotation, func() Primitive { return NewTextNote("note", "Note", true, false) }, true, false, false},
		{"comment", "Comment", KindAnnotation, func() Primitive { return NewTextNote("comment", "Comment", true, false) }, true, false, false},
		{"sign", "Sign", KindAnnotation, func() Primitive { return NewTextNote("sign", "Sign", true, false) }, true, false, false},
		{"signpost", "Signpost", KindAnnotation, func() Primitive { return NewTextNote("signpost", "Signpost", true, true) }, true, false, false},
		{"flag", "Flag", KindAnnotation, func() Primitive { return NewTextNote("flag", "Flag", true, true) }, true, false, false},
		{"callout", "Callout", KindAnnotation, func() Primitive { return NewCallout("callout", "Callout") }, true, false, false},
		{"price_label", "Price Label", KindAnnotation, func() Primitive { return NewPriceLabel("price_label", "Price Label", false) }, true, false, false},
		{"price_note", "Price Note", KindAnnotation, func() Primitive { return NewPriceLabel("price_note", "Price Note", true) }, true, false, false},
		{"table", "Table", KindAnnotation, func() Primitive { return NewTableNote("table", "Table") }, true, false, false},

		// Arrows.
		{"arrow_marker", "Arrow Marker", KindArrow, func() Primitive { return NewArrowMarker("arrow_marker", "Arrow Marker", ArrowUp) }, true, false, false},
		{"arrow_up", "Arrow Up", KindArrow, func() Primitive { return NewArrowMarker("arrow_up", "Arrow Up", ArrowUp) }, true, false, false},
		{"arrow_down", "Arrow Down", KindArrow, func() Primitive { return NewArrowMarker("arrow_down", "Arrow Down", ArrowDown) }, true, false, false},
		{"arrow_line", "Arrow", KindArrow, func() Primitive { return NewArrowLine("arrow_line", "Arrow") }, false, false, false},

		// Cycles.
		{"cycle_lines", "Cycle Lines", KindCycle, func() Primitive { return NewCycleLines("cycle_lines", "Cycle Lines") }, false, false, false},
		{"time_cycles", "Time Cycles", KindCycle, func() Primitive { return NewCycleLines("time_cycles", "Time Cycles") }, false, false, false},
		{"sine_wave", "Sine Wave", KindCycle, func() Primitive { return NewSineWave("sine_wave", "Sine Wave") }, false, false, false},

		// Projection.
		{"long_position", "Long Position", KindProjection, func() Primitive { return NewPositionTool("long_position", "Long Position", false) }, false, false, false},
		{"short_position", "Short Position", KindProjection, func() Primitive { return NewPositionTool("short_position", "Short Position", true) }, false, false, false},
		{"forecast", "Forecast", KindProjection, func() Primitive { return NewForecast("forecast", "Forecast", ForecastPath, 2) }, false, false, true},
		{"bars_pattern", "Bars Pattern", KindProjection, func() Primitive { return NewForecast("bars_pattern", "Bars Pattern", ForecastGhost, 2) }, false, false, false},
		{"price_projection", "Price Projection", KindProjection, func() Primitive { return NewForecast("price_projection", "Price Projection", ForecastMeasure, 2) }, false, false, false},
		{"projection", "Projection", KindProjection, func() Primitive { return NewForecast("projection", "Projection", ForecastZone, 3) }, false, false, false},

		// Volume.
		{"anchored_vwap", "Anchored VWAP", KindVolume, func() Primitive { return NewAnchoredVWAP("anchored_vwap", "Anchored VWAP") }, false, false, true},
		{"fixed_volume_profile", "Fixed Range Volume Profile", KindVolume, func() Primitive {
			return NewVolumeProfile("fixed_volume_profile", "Fixed Range Volume Profile")
		}, false, false, false},
		{"anchored_volume_profile", "Anchored Volume Profile", KindVolume, func() Primitive {
			return NewVolumeProfile("anchored_volume_profile", "Anchored Volume Profile")
		}, false, false, false},

		// Measurement.
		{"price_range", "Price Range", KindMeasurement, func() Primitive { return NewRangeMeasure("price_range", "Price Range", MeasurePrice) }, false, false, false},
		{"date_range", "Date Range", KindMeasurement, func() Primitive { return NewRangeMeasure("date_range", "Date Range", MeasureDate) }, false, false, false},
		{"price_date_range", "Price & Date Range", KindMeasurement, func() Primitive {
			return NewRangeMeasure("price_date_range", "Price & Date Range", MeasureBoth)
		}, false, false, false},

		// Brushes.
		{"brush", "Brush", KindBrush, func() Primitive { return NewBrush("brush", "Brush", false) }, false, false, true},
		{"highlighter", "Highlighter", KindBrush, func() Primitive { return NewBrush("highlighter", "Highlighter", true) }, false, false, true},

		// Icons.
		{"emoji", "Emoji", KindIcon, func() Primitive { return NewIconMark("emoji", "Emoji", "★") }, false, false, false},
		{"image", "Image", KindIcon, func() Primitive { return NewIconMark("image", "Image", "") }, false, false, false},

		// Events.
		{"crossover_event", "Crossover Event", KindEvent, func() Primitive { return NewEventMarker("crossover_event", "Crossover Event") }, true, false, false},
		{"breakdown_event", "Breakdown Event", KindEvent, func() Primitive { return NewEventMarker("breakdown_event", "Breakdown Event") }, true, false, false},
		{"divergence_event", "Divergence Event", KindEvent, func() Primitive { return NewEventMarker("divergence_event", "Divergence Event") }, true, false, false},
		{"pattern_match_event", "Pattern Match Event", KindEvent, func() Primitive { return NewEventMarker("pattern_match_event", "Pattern Match Event") }, true, false, false},
		{"zone_event", "Zone Event", KindEvent, func() Primitive { return NewEventMarker("zone_event", "Zone Event") }, true, false, false},
		{"volume_event", "Volume Event", KindEvent, func() Primitive { return NewEventMarker("volume_event", "Volume Event") }, true, false, false},
		{"trend_event", "Trend Event", KindEvent, func() Primitive { return NewEventMarker("trend_event", "Trend Event") }, true, false, false},
		{"momentum_event", "Momentum Event", KindEvent, func() Primitive { return NewEventMarker("momentum_event", "Momentum Event") }, true, false, false},
		{"custom_event", "Custom Event", KindEvent, func() Primitive { return NewEventMarker("custom_event", "Custom Event") }, true, false, false},
	}

	for _, e := range entries {
		meta := Metadata{
			TypeID:          e.typeID,
			DisplayName:     e.displayName,
			Kind:            e.kind,
			Factory:         wrap(e.fn),
			SupportsText:    e.text,
			HasLevels:       e.levels,
			HasPointsConfig: e.pointsCfg,
		}
		if err := r.Register(meta); err != nil {
			panic(err)
		}
	}
}
