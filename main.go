package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"asciisky/internal/catalog"
	"asciisky/internal/chart"
	"asciisky/internal/config"
	"asciisky/internal/debug"
	"asciisky/internal/healpix"
	"asciisky/internal/skyproj"
	"asciisky/internal/sphere"
	"asciisky/internal/ui"
)

func main() {
	// Parse command line flags
	help := flag.Bool("h", false, "Show help message")
	configPath := flag.String("c", "", "Config file (JSON); defaults apply when omitted")
	mapPath := flag.String("m", "", "Healpix map file (whitespace-separated RING values); demo map when omitted")
	debugLog := flag.String("d", "", "Debug log file (e.g., debug.log)")
	mjdFlag := flag.Float64("t", 0, "Observing time as MJD (default: now)")
	nsideFlag := flag.Int("n", 0, "Display nside override (power of two)")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("asciisky - Terminal-based multi-projection sky map viewer")
		fmt.Println("\nUsage: asciisky [options]")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// Set up debug logging if requested
	if *debugLog != "" {
		logFile, err := os.Create(*debugLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to create debug log: %v\n", err)
		} else {
			defer logFile.Close()
			debug.SetOutput(logFile)
			debug.Log().Msg("asciisky debug log started")
			fmt.Printf("Debug logging enabled: %s\n", *debugLog)
		}
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *nsideFlag > 0 {
		cfg.Display.Nside = *nsideFlag
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Observing time
	mjd := *mjdFlag
	if mjd == 0 {
		mjd = nowMJD()
	}

	site := sphere.Site{
		Name:         cfg.Site.Name,
		LatitudeDeg:  cfg.Site.LatitudeDeg,
		LongitudeDeg: cfg.Site.LongitudeDeg,
	}
	ctx := skyproj.NewContext(mjd, site)
	ctx.AltLimitDeg = cfg.Display.AltLimitDeg
	ctx.LaeaLimitDeg = cfg.Display.LaeaLimitDeg

	// Load or synthesize the sky map
	var values []float64
	if *mapPath != "" {
		fmt.Printf("Loading healpix map from %s...\n", *mapPath)
		values, err = catalog.LoadMapValues(*mapPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load map: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println("No map file given, showing a demo map")
		values = demoMap(cfg.Display.Nside)
	}

	// Assemble the chart
	skyChart := ui.NewSkyChart(ctx)
	if _, err := skyChart.AddHealpix(values, cfg.Display.Nside, cfg.Display.BoundStep); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build healpix table: %v\n", err)
		os.Exit(1)
	}
	skyChart.Decorate()
	skyChart.AddHorizonGraticules(chart.DefaultHorizonGraticuleSpec())
	skyChart.AddHorizonCircle()
	skyChart.AddSunMoon()

	if cfg.Catalog.StarShapefile != "" {
		fmt.Printf("Loading star catalog from %s...\n", cfg.Catalog.StarShapefile)
		stars, err := catalog.LoadStars(cfg.Catalog.StarShapefile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load stars: %v\n", err)
		} else if err := skyChart.AddStars(stars, cfg.Catalog.MagnitudeLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to add stars: %v\n", err)
		}
	}

	// Create and run application
	fmt.Printf("Starting asciisky (site: %s, mjd: %.5f, nside: %d)...\n",
		site.Name, mjd, cfg.Display.Nside)
	app, err := ui.NewApp(skyChart, cfg.Display.AspectRatio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create application: %v\n", err)
		os.Exit(1)
	}

	// Run with panic recovery to ensure terminal is always restored
	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "\nPanic: %v\n", r)
			}
		}()

		if err := app.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}()

	fmt.Println("\nGoodbye!")
}

// nowMJD converts the wall clock to a modified Julian date.
func nowMJD() float64 {
	const mjdUnixEpoch = 40587.0
	return mjdUnixEpoch + float64(time.Now().UnixMilli())/86400000.0
}

// demoMap synthesizes a smooth whole-sky map so the viewer has
// something to show without input data: a declination gradient with a
// bump toward the galactic center.
func demoMap(nside int) []float64 {
	npix := healpix.Npix(nside)
	values := make([]float64, npix)
	for pix := 0; pix < npix; pix++ {
		ra, decl := healpix.PixToAng(nside, pix, false)
		sep := sphere.AngularSeparation(ra, decl, 266.4, -28.9)
		values[pix] = decl/90 + 2/(1+sep/30)
	}
	return values
}
