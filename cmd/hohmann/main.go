package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/klfontaine/hohmann"
)

var (
	fromKm   float64
	toKm     float64
	bodyName string
	asRadii  bool
	confPath string
	common   bool
)

func init() {
	// Read flags
	flag.Float64Var(&fromKm, "from", 400, "initial orbit altitude [km]")
	flag.Float64Var(&toKm, "to", 35786, "final orbit altitude [km]")
	flag.StringVar(&bodyName, "body", "Earth", "central body (preset or catalog name)")
	flag.BoolVar(&asRadii, "radii", false, "interpret -from and -to as radii from the body center")
	flag.StringVar(&confPath, "config", "", "directory containing a conf.toml body catalog")
	flag.BoolVar(&common, "common", false, "only print the common Earth transfers table")
}

func main() {
	flag.Parse()
	var catalog *hohmann.BodyCatalog
	if confPath != "" {
		var err error
		catalog, err = hohmann.LoadBodyCatalog(confPath)
		if err != nil {
			log.Fatalf("loading body catalog: %s", err)
		}
	}
	if common || flag.NFlag() == 0 {
		printCommonTransfers()
		if common {
			return
		}
		fmt.Println()
	}
	body, err := catalog.Lookup(bodyName)
	if err != nil {
		log.Fatalf("unknown body: %s", err)
	}
	build := hohmann.NewOrbitFromAltitude
	if asRadii {
		build = hohmann.NewOrbit
	}
	initOrbit, err := build(body, fromKm*1e3)
	if err != nil {
		log.Fatalf("initial orbit: %s", err)
	}
	finalOrbit, err := build(body, toKm*1e3)
	if err != nil {
		log.Fatalf("final orbit: %s", err)
	}
	xfer, err := hohmann.NewTransfer(initOrbit, finalOrbit)
	if err != nil {
		log.Fatalf("transfer: %s", err)
	}
	printSummary(xfer)
}

func printCommonTransfers() {
	fmt.Println("Common Earth orbit transfers")
	for _, it := range []struct {
		name         string
		initOf, tgtOf func(hohmann.Body) (hohmann.Orbit, error)
	}{
		{"LEO (400 km) -> GEO (35,786 km)", hohmann.LEO, hohmann.GEO},
		{"LEO (400 km) -> GPS (20,200 km)", hohmann.LEO, hohmann.GPS},
		{"ISS (420 km) -> GEO (35,786 km)", hohmann.ISS, hohmann.GEO},
	} {
		initOrbit, err := it.initOf(hohmann.Earth)
		if err != nil {
			log.Fatalf("%s: %s", it.name, err)
		}
		tgtOrbit, err := it.tgtOf(hohmann.Earth)
		if err != nil {
			log.Fatalf("%s: %s", it.name, err)
		}
		xfer, err := hohmann.NewTransfer(initOrbit, tgtOrbit)
		if err != nil {
			log.Fatalf("%s: %s", it.name, err)
		}
		fmt.Printf("%s:\n  total Δv: %.2f m/s\n  time:     %.2f hours\n", it.name, xfer.TotalDeltaV(), xfer.TransferTime().Hours())
	}
}

func printSummary(xfer hohmann.Transfer) {
	direction := "lowering"
	if xfer.IsRaising() {
		direction = "raising"
	}
	fmt.Printf("Central body: %s\n\n", xfer.InitialOrbit().Body().Name())
	printOrbit("Initial orbit", xfer.InitialOrbit())
	printOrbit("Final orbit", xfer.FinalOrbit())
	fmt.Printf("Transfer orbit (%s):\n  semi-major axis: %.0f km\n\n", direction, xfer.SemiMajorAxis()/1e3)
	fmt.Printf("Δv requirements:\n  first burn:  %.2f m/s\n  second burn: %.2f m/s\n  total:       %.2f m/s\n\n",
		xfer.DeltaV1(), xfer.DeltaV2(), xfer.TotalDeltaV())
	tof := xfer.TransferTime()
	if tof.Hours() < 24 {
		fmt.Printf("Transfer time: %.2f hours\n", tof.Hours())
	} else {
		fmt.Printf("Transfer time: %.2f days (%.2f hours)\n", tof.Hours()/24, tof.Hours())
	}
	fmt.Printf("Phase angle for rendezvous: %.2f°\n", hohmann.Rad2deg(xfer.PhaseAngle()))
}

func printOrbit(title string, orbit hohmann.Orbit) {
	fmt.Printf("%s:\n  radius:   %.0f km\n", title, orbit.Radius()/1e3)
	if alt, ok := orbit.Altitude(); ok {
		fmt.Printf("  altitude: %.0f km\n", alt/1e3)
	}
	fmt.Printf("  velocity: %.2f m/s\n  period:   %.2f hours\n\n", orbit.Velocity(), orbit.Period().Hours())
}
