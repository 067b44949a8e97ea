package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/ivlev/splatcam/internal/batch"
	"github.com/ivlev/splatcam/internal/config"
	"github.com/ivlev/splatcam/internal/engine"
	"github.com/ivlev/splatcam/internal/system"
)

func main() {
	if err := system.EnsureDirs("batch", "output"); err != nil {
		log.Fatalf("[-] Error: %v", err)
	}

	defaults := config.Default()

	animationType := flag.String("animation-type", defaults.AnimationType, "Animation type: circular, spiral")
	direction := flag.String("direction", defaults.Direction, "Orbit direction: clockwise, counterclockwise")
	cameraName := flag.String("camera-name", defaults.CameraName, "Camera name written into the record")

	center := flag.String("center", "0,0,0", "Center coordinates (x,y,z)")
	target := flag.String("target", "", "Fixed target coordinates (x,y,z)")
	targetDistance := flag.Float64("target-distance", 0, "Place the target at this distance from the camera, toward the center")

	radius := flag.Float64("radius", defaults.Radius, "Radius for circular animation")

	startRadius := flag.Float64("start-radius", defaults.StartRadius, "Starting radius for spiral animation")
	endRadius := flag.Float64("end-radius", defaults.EndRadius, "Ending radius for spiral animation")
	startHeight := flag.Float64("start-height", defaults.StartHeight, "Starting height for spiral animation")
	endHeight := flag.Float64("end-height", defaults.EndHeight, "Ending height for spiral animation")
	spiralLoops := flag.Float64("spiral-loops", defaults.SpiralLoops, "Number of loops for spiral animation")

	frames := flag.Int("frames", defaults.Frames, "Number of animation frames")
	fps := flag.Int("fps", defaults.FPS, "Frames per second")
	focalLength := flag.Float64("focal-length", defaults.FocalLength, "Camera focal length in mm")
	sensorSize := flag.Float64("sensor-size", defaults.SensorSize, "Camera sensor width in mm (32=standard, 36=full-frame)")

	convertCoords := flag.Bool("convert-coords", false, "Convert from Blender Z-up to SuperSplat Y-up coordinates")
	precision := flag.Int("precision", defaults.Precision, "Decimal precision for coordinates (1-14)")
	keyframeStep := flag.Int("keyframe-step", defaults.KeyframeStep, "Generate keyframes every N frames (last frame always kept)")

	output := flag.String("output", "", "Output JSON path (if empty, generated automatically in output/)")
	preview := flag.String("preview", "", "Optional top-down trajectory preview (WebP path)")
	preset := flag.String("preset", "", "Parameter preset: "+strings.Join(config.PresetNames(), ", "))
	configPath := flag.String("config", "", "Load parameters from a YAML config file")
	saveConfig := flag.String("save-config", "", "Save the effective parameters to a YAML config file")

	batchPath := flag.String("batch", "", "Run all jobs from a batch YAML file (use 'latest' for the newest file in batch/)")
	workers := flag.Int("workers", 0, "Batch worker count (0 = automatic)")

	flag.Parse()

	if *batchPath != "" {
		runBatch(*batchPath, *workers)
		return
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[-] Failed to load config: %v", err)
		}
		cfg = *loaded
		fmt.Printf("[*] Loaded config: %s\n", *configPath)
	}
	if *preset != "" {
		if err := cfg.ApplyPreset(*preset); err != nil {
			log.Fatalf("[-] %v", err)
		}
		fmt.Printf("[*] Applied preset: %s\n", *preset)
	}

	// Explicit flags win over config file and preset values.
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "animation-type":
			cfg.AnimationType = *animationType
		case "direction":
			cfg.Direction = *direction
		case "camera-name":
			cfg.CameraName = *cameraName
		case "center":
			coords, err := config.ParseCoordinates(*center)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Center = coords
		case "target":
			coords, err := config.ParseCoordinates(*target)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Target = &coords
			cfg.TargetDistance = nil
		case "target-distance":
			d := *targetDistance
			cfg.TargetDistance = &d
			cfg.Target = nil
		case "radius":
			cfg.Radius = *radius
		case "start-radius":
			cfg.StartRadius = *startRadius
		case "end-radius":
			cfg.EndRadius = *endRadius
		case "start-height":
			cfg.StartHeight = *startHeight
		case "end-height":
			cfg.EndHeight = *endHeight
		case "spiral-loops":
			cfg.SpiralLoops = *spiralLoops
		case "frames":
			cfg.Frames = *frames
		case "fps":
			cfg.FPS = *fps
		case "focal-length":
			cfg.FocalLength = *focalLength
		case "sensor-size":
			cfg.SensorSize = *sensorSize
		case "convert-coords":
			cfg.ConvertCoords = *convertCoords
		case "precision":
			cfg.Precision = *precision
		case "keyframe-step":
			cfg.KeyframeStep = *keyframeStep
		case "output":
			cfg.Output = *output
		case "preview":
			cfg.Preview = *preview
		}
	})
	if flagErr != nil {
		log.Fatalf("[-] %v", flagErr)
	}

	if cfg.Output == "" {
		cfg.Output = system.GenerateOutputPath("output", cfg.AnimationType)
	}

	if *saveConfig != "" {
		if err := config.Save(&cfg, *saveConfig); err != nil {
			log.Fatalf("[-] Failed to save config: %v", err)
		}
		fmt.Printf("[*] Saved config: %s\n", *saveConfig)
	}

	anim, err := engine.NewProject(&cfg).Run()
	if err != nil {
		if errors.Is(err, config.ErrInvalid) {
			log.Fatalf("[-] Configuration error: %v", err)
		}
		log.Fatalf("[-] Error: %v", err)
	}

	fmt.Printf("[+++] Success! Camera animation written to %s\n", cfg.Output)
	fmt.Printf("[+] Type: %s (%s)\n", cfg.AnimationType, cfg.Direction)
	fmt.Printf("[+] Frames: %d (%.1f seconds at %d FPS)\n", cfg.Frames, float64(cfg.Frames)/float64(cfg.FPS), cfg.FPS)
	fmt.Printf("[+] Keyframes: %d (every %d frame(s))\n", anim.KeyframesGenerated, cfg.KeyframeStep)
	fmt.Printf("[+] Coordinate system: %s\n", anim.CoordinateSystem)
	if cfg.Preview != "" {
		fmt.Printf("[+] Preview: %s\n", cfg.Preview)
	}
}

func runBatch(path string, workers int) {
	if path == "latest" {
		latest, err := system.FindLatestBatch("batch")
		if err != nil {
			log.Fatalf("[-] Error: %v. Put a batch YAML file in batch/", err)
		}
		path = latest
		fmt.Printf("[*] Selected batch file: %s\n", path)
	}

	spec, err := batch.Load(path)
	if err != nil {
		log.Fatalf("[-] Failed to load batch file: %v", err)
	}

	fmt.Printf("[*] Running %d job(s)\n", len(spec.Jobs))

	results, err := batch.Run(spec, workers)
	if err != nil {
		log.Fatalf("[-] Batch error: %v", err)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Printf("[!] %s: %v\n", res.Name, res.Err)
			continue
		}
		fmt.Printf("[+] %s: %d keyframes -> %s (%.2fs)\n", res.Name, res.Keyframes, res.Output, res.Elapsed.Seconds())
	}

	if failed > 0 {
		log.Fatalf("[-] Batch finished with %d of %d job(s) failed", failed, len(results))
	}
	fmt.Printf("[+++] Success! All %d job(s) finished\n", len(results))
}
