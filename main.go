package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/df07/go-optical-raytracer/pkg/scene"
	"github.com/df07/go-optical-raytracer/pkg/trace"
)

// Config holds all the configuration for the tracer
type Config struct {
	SceneType  string
	OutputDir  string
	NumWorkers int
	Preview    bool
	Help       bool
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	bench, err := createBench(config.SceneType)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Tracing %s...\n", bench.Name)
	rays, lines := bench.Trace(config.NumWorkers)
	fmt.Printf("Rays traced to the detector: %d (%d segments recorded)\n",
		rays.Len(), len(lines.Segments()))

	landed := bench.Expose(rays)
	fmt.Printf("Impacts on the detector: %d\n", landed)

	spots := trace.SpotSizes(rays.Rays())
	if mean, n := trace.MeanSpot(spots); n > 0 {
		fmt.Printf("spotsize x = %5.0fum, y = %5.0fum, z = %5.0fum (%d clusters)\n",
			2*mean.X*1e6, 2*mean.Y*1e6, 2*mean.Z*1e6, n)
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fitsPath := filepath.Join(config.OutputDir, bench.Name+".fits")
	if err := writeFITS(bench, fitsPath); err != nil {
		fmt.Printf("Error writing FITS file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Detector image saved as %s\n", fitsPath)

	if config.Preview {
		pngPath := filepath.Join(config.OutputDir, bench.Name+".png")
		if err := writePreview(bench, pngPath); err != nil {
			fmt.Printf("Error writing preview: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Preview saved as %s\n", pngPath)
	}
}

// parseFlags parses command line flags and returns configuration
func parseFlags() Config {
	var config Config

	flag.StringVar(&config.SceneType, "scene", "telescope", "Scene to trace: telescope, spectrograph")
	flag.StringVar(&config.OutputDir, "out", "output", "Output directory")
	flag.IntVar(&config.NumWorkers, "workers", 1, "Number of parallel trace workers (0 = all CPUs)")
	flag.BoolVar(&config.Preview, "png", false, "Also write a grayscale preview PNG")
	flag.BoolVar(&config.Help, "help", false, "Show help message")
	flag.Parse()

	return config
}

func createBench(sceneType string) (*scene.Bench, error) {
	switch sceneType {
	case "telescope":
		return scene.Telescope()
	case "spectrograph":
		return scene.Spectrograph()
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func writeFITS(bench *scene.Bench, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := bench.Detector.WriteFITS(f); err != nil {
		return err
	}
	return f.Close()
}

func writePreview(bench *scene.Bench, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := bench.Detector.WritePreviewPNG(f, 1024); err != nil {
		return err
	}
	return f.Close()
}

func showHelp() {
	fmt.Println("Optical Ray Tracer")
	fmt.Println("\nUsage: go-optical-raytracer [options]")
	fmt.Println("\nOptions:")
	flag.PrintDefaults()
	fmt.Println("\nExamples:")
	fmt.Println("  go-optical-raytracer -scene telescope -png")
	fmt.Println("  go-optical-raytracer -scene spectrograph -workers 0 -out /tmp/spectra")
}
