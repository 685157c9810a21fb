// CLI inspector for floor-plan assets (no GUI dependencies).
package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"floorview/pkg/floorplan"
	"floorview/pkg/render"
	"floorview/pkg/scene"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "regions":
		if len(os.Args) < 3 {
			fmt.Println("Usage: floorview-cli regions <metadata.json>")
			os.Exit(1)
		}
		cmdRegions(os.Args[2])

	case "search":
		if len(os.Args) < 4 {
			fmt.Println("Usage: floorview-cli search <metadata.json> <query>")
			os.Exit(1)
		}
		cmdSearch(os.Args[2], strings.Join(os.Args[3:], " "))

	case "scene":
		if len(os.Args) < 3 {
			fmt.Println("Usage: floorview-cli scene <floor.svg>")
			os.Exit(1)
		}
		cmdScene(os.Args[2])

	case "render":
		if len(os.Args) < 3 {
			fmt.Println("Usage: floorview-cli render <floor.svg> [-o output.png] [-w width]")
			os.Exit(1)
		}
		cmdRender(os.Args[2:])

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`floorview-cli - inspect floor-plan viewer assets

Usage:
  floorview-cli <command> [arguments]

Commands:
  regions <metadata.json>          List region metadata records
  search <metadata.json> <query>   Rank regions against a search query
  scene <floor.svg>                Dump identified scene elements and bounds
  render <floor.svg> [options]     Rasterize a floor scene to PNG
    -o <output.png>                Output file (default: output.png)
    -w <width>                     Output width in pixels (default: 1024)

Examples:
  floorview-cli regions assets/metadata.json
  floorview-cli search assets/metadata.json lab
  floorview-cli scene assets/floor1.svg
  floorview-cli render assets/floor1.svg -o floor1.png -w 2048`)
}

func loadStore(path string) *floorplan.Store {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading metadata: %v\n", err)
		os.Exit(1)
	}
	store, err := floorplan.ParseMetadata(data)
	if err != nil {
		fmt.Printf("Error parsing metadata: %v\n", err)
		os.Exit(1)
	}
	return store
}

func cmdRegions(path string) {
	store := loadStore(path)

	fmt.Printf("File: %s\n", path)
	fmt.Printf("Regions: %d\n\n", store.Len())

	for _, r := range store.Regions() {
		line := fmt.Sprintf("%-12s %s", r.ID, r.DisplayName())
		if r.Floor != 0 {
			line += fmt.Sprintf("  [floor %d]", r.Floor)
		}
		if cats := r.Categories(); len(cats) > 0 {
			line += "  (" + strings.Join(cats, ", ") + ")"
		}
		if r.Decorative {
			line += "  decorative"
		}
		fmt.Println(line)
	}
}

func cmdSearch(path, query string) {
	store := loadStore(path)

	results := store.Suggest(query)
	if len(results) == 0 {
		fmt.Printf("No matches for %q\n", query)
		return
	}

	fmt.Printf("=== Matches for %q (%d) ===\n\n", query, len(results))
	for i, s := range results {
		fmt.Printf("%2d: %3d  %-12s %s\n", i+1, s.Score, s.ID, s.Name)
	}
}

func cmdScene(path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Error opening scene: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	doc, err := scene.Parse(f)
	if err != nil {
		fmt.Printf("Error parsing scene: %v\n", err)
		os.Exit(1)
	}

	cb := doc.ContentBounds()
	fmt.Printf("File: %s\n", path)
	fmt.Printf("Content bounds: %.1f,%.1f %.1fx%.1f\n\n", cb.X, cb.Y, cb.Width, cb.Height)

	for _, n := range doc.Nodes() {
		if n == doc.Root || n.ID == "" {
			continue
		}
		kind := "region"
		if scene.IsContainerID(n.ID) {
			kind = "container"
		}
		b := n.Bounds
		fmt.Printf("%-12s %-9s <%s>  %.1f,%.1f %.1fx%.1f\n",
			n.ID, kind, n.Tag, b.X, b.Y, b.Width, b.Height)
	}
}

func cmdRender(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: floorview-cli render <floor.svg> [-o output.png] [-w width]")
		os.Exit(1)
	}

	path := args[0]
	output := "output.png"
	width := 1024

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-o":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "-w":
			if i+1 < len(args) {
				width, _ = strconv.Atoi(args[i+1])
				i++
			}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading scene: %v\n", err)
		os.Exit(1)
	}

	doc, err := scene.Parse(strings.NewReader(string(data)))
	if err != nil {
		fmt.Printf("Error parsing scene: %v\n", err)
		os.Exit(1)
	}

	height := width
	if cb := doc.ContentBounds(); cb.Valid() {
		height = int(float64(width)*cb.Height/cb.Width + 0.5)
	}

	fmt.Printf("Rendering %s at %dx%d...\n", path, width, height)

	img, err := render.Document(data, width, height)
	if err != nil {
		fmt.Printf("Error rendering scene: %v\n", err)
		os.Exit(1)
	}

	dir := filepath.Dir(output)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	f, err := os.Create(output)
	if err != nil {
		fmt.Printf("Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		fmt.Printf("Error encoding PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %s (%dx%d pixels)\n", output, img.Bounds().Dx(), img.Bounds().Dy())
}
