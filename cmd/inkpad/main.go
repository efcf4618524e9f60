package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"inkpad/internal/gui"
	"inkpad/pkg/api"
	"inkpad/pkg/shape"
)

func main() {
	if len(os.Args) < 2 {
		cmdGUI(nil)
		return
	}

	command := os.Args[1]

	switch command {
	case "info":
		if len(os.Args) < 3 {
			fmt.Println("Usage: inkpad info <file.shapes>")
			os.Exit(1)
		}
		cmdInfo(os.Args[2])

	case "check":
		if len(os.Args) < 3 {
			fmt.Println("Usage: inkpad check <file.shapes>")
			os.Exit(1)
		}
		cmdCheck(os.Args[2])

	case "render":
		if len(os.Args) < 3 {
			fmt.Println("Usage: inkpad render <file.shapes> [-o output.png] [-size WxH] [-zoom factor]")
			os.Exit(1)
		}
		cmdRender(os.Args[2:])

	case "gui":
		if len(os.Args) < 3 {
			cmdGUI(nil)
		} else {
			cmdGUI(os.Args[2:])
		}

	case "help", "-h", "--help":
		printUsage()

	default:
		// If it looks like a drawing file, open it in the editor
		if strings.HasSuffix(strings.ToLower(os.Args[1]), ".shapes") {
			cmdGUI(os.Args[1:])
		} else {
			fmt.Printf("Unknown command: %s\n", command)
			printUsage()
			os.Exit(1)
		}
	}
}

func printUsage() {
	fmt.Println(`inkpad - a vector shape editor

Usage:
  inkpad [command] [arguments]

Commands:
  info <file.shapes>             Show drawing statistics
  check <file.shapes>            Validate a drawing file
  render <file.shapes> [options] Render a drawing to an image
    -o <output.png>              Output file (default: output.png)
    -size <WxH>                  Surface size in pixels (default: 800x800)
    -zoom <factor>               Zoom factor (default: 1.0)
  gui [file.shapes]              Open the editor
  <file.shapes>                  Open a drawing in the editor (shortcut)

Examples:
  inkpad info drawing.shapes
  inkpad render drawing.shapes -o drawing.png -size 1600x1600 -zoom 0.5
  inkpad drawing.shapes`)
}

func cmdInfo(path string) {
	d, err := api.Open(path)
	if err != nil {
		fmt.Printf("Error opening drawing: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File: %s\n", path)
	fmt.Println("────────────────────────────────────────")
	fmt.Printf("Shapes: %d\n", d.ShapeCount())

	lines, triangles, polygons := 0, 0, 0
	for i := 0; i < d.ShapeCount(); i++ {
		switch d.Shape(i).(type) {
		case *shape.Line:
			lines++
		case *shape.Triangle:
			triangles++
		case *shape.Polygon:
			polygons++
		}
	}
	fmt.Printf("  Lines:     %d\n", lines)
	fmt.Printf("  Triangles: %d\n", triangles)
	fmt.Printf("  Polygons:  %d\n", polygons)

	if minX, minY, maxX, maxY, ok := drawingBounds(d); ok {
		fmt.Printf("Bounds: [%g, %g] x [%g, %g]\n", minX, maxX, minY, maxY)
	}
}

// drawingBounds returns the model-space bounding box over every vertex.
func drawingBounds(d *api.Drawing) (minX, minY, maxX, maxY float64, ok bool) {
	for i := 0; i < d.ShapeCount(); i++ {
		s := d.Shape(i)
		for j := 0; j < s.VertexCount(); j++ {
			v := s.Vertex(j)
			if !ok {
				minX, maxX = v.X(), v.X()
				minY, maxY = v.Y(), v.Y()
				ok = true
				continue
			}
			minX = math.Min(minX, v.X())
			maxX = math.Max(maxX, v.X())
			minY = math.Min(minY, v.Y())
			maxY = math.Max(maxY, v.Y())
		}
	}
	return
}

func cmdCheck(path string) {
	d, err := api.Open(path)
	if err != nil {
		fmt.Printf("%s: INVALID\n  %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("%s: OK (%d shapes)\n", path, d.ShapeCount())
}

func cmdRender(args []string) {
	path, output, width, height, zoom := parseRenderArgs(args)

	d, err := api.Open(path)
	if err != nil {
		fmt.Printf("Error opening drawing: %v\n", err)
		os.Exit(1)
	}

	opts := api.NewRenderOptions(api.Size(width, height), api.Zoom(zoom))
	if err := d.Export(output, opts); err != nil {
		fmt.Printf("Error rendering drawing: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %s (%dx%d pixels, %d shapes)\n", output, width, height, d.ShapeCount())
}

func parseRenderArgs(args []string) (path, output string, width, height int, zoom float64) {
	path = args[0]
	output = "output.png"
	width, height = 800, 800
	zoom = 1.0

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-o":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "-size":
			if i+1 < len(args) {
				if _, err := fmt.Sscanf(args[i+1], "%dx%d", &width, &height); err != nil {
					fmt.Printf("Invalid size %q, want WxH\n", args[i+1])
					os.Exit(1)
				}
				i++
			}
		case "-zoom":
			if i+1 < len(args) {
				if _, err := fmt.Sscanf(args[i+1], "%f", &zoom); err != nil || zoom <= 0 {
					fmt.Printf("Invalid zoom %q\n", args[i+1])
					os.Exit(1)
				}
				i++
			}
		}
	}
	return
}

func cmdGUI(args []string) {
	app := gui.NewApp()

	if len(args) > 0 {
		app.RunWithFile(args[0])
	} else {
		app.Run()
	}
}
