// tmxtool is a CLI utility for inspecting Tiled TMX map files.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mapforge/tmx/internal/config"
	"github.com/mapforge/tmx/internal/logger"
	"github.com/mapforge/tmx/pkg/tmx"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(os.Getenv("TMXTOOL_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(cfg, args)
	case "tilesets":
		cmdTilesets(args)
	case "objects":
		cmdObjects(args)
	case "layers":
		cmdLayers(args)
	case "validate":
		cmdValidate(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tmxtool - Tiled TMX map inspection utility

Usage:
  tmxtool <command> [options]

Commands:
  info <file.tmx>       Show map summary (use -json for JSON output)
  tilesets <file.tmx>   List tilesets with their tile metadata
  objects <file.tmx>    List object groups and their objects
  layers <file.tmx>     List tile layers and cell usage
  validate <file.tmx>   Parse the map and report the first error

Examples:
  tmxtool info level1.tmx
  tmxtool info -json level1.tmx
  tmxtool objects level1.tmx`)
}

// loadMap parses the map at path, exiting on failure.
func loadMap(path string) *tmx.Map {
	m, err := tmx.ParseMapFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Sugar.Debugf("parsed %s: %d tilesets, %d layers, %d object groups",
		path, len(m.Tilesets), len(m.Layers), len(m.ObjectGroups))
	return m
}

func cmdInfo(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	asJSON := fs.Bool("json", cfg.Output.Format == "json", "emit JSON instead of text")
	fs.Parse(args)
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tmxtool info [-json] <file.tmx>")
		os.Exit(1)
	}

	m := loadMap(fs.Arg(0))

	if *asJSON {
		summary := struct {
			Version      string `json:"version"`
			Orientation  string `json:"orientation"`
			Width        uint32 `json:"width"`
			Height       uint32 `json:"height"`
			TileWidth    uint32 `json:"tile_width"`
			TileHeight   uint32 `json:"tile_height"`
			Tilesets     int    `json:"tilesets"`
			Layers       int    `json:"layers"`
			ObjectGroups int    `json:"object_groups"`
		}{
			Version:      m.Version,
			Orientation:  m.Orientation.String(),
			Width:        m.Width,
			Height:       m.Height,
			TileWidth:    m.TileWidth,
			TileHeight:   m.TileHeight,
			Tilesets:     len(m.Tilesets),
			Layers:       len(m.Layers),
			ObjectGroups: len(m.ObjectGroups),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", cfg.Output.Indent)
		if err := enc.Encode(summary); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Version:       %s\n", m.Version)
	fmt.Printf("Orientation:   %s\n", m.Orientation)
	fmt.Printf("Size:          %dx%d tiles (%dx%d px each)\n",
		m.Width, m.Height, m.TileWidth, m.TileHeight)
	fmt.Printf("Tilesets:      %d\n", len(m.Tilesets))
	fmt.Printf("Layers:        %d\n", len(m.Layers))
	fmt.Printf("Object groups: %d\n", len(m.ObjectGroups))
	if len(m.Properties) > 0 {
		fmt.Println("Properties:")
		for name, value := range m.Properties {
			fmt.Printf("  %s (%s) = %s\n", name, value.Kind, propertyString(value))
		}
	}
}

func cmdTilesets(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tmxtool tilesets <file.tmx>")
		os.Exit(1)
	}

	m := loadMap(args[0])
	for _, ts := range m.Tilesets {
		fmt.Printf("%s (firstgid %d, %dx%d px", ts.Name, ts.FirstGID, ts.TileWidth, ts.TileHeight)
		if ts.Spacing != 0 || ts.Margin != 0 {
			fmt.Printf(", spacing %d, margin %d", ts.Spacing, ts.Margin)
		}
		fmt.Println(")")
		for _, img := range ts.Images {
			fmt.Printf("  image %s (%dx%d)\n", img.Source, img.Width, img.Height)
		}
		for _, tile := range ts.Tiles {
			fmt.Printf("  tile %d", tile.ID)
			if len(tile.Properties) > 0 {
				fmt.Printf(" (%d properties)", len(tile.Properties))
			}
			fmt.Println()
		}
	}
}

func cmdObjects(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tmxtool objects <file.tmx>")
		os.Exit(1)
	}

	m := loadMap(args[0])
	for _, group := range m.ObjectGroups {
		fmt.Printf("group %q (%d objects)\n", group.Name, len(group.Objects))
		for _, obj := range group.Objects {
			fmt.Printf("  #%d %s at (%g,%g)", obj.ID, describeShape(obj.Shape), obj.X, obj.Y)
			if obj.Name != "" {
				fmt.Printf(" name=%q", obj.Name)
			}
			if obj.Type != "" {
				fmt.Printf(" type=%q", obj.Type)
			}
			if obj.GID != 0 {
				fmt.Printf(" gid=%d", obj.GID)
			}
			fmt.Println()
		}
	}
}

func cmdLayers(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tmxtool layers <file.tmx>")
		os.Exit(1)
	}

	m := loadMap(args[0])
	for _, layer := range m.Layers {
		used := 0
		for _, row := range layer.Tiles {
			for _, gid := range row {
				if gid != 0 {
					used++
				}
			}
		}
		total := int(m.Width * m.Height)
		fmt.Printf("%s: %d/%d cells used", layer.Name, used, total)
		if !layer.Visible {
			fmt.Print(" (hidden)")
		}
		if layer.Opacity != 1 {
			fmt.Printf(" (opacity %g)", layer.Opacity)
		}
		fmt.Println()
	}
}

func cmdValidate(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tmxtool validate <file.tmx>")
		os.Exit(1)
	}

	if _, err := tmx.ParseMapFile(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
		os.Exit(1)
	}
	fmt.Printf("%s: OK\n", args[0])
}

func describeShape(shape tmx.ObjectShape) string {
	switch shape.Kind {
	case tmx.ShapeRect:
		return fmt.Sprintf("rect %gx%g", shape.Width, shape.Height)
	case tmx.ShapeEllipse:
		return fmt.Sprintf("ellipse %gx%g", shape.Width, shape.Height)
	case tmx.ShapePolyline:
		return fmt.Sprintf("polyline (%d points)", len(shape.Points))
	case tmx.ShapePolygon:
		return fmt.Sprintf("polygon (%d points)", len(shape.Points))
	default:
		return shape.Kind.String()
	}
}

func propertyString(value tmx.PropertyValue) string {
	switch value.Kind {
	case tmx.PropertyBool:
		return fmt.Sprintf("%v", value.Bool)
	case tmx.PropertyInt:
		return fmt.Sprintf("%d", value.Int)
	case tmx.PropertyFloat:
		return fmt.Sprintf("%g", value.Float)
	case tmx.PropertyColour:
		return value.Colour.String()
	default:
		return value.String
	}
}
