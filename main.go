package main

import (
	"fmt"
	"os"
	"path/filepath"

	"trayicons/icon"
	"trayicons/log"
)

// The four tray template icons the app ships: base and @2x resolution,
// each in a plain and an active (green status dot) variant.
var icons = []struct {
	name   string
	size   int
	active bool
}{
	{"tray_iconTemplate.png", 22, false},
	{"tray_iconTemplate@2x.png", 44, false},
	{"tray_icon_activeTemplate.png", 22, true},
	{"tray_icon_activeTemplate@2x.png", 44, true},
}

func generate(dir string) error {
	for _, ic := range icons {
		data, err := icon.EncodePNG(icon.Render(ic.size, ic.active))
		if err != nil {
			return fmt.Errorf("encode %s: %w", ic.name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, ic.name), data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", ic.name, err)
		}
		log.Icon(ic.name, ic.size, ic.active, len(data))
	}
	return nil
}

func main() {
	log.Init()
	defer log.Close()

	if err := generate("."); err != nil {
		log.Errorf("icon generation failed: %v", err)
		os.Exit(1)
	}
	fmt.Println("Icons generated successfully.")
}
