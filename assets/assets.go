package assets

import (
	"embed"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/pathtrace/shared/leveldata"
)

//go:embed all:presets
var presetFS embed.FS

var (
	guides     *leveldata.GuideData
	guidesOnce sync.Once
)

// MustLoadGuides parses every embedded preset map. It panics if the embedded
// maps are broken since they ship with the binary.
func MustLoadGuides() *leveldata.GuideData {
	data, err := leveldata.LoadAllGuides(presetFS, "presets")
	if err != nil {
		panic(fmt.Sprintf("Failed to load preset paths: %v", err))
	}
	log.Printf("[assets] loaded %d preset path(s): %v", len(data.Names), data.Names)
	return data
}

// Guides returns the embedded presets, loading them on first use.
func Guides() *leveldata.GuideData {
	guidesOnce.Do(func() {
		guides = MustLoadGuides()
	})
	return guides
}
