package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

// LoadGuidePaths parses a TMX file and returns the polylines of its Paths
// object group. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
// Polylines with fewer than two points are skipped.
func LoadGuidePaths(fsys fs.FS, tmxPath string) (*GuideData, error) {
	guideMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &GuideData{
		Paths:     make(map[string]GuidePath),
		MapWidth:  guideMap.Width * guideMap.TileWidth,
		MapHeight: guideMap.Height * guideMap.TileHeight,
	}

	for _, og := range guideMap.ObjectGroups {
		if og.Name != PathsGroup {
			continue
		}
		for _, o := range og.Objects {
			if len(o.PolyLines) == 0 {
				continue
			}
			// Use the first polyline if multiple polylines exist
			polyline := o.PolyLines[0]
			if polyline.Points == nil || len(*polyline.Points) < 2 {
				continue
			}
			points := make([]math.Vec2, len(*polyline.Points))
			for i, point := range *polyline.Points {
				points[i] = math.Vec2{
					X: o.X + point.X,
					Y: o.Y + point.Y,
				}
			}
			name := o.Name
			if name == "" {
				name = fmt.Sprintf("path-%d", o.ID)
			}
			if _, dup := data.Paths[name]; !dup {
				data.Names = append(data.Names, name)
			}
			data.Paths[name] = GuidePath{Name: name, Points: points}
		}
	}

	sort.Strings(data.Names)
	return data, nil
}

// LoadAllGuides discovers all .tmx files in dir within fsys and merges their
// paths. Later files win on name clashes; files are read in lexical order.
func LoadAllGuides(fsys fs.FS, dir string) (*GuideData, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}
	sort.Strings(matches)

	merged := &GuideData{Paths: make(map[string]GuidePath)}
	for _, path := range matches {
		data, err := LoadGuidePaths(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
		}
		for name, p := range data.Paths {
			merged.Paths[name] = p
		}
		merged.MapWidth = max(merged.MapWidth, data.MapWidth)
		merged.MapHeight = max(merged.MapHeight, data.MapHeight)
	}

	for name := range merged.Paths {
		merged.Names = append(merged.Names, name)
	}
	sort.Strings(merged.Names)
	return merged, nil
}

// Lookup returns the named path. The ".tmx" suffix and surrounding space are
// ignored so flag values can be passed as typed.
func (g *GuideData) Lookup(name string) (GuidePath, bool) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".tmx")
	p, ok := g.Paths[name]
	return p, ok
}
