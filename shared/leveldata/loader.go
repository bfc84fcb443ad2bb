package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	GroundGroup = "Ground"
	SpawnGroup  = "NinjaSpawn"
)

var (
	ErrNoGround = errors.New("level has no ground")
	ErrNoSpawn  = errors.New("level has no ninja spawn")
)

// Load parses a TMX file. It takes an fs.FS so callers can pass the embedded
// assets or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroundGroup:
			for _, o := range og.Objects {
				lvl.Floors = append(lvl.Floors, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case SpawnGroup:
			if len(og.Objects) > 0 && !spawnFound {
				o := og.Objects[0]
				lvl.Spawn = Point{X: o.X, Y: o.Y}
				spawnFound = true
			}
		}
	}

	if len(lvl.Floors) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoGround, tmxPath)
	}
	if !spawnFound {
		return nil, fmt.Errorf("%w: %s", ErrNoSpawn, tmxPath)
	}

	// Left to right so Floor() is deterministic
	sort.Slice(lvl.Floors, func(i, j int) bool {
		return lvl.Floors[i].X < lvl.Floors[j].X
	})
	return lvl, nil
}

// LoadAll loads every .tmx file in dir, keyed by file stem, plus the sorted
// list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		lvl, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[lvl.Name] = lvl
		names = append(names, lvl.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
