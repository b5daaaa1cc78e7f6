package assets

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/tidwall/gjson"
)

//go:embed maps
var mapFS embed.FS

// Layer names with special meaning
const (
	LayerBoundaries  = "boundaries"
	LayerSpawnpoints = "spawnpoints"
	SpawnObjectName  = "player"
)

// MapObject is a named rectangle from an object layer, in map pixels.
type MapObject struct {
	Name   string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

type Layer struct {
	Name    string
	Objects []MapObject
}

// TileMap is the parsed form of a map descriptor. Layers are in source order.
type TileMap struct {
	ID         string
	Background string
	Layers     []Layer
	Width      int
	Height     int
}

// Layer returns the first layer with the given name.
func (m *TileMap) Layer(name string) (Layer, bool) {
	for _, l := range m.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// Boundaries returns every object of every "boundaries" layer.
func (m *TileMap) Boundaries() []MapObject {
	var out []MapObject
	for _, l := range m.Layers {
		if l.Name == LayerBoundaries {
			out = append(out, l.Objects...)
		}
	}
	return out
}

// SpawnPoint returns the last "player" object of the spawnpoints layers.
func (m *TileMap) SpawnPoint() (MapObject, bool) {
	var spawn MapObject
	found := false
	for _, l := range m.Layers {
		if l.Name != LayerSpawnpoints {
			continue
		}
		for _, o := range l.Objects {
			if o.Name == SpawnObjectName {
				spawn = o
				found = true
			}
		}
	}
	return spawn, found
}

type ParseErrorKind int

const (
	ParseUnresolvable ParseErrorKind = iota
	ParseMalformed
)

func (k ParseErrorKind) String() string {
	if k == ParseUnresolvable {
		return "unresolvable"
	}
	return "malformed"
}

// MapParseError is returned for any map descriptor that cannot be loaded.
type MapParseError struct {
	Kind ParseErrorKind
	Ref  string
	Err  error
}

func (e *MapParseError) Error() string {
	return fmt.Sprintf("map %s: %s: %v", e.Ref, e.Kind, e.Err)
}

func (e *MapParseError) Unwrap() error {
	return e.Err
}

var (
	errNoLayers          = errors.New("descriptor has no layers array")
	errInvalidJSON       = errors.New("descriptor is not valid JSON")
	errUnsupportedFormat = errors.New("unsupported map format")
)

// MapLoader reads map descriptors from a file system.
type MapLoader struct {
	fsys fs.FS
}

// NewMapLoader returns a loader reading from fsys.
func NewMapLoader(fsys fs.FS) *MapLoader {
	return &MapLoader{fsys: fsys}
}

// NewEmbeddedMapLoader returns a loader for the maps shipped with the binary.
func NewEmbeddedMapLoader() *MapLoader {
	sub, err := fs.Sub(mapFS, "maps")
	if err != nil {
		panic(err)
	}
	return NewMapLoader(sub)
}

// Load parses the descriptor at ref. It has no side effects and does not
// validate geometry.
func (l *MapLoader) Load(ctx context.Context, ref string) (*TileMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(l.fsys, ref)
	if err != nil {
		return nil, &MapParseError{Kind: ParseUnresolvable, Ref: ref, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var m *TileMap
	switch strings.ToLower(path.Ext(ref)) {
	case ".json", ".tmj":
		m, err = parseJSONMap(data)
	case ".tmx":
		m, err = l.parseTMXMap(ref, data)
	default:
		err = fmt.Errorf("%w: %q", errUnsupportedFormat, path.Ext(ref))
	}
	if err != nil {
		return nil, &MapParseError{Kind: ParseMalformed, Ref: ref, Err: err}
	}

	m.ID = ref
	return m, nil
}

func parseJSONMap(data []byte) (*TileMap, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidJSON
	}
	root := gjson.ParseBytes(data)
	layers := root.Get("layers")
	if !layers.IsArray() {
		return nil, errNoLayers
	}

	m := &TileMap{
		Width:  int(root.Get("width").Int() * root.Get("tilewidth").Int()),
		Height: int(root.Get("height").Int() * root.Get("tileheight").Int()),
	}
	collectJSONLayers(m, layers)
	return m, nil
}

// collectJSONLayers flattens group layers so nested object layers keep
// their source order.
func collectJSONLayers(m *TileMap, layers gjson.Result) {
	for _, l := range layers.Array() {
		switch l.Get("type").String() {
		case "group":
			collectJSONLayers(m, l.Get("layers"))
			continue
		case "imagelayer":
			if m.Background == "" {
				m.Background = l.Get("image").String()
			}
		}

		layer := Layer{Name: l.Get("name").String()}
		for _, o := range l.Get("objects").Array() {
			layer.Objects = append(layer.Objects, MapObject{
				Name:   o.Get("name").String(),
				X:      o.Get("x").Float(),
				Y:      o.Get("y").Float(),
				Width:  o.Get("width").Float(),
				Height: o.Get("height").Float(),
			})
		}
		m.Layers = append(m.Layers, layer)
	}
}

func (l *MapLoader) parseTMXMap(ref string, data []byte) (*TileMap, error) {
	tm, err := tiled.LoadReader(path.Dir(ref), bytes.NewReader(data), tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, err
	}

	m := &TileMap{
		Width:  tm.Width * tm.TileWidth,
		Height: tm.Height * tm.TileHeight,
	}
	collectTMXLayers(m, tm.ImageLayers, tm.ObjectGroups, tm.Groups)
	return m, nil
}

// collectTMXLayers flattens <group> layers the same way collectJSONLayers
// does. go-tiled keeps each layer kind in its own slice, so a group's
// object groups follow the ones declared beside it.
func collectTMXLayers(m *TileMap, images []*tiled.ImageLayer, objects []*tiled.ObjectGroup, groups []*tiled.Group) {
	for _, il := range images {
		if m.Background == "" && il.Image != nil && il.Image.Source != "" {
			m.Background = il.Image.Source
		}
	}
	for _, og := range objects {
		layer := Layer{Name: og.Name}
		for _, o := range og.Objects {
			layer.Objects = append(layer.Objects, MapObject{
				Name:   o.Name,
				X:      o.X,
				Y:      o.Y,
				Width:  o.Width,
				Height: o.Height,
			})
		}
		m.Layers = append(m.Layers, layer)
	}
	for _, g := range groups {
		collectTMXLayers(m, g.ImageLayers, g.ObjectGroups, g.Groups)
	}
}
