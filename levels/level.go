package levels

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/ledgehop/movement"
	"github.com/milk9111/ledgehop/physics"
	"gopkg.in/yaml.v3"
)

// Tile glyphs used in level rows.
const (
	TileEmpty  = '.'
	TileSolid  = '#'
	TileGround = '='
	TileWall   = '|'
	TileHazard = '^'
	TileSpawn  = 'P'
	TileGoal   = 'G'
)

var ErrNoSpawn = errors.New("levels: no spawn tile")

// Level is a tile map authored as text rows, row 0 at the top. One tile is
// one world unit; world Y points up from the bottom row.
type Level struct {
	Name  string   `yaml:"name"`
	Music string   `yaml:"music"`
	Rows  []string `yaml:"rows"`

	Width  int `yaml:"-"`
	Height int `yaml:"-"`

	grid   [][]byte
	spawnX int
	spawnY int
	goal   []physics.Rect
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.build(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// FromRows builds a level directly from rows.
func FromRows(rows ...string) (*Level, error) {
	lvl := &Level{Rows: rows}
	if err := lvl.build(); err != nil {
		return nil, err
	}
	return lvl, nil
}

func (l *Level) build() error {
	l.Height = len(l.Rows)
	l.Width = 0
	for _, r := range l.Rows {
		if len(r) > l.Width {
			l.Width = len(r)
		}
	}
	if l.Width == 0 || l.Height == 0 {
		return fmt.Errorf("invalid level dimensions: %dx%d", l.Width, l.Height)
	}

	l.grid = make([][]byte, l.Height)
	spawns := 0
	for y, r := range l.Rows {
		row := make([]byte, l.Width)
		for x := range row {
			row[x] = TileEmpty
			if x >= len(r) {
				continue
			}
			switch c := r[x]; c {
			case ' ', TileEmpty:
			case TileSolid, TileGround, TileWall, TileHazard:
				row[x] = c
			case TileSpawn:
				l.spawnX, l.spawnY = x, y
				spawns++
			case TileGoal:
				row[x] = c
			default:
				return fmt.Errorf("unknown tile %q at row %d col %d", c, y, x)
			}
		}
		l.grid[y] = row
	}
	if spawns == 0 {
		return ErrNoSpawn
	}
	if spawns > 1 {
		return fmt.Errorf("levels: %d spawn tiles, want 1", spawns)
	}
	l.goal = l.merge(func(c byte) bool { return c == TileGoal }, movement.LayerNone)
	return nil
}

func (l *Level) TileAt(x, y int) byte {
	if y < 0 || y >= l.Height || x < 0 || x >= l.Width {
		return TileEmpty
	}
	return l.grid[y][x]
}

// Colliders merges tiles into as few rectangles as possible, one pass per
// collision layer combination.
func (l *Level) Colliders() []physics.Rect {
	var out []physics.Rect
	out = append(out, l.merge(func(c byte) bool { return c == TileSolid }, movement.LayerGround|movement.LayerWall)...)
	out = append(out, l.merge(func(c byte) bool { return c == TileGround }, movement.LayerGround)...)
	out = append(out, l.merge(func(c byte) bool { return c == TileWall }, movement.LayerWall)...)
	out = append(out, l.merge(func(c byte) bool { return c == TileHazard }, movement.LayerHazard)...)
	return out
}

// Goals returns the merged goal areas. Reaching one completes the level.
func (l *Level) Goals() []physics.Rect {
	return l.goal
}

// Spawn is the center of the player's spawn tile bottom edge, in world units.
func (l *Level) Spawn() movement.Vec2 {
	return movement.Vec2{X: float64(l.spawnX) + 0.5, Y: float64(l.Height - 1 - l.spawnY)}
}

// Size is the level extent in world units.
func (l *Level) Size() (w, h float64) {
	return float64(l.Width), float64(l.Height)
}

func (l *Level) merge(match func(byte) bool, layer movement.LayerMask) []physics.Rect {
	width, height := l.Width, l.Height
	visited := make([]bool, width*height)
	index := func(x, y int) int { return y*width + x }
	filled := func(x, y int) bool { return !visited[index(x, y)] && match(l.grid[y][x]) }

	var out []physics.Rect
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !filled(x, y) {
				continue
			}

			maxW := 0
			for x2 := x; x2 < width && filled(x2, y); x2++ {
				maxW++
			}

			maxH := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+maxW; x2++ {
					if !filled(x2, y2) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				maxH++
			}

			for yy := y; yy < y+maxH; yy++ {
				for xx := x; xx < x+maxW; xx++ {
					visited[index(xx, yy)] = true
				}
			}

			out = append(out, physics.Rect{
				X:      float64(x),
				Y:      float64(height - (y + maxH)),
				Width:  float64(maxW),
				Height: float64(maxH),
				Layer:  layer,
			})
		}
	}
	return out
}

// String renders the level back to rows, mostly for debugging.
func (l *Level) String() string {
	var b strings.Builder
	for y, row := range l.grid {
		for x, c := range row {
			if x == l.spawnX && y == l.spawnY {
				c = TileSpawn
			}
			b.WriteByte(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
