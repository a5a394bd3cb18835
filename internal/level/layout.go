// internal/level/layout.go
package level

import (
	"fmt"
	"os"
)

// DefaultLayout — карта этапа 26x26.
// '#' кирпич, 'S' сталь, 'W' вода, 'F' лес, 'I' лёд, 'B' база, '.' пусто.
const DefaultLayout = `
..........................
....##..............##....
....##....WWWW....##......
..####....WWWW....####....
..#..#............#..#....
..#..#...FFFF...##..#.....
......S..FFFF..S..........
..####............####....
..####..######..####......
......#..W..W..#..........
..S...#..W..W..#...S......
..S...#..W..W..#...S......
......#........#..........
..####....SS....####......
..####............####....
......##.FFFF.##..........
..S.....FFFF.....S........
..S....######....S........
......##....##............
..####..............####..
..####..######..####......
..........................
.........######...........
.........#....#...........
.........#....#...........
...........BB.............
`

// LoadLayout читает карту из файла или возвращает встроенную.
func LoadLayout(path string) ([]string, error) {
	if path == "" {
		return ParseLayout(DefaultLayout), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: failed to read layout %s: %w", path, err)
	}
	return ParseLayout(string(data)), nil
}
