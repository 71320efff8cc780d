package scene

import (
	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/geom"
)

// split returns the offset of the index-th of count equal slots along length.
func split(length float64, count, index int) float64 {
	if count <= 0 {
		return 0
	}
	return float64(index) * length / float64(count)
}

// MakeBlocks lays out a cols x rows grid of blocks inside area. Each block
// has the given size and is placed at the start of its slot, so blocks
// narrower than their slot leave gaps. The top hardRows rows take two hits.
// Colors alternate by column and row. IDs are left zero for the arena to
// assign.
func MakeBlocks(area geom.Rect, cols, rows int, size geom.Point, hardRows, points int) []Object {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	blocks := make([]Object, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			hp := 1
			if y < hardRows {
				hp = 2
			}
			blocks = append(blocks, Object{
				Kind: KindBlock,
				Rect: geom.NewRect(
					area.X+split(area.W, cols, x),
					area.Y+split(area.H, rows, y),
					size.X, size.Y,
				),
				HP:     hp,
				Points: points * hp,
				Color:  blockColor(x, y),
			})
		}
	}
	return blocks
}

// blocksFromConfig builds the configured block grid.
func blocksFromConfig(cfg config.BlocksConfig) []Object {
	area := geom.NewRect(cfg.AreaX, cfg.AreaY, cfg.AreaW, cfg.AreaH)
	return MakeBlocks(area, cfg.Columns, cfg.Rows, geom.Pt(cfg.Width, cfg.Height), cfg.HardRows, cfg.Points)
}

// blockColor picks a palette entry per row and dims every other column.
func blockColor(col, row int) core.Color {
	c := core.BlockPalette[row%len(core.BlockPalette)]
	if col%2 == 1 {
		return c.Dim()
	}
	return c
}
