package affine

import (
	"fmt"

	"github.com/katalvlaran/zigen/glyph"
)

// Reorder interleaves the strokes of parts. Each block takes Strokes
// strokes (0 means all remaining) off the front of part Index. Strokes no
// block consumed are appended afterwards in part order. An empty order
// concatenates the parts.
func Reorder(parts [][]glyph.Stroke, order []glyph.Block) ([]glyph.Stroke, error) {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]glyph.Stroke, 0, total)
	next := make([]int, len(parts))

	for i, b := range order {
		if b.Index < 0 || b.Index >= len(parts) {
			return nil, fmt.Errorf("%w: block %d refers to operand %d of %d", ErrBadOrder, i, b.Index, len(parts))
		}
		rest := len(parts[b.Index]) - next[b.Index]
		take := b.Strokes
		if take == 0 {
			take = rest
		}
		if take < 0 || take > rest {
			return nil, fmt.Errorf("%w: block %d takes %d strokes, operand %d has %d left", ErrBadOrder, i, b.Strokes, b.Index, rest)
		}
		out = append(out, parts[b.Index][next[b.Index]:next[b.Index]+take]...)
		next[b.Index] += take
	}
	for k, p := range parts {
		out = append(out, p[next[k]:]...)
	}
	return out, nil
}
