package octree

import (
	"math/bits"

	"github.com/oak-spatial/octree/internal/arena"
)

// octants holds the eight child handles of a Split node plus a presence
// mask, adapted from the teacher's 256-bit presence bitmap narrowed to
// the 8 octants a Split ever has. A single byte mask is enough here (no
// need for the four-word bitfield256 the teacher used for a 256-wide
// ART node), and storing the mask alongside the handles lets removal
// find "the one surviving child" by a trailing-zeros count on the mask
// instead of a linear scan for the first non-None slot.
type octants struct {
	present uint8
	handles [8]arena.Handle
}

func (o *octants) get(i uint8) arena.Handle {
	if o.present&(1<<i) == 0 {
		return arena.None
	}
	return o.handles[i]
}

func (o *octants) set(i uint8, h arena.Handle) {
	o.present |= 1 << i
	o.handles[i] = h
}

func (o *octants) clear(i uint8) {
	o.present &^= 1 << i
	o.handles[i] = arena.None
}

func (o *octants) count() uint8 {
	return uint8(bits.OnesCount8(o.present))
}

// soleSurvivor returns the handle and octant index of the only present
// child other than except, used when a Split's occupancy drops to 1
// during removal. The caller must ensure exactly one such child exists.
func (o *octants) soleSurvivor(except uint8) (arena.Handle, uint8) {
	mask := o.present &^ (1 << except)
	i := uint8(bits.TrailingZeros8(mask))
	return o.handles[i], i
}

// firstPresent returns any one present child, used when walking down to
// find a representative point for a collapsed Split.
func (o *octants) firstPresent() (arena.Handle, bool) {
	if o.present == 0 {
		return arena.None, false
	}
	i := uint8(bits.TrailingZeros8(o.present))
	return o.handles[i], true
}
