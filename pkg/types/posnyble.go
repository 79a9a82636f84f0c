// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// POSNyble packs up to four POSId values (one byte each) into a uint32, the
// first id in the lowest byte.
type POSNyble = uint32

// PackPOS packs ps into a POSNyble. Only the first four ids are kept.
func PackPOS(ps []POSId) POSNyble {
	var n POSNyble
	for i, p := range ps {
		if i > 3 {
			break
		}
		n |= POSNyble(p) << (8 * uint(i))
	}
	return n
}

// UnpackPOS returns the ids packed in n, stopping at the first zero byte.
func UnpackPOS(n POSNyble) []POSId {
	if n == 0 {
		return nil
	}

	ps := make([]POSId, 0, 4)
	for i := 0; i < 4; i++ {
		p := POSId(n >> (8 * uint(i)))
		if p == 0 {
			break
		}
		ps = append(ps, p)
	}
	return ps
}
