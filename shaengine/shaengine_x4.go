package shaengine

// X4 hashes four blocks that differ only in words 8 and 9 (the date code
// and time code) in lockstep, producing four digests. Every lane must equal
// the scalar Hash of the same block — control flow never depends on lane
// data, only the schedule expansion and round function, which are already
// branch-free.
type BlockX4 struct {
	// Shared holds the 16 words common to all four lanes (words 8 and 9
	// are overwritten per lane from DateCodes/TimeCodes below).
	Shared    Block
	DateCodes [4]uint32
	TimeCodes [4]uint32
}

// HashX4 computes four SHA-1 digests from a shared base block, varying only
// words 8 (date code) and 9 (time code) per lane.
func HashX4(bx BlockX4) [4]Digest {
	var blocks [4]Block
	for lane := 0; lane < 4; lane++ {
		blocks[lane] = bx.Shared
		blocks[lane][8] = bx.DateCodes[lane]
		blocks[lane][9] = bx.TimeCodes[lane]
	}

	var schedules [4][80]uint32
	for lane := 0; lane < 4; lane++ {
		schedules[lane] = schedule(blocks[lane])
	}

	var a, b, c, d, e [4]uint32
	for lane := 0; lane < 4; lane++ {
		a[lane], b[lane], c[lane], d[lane], e[lane] =
			initialState[0], initialState[1], initialState[2], initialState[3], initialState[4]
	}

	for t := 0; t < 80; t++ {
		var k uint32
		switch {
		case t < 20:
			k = 0x5A827999
		case t < 40:
			k = 0x6ED9EBA1
		case t < 60:
			k = 0x8F1BBCDC
		default:
			k = 0xCA62C1D6
		}
		for lane := 0; lane < 4; lane++ {
			var f uint32
			switch {
			case t < 20:
				f = (b[lane] & c[lane]) | (^b[lane] & d[lane])
			case t < 40:
				f = b[lane] ^ c[lane] ^ d[lane]
			case t < 60:
				f = (b[lane] & c[lane]) | (b[lane] & d[lane]) | (c[lane] & d[lane])
			default:
				f = b[lane] ^ c[lane] ^ d[lane]
			}
			temp := rotl(a[lane], 5) + f + e[lane] + k + schedules[lane][t]
			e[lane] = d[lane]
			d[lane] = c[lane]
			c[lane] = rotl(b[lane], 30)
			b[lane] = a[lane]
			a[lane] = temp
		}
	}

	var out [4]Digest
	for lane := 0; lane < 4; lane++ {
		out[lane] = Digest{
			initialState[0] + a[lane],
			initialState[1] + b[lane],
			initialState[2] + c[lane],
			initialState[3] + d[lane],
			initialState[4] + e[lane],
		}
	}
	return out
}
