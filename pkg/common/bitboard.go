package common

import "math/bits"

const (
	FileAMask uint64 = 0x0101010101010101
	FileHMask        = FileAMask << 7
)

const DarkSquares = uint64(0xAA55AA55AA55AA55)

var (
	SquareMask  [64]uint64
	KingAttacks [64]uint64
)

func FirstOne(b uint64) int {
	return bits.TrailingZeros64(b)
}

func MoreThanOne(value uint64) bool {
	return value != 0 && ((value-1)&value) != 0
}

func Up(b uint64) uint64 {
	return b << 8
}

func Down(b uint64) uint64 {
	return b >> 8
}

func Right(b uint64) uint64 {
	return (b & ^FileHMask) << 1
}

func Left(b uint64) uint64 {
	return (b & ^FileAMask) >> 1
}

// KingZone lists the squares a king on sq can step to, clipped at the edges.
func KingZone(sq int) []int {
	var result = make([]int, 0, 8)
	for x := KingAttacks[sq]; x != 0; x &= x - 1 {
		result = append(result, FirstOne(x))
	}
	return result
}

func init() {
	for sq := 0; sq < 64; sq++ {
		var b = uint64(1) << uint(sq)
		SquareMask[sq] = b
		KingAttacks[sq] = Up(Left(b)|b|Right(b)) | Left(b) | Right(b) |
			Down(Left(b)|b|Right(b))
	}
}
