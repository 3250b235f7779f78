// Package intset implements a polymorphic family of compact sets of
// non-negative integers (row-ids): a contiguous range, a sorted array, and a
// 32-bit-word bitmap, unified under the IntSet interface with cross-variant
// union, intersection, and equality.
package intset

import "math/bits"

// wordBits is the width of a single bitmap word.
const wordBits = 32

// inWord returns the word index that holds bit.
func inWord(bit int) int { return bit >> 5 }

// offset returns the bit's position within its word.
func offset(bit int) int { return bit & 31 }

// setBit returns word with bit pos (mod 32) set.
func setBit(pos int, word uint32) uint32 {
	return word | (uint32(1) << uint(pos&31))
}

// unsetBit returns word with bit pos (mod 32) cleared.
func unsetBit(pos int, word uint32) uint32 {
	return word &^ (uint32(1) << uint(pos&31))
}

// hasBit reports whether bit pos (mod 32) is set in word.
func hasBit(pos int, word uint32) bool {
	return word&(uint32(1)<<uint(pos&31)) != 0
}

// countBits returns the population count of word.
func countBits(word uint32) int {
	return bits.OnesCount32(word)
}

// minBit returns the position of the lowest set bit in word, or -1 if word
// is zero.
func minBit(word uint32) int {
	if word == 0 {
		return -1
	}
	return bits.TrailingZeros32(word)
}

// maxBit returns the position of the highest set bit in word, or -1 if word
// is zero.
func maxBit(word uint32) int {
	if word == 0 {
		return -1
	}
	return 31 - bits.LeadingZeros32(word)
}
