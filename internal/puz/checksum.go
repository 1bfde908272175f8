package puz

import "math/bits"

// Checksum folds data into seed: each byte first rotates the running value
// right by one bit, then adds the byte modulo 2^16. Feeding the result of one
// call as the seed of the next is the same as checksumming the concatenation.
func Checksum(data []byte, seed uint16) uint16 {
	for _, b := range data {
		seed = bits.RotateLeft16(seed, -1) + uint16(b)
	}
	return seed
}
