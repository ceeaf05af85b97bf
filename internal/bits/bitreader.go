package bits

// BitReader hands out the bits of a byte slice from least significant to most
// significant, crossing byte boundaries as needed. It is the embed-side
// counterpart of the extraction core's packing order: bits read here one at a
// time and planted into channel LSBs come back out in the same order.
type BitReader struct {
	bytes         []byte
	currentBitIdx uint
}

func NewBitReader(bytes []byte) *BitReader {
	return &BitReader{
		bytes: bytes,
	}
}

func (br *BitReader) BytesLeftToRead() int {
	return len(br.bytes)
}

func (br *BitReader) BitsLeftToRead() int {
	if len(br.bytes) == 0 {
		return 0
	}
	return (len(br.bytes)-1)*8 + (8 - int(br.currentBitIdx))
}

// ReadBit returns the next bit, or 0 once the slice is exhausted.
func (br *BitReader) ReadBit() byte {
	if len(br.bytes) == 0 {
		return 0
	}
	bit := (br.bytes[0] >> br.currentBitIdx) & 1
	br.currentBitIdx++
	if br.currentBitIdx == 8 {
		br.bytes = br.bytes[1:]
		br.currentBitIdx = 0
	}
	return bit
}

// ReadBits packs the next bitsToRead bits (at most 8) into the low bits of the
// returned byte, first bit read in the lowest position. Reading past the end
// of the slice pads with zero bits.
func (br *BitReader) ReadBits(bitsToRead uint) (byteWithRequestedBits byte) {
	for numOfBitsRead := uint(0); numOfBitsRead < bitsToRead && len(br.bytes) > 0; numOfBitsRead++ {
		byteWithRequestedBits |= br.ReadBit() << numOfBitsRead
	}
	return byteWithRequestedBits
}

func (br *BitReader) Reset() {
	br.bytes = nil
	br.currentBitIdx = 0
}
