package cstruct

import (
	"encoding/binary"
)

// sampleFileBytes builds a two-entry card table by hand, placing strings in
// an order and alignment the encoder would never produce: the second
// entry's strings come first, nothing is padded, and one string is shared
// by two pointers.
func sampleFileBytes() []byte {
	const (
		headerSize = 0x14
		recordSize = 0x90
	)
	pool := []byte("gojo\u0000se_hit\u0000jjk_card_01\u0000a\u0000")
	bs := make([]byte, headerSize+2*recordSize, headerSize+2*recordSize+len(pool))
	bs = append(bs, pool...)

	gojo := int64(headerSize + 2*recordSize)
	sfx := gojo + 5
	card := sfx + 7
	letter := card + 12

	binary.LittleEndian.PutUint16(bs[0x00:], 1)
	binary.LittleEndian.PutUint16(bs[0x04:], 0x67) // version
	binary.LittleEndian.PutUint16(bs[0x08:], 2)    // entry_count
	binary.LittleEndian.PutUint16(bs[0x0E:], 9)

	putPointer := func(fieldOffset int64, target int64) {
		binary.LittleEndian.PutUint64(bs[fieldOffset:], uint64(target-fieldOffset))
	}

	first := int64(headerSize)
	binary.LittleEndian.PutUint32(bs[first+0x08:], 1)          // part
	binary.LittleEndian.PutUint32(bs[first+0x10:], 3)          // medal_type
	binary.LittleEndian.PutUint32(bs[first+0x24:], 0xFFFFFFFE) // unk3
	binary.LittleEndian.PutUint32(bs[first+0x70:], 12000)      // cost
	binary.LittleEndian.PutUint32(bs[first+0x88:], 0)          // index
	putPointer(first+0x00, card)
	putPointer(first+0x18, letter)
	putPointer(first+0x30, sfx)
	putPointer(first+0x48, sfx)

	second := int64(headerSize + recordSize)
	binary.LittleEndian.PutUint32(bs[second+0x08:], 2)  // part
	binary.LittleEndian.PutUint32(bs[second+0x68:], 4)  // unlock_condition
	binary.LittleEndian.PutUint32(bs[second+0x6C:], 77) // unk6
	binary.LittleEndian.PutUint32(bs[second+0x88:], 1)  // index
	putPointer(second+0x58, gojo)
	putPointer(second+0x80, card)

	return bs
}
