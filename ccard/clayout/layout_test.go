package clayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutsTile(t *testing.T) {
	assert.NoError(t, Header.Validate())
	assert.NoError(t, Entry.Validate())
}

func TestValidateCatchesGapsAndOverlaps(t *testing.T) {
	gap := Layout{
		Name: "gap",
		Size: 8,
		Fields: []Field{
			{Name: "a", Kind: KindUint16, Offset: 0},
			{Name: "b", Kind: KindUint32, Offset: 4},
		},
	}
	assert.Error(t, gap.Validate())

	overlap := Layout{
		Name: "overlap",
		Size: 6,
		Fields: []Field{
			{Name: "a", Kind: KindUint32, Offset: 0},
			{Name: "b", Kind: KindUint16, Offset: 2},
		},
	}
	assert.Error(t, overlap.Validate())

	short := Layout{
		Name:   "short",
		Size:   8,
		Fields: []Field{{Name: "a", Kind: KindUint32, Offset: 0}},
	}
	assert.Error(t, short.Validate())

	duplicated := Layout{
		Name: "duplicated",
		Size: 4,
		Fields: []Field{
			{Name: "a", Kind: KindUint16, Offset: 0},
			{Name: "a", Kind: KindUint16, Offset: 2},
		},
	}
	assert.Error(t, duplicated.Validate())
}

func TestPointerOffsets(t *testing.T) {
	// relative offsets of each slot as laid out in shipped files
	expected := map[string]int{
		SlotCard:       0x00,
		SlotLetter:     0x18,
		SlotSFX1:       0x30,
		SlotSFX2:       0x38,
		SlotSFX3:       0x40,
		SlotSFX4:       0x48,
		SlotCharacter:  0x58,
		SlotCardDetail: 0x80,
	}
	pointers := Entry.Pointers()
	require.Len(t, pointers, len(expected))
	for _, pointer := range pointers {
		assert.Equal(t, expected[pointer.Name], pointer.Offset, pointer.Name)
		assert.Equal(t, 8, pointer.Width())
	}
}

func TestSlotsOrder(t *testing.T) {
	assert.Equal(
		t,
		[]string{
			SlotCard, SlotLetter,
			SlotSFX1, SlotSFX2, SlotSFX3, SlotSFX4,
			SlotCharacter, SlotCardDetail,
		},
		Slots(),
	)
}

func TestValues(t *testing.T) {
	names := func(fields []Field) []string {
		result := make([]string, 0, len(fields))
		for _, field := range fields {
			result = append(result, field.Name)
		}
		return result
	}
	assert.Equal(
		t,
		[]string{"unk1", "unk2", "version", "unk3", "entry_count", "unk4", "unk5", "unk6"},
		names(Header.Values()),
	)
	assert.Equal(
		t,
		[]string{
			"part", "unk1", "medal_type",
			"unk2", "unk3", "unk4", "unk5",
			"unlock_condition", "unk6", "cost", "index",
		},
		names(Entry.Values()),
	)
}

func TestFieldOffset(t *testing.T) {
	card, ok := Entry.Field(SlotCard)
	require.True(t, ok)
	letter, ok := Entry.Field(SlotLetter)
	require.True(t, ok)

	assert.Equal(t, int64(0x14), FieldOffset(0, card))
	assert.Equal(t, int64(0x14+0x18), FieldOffset(0, letter))
	assert.Equal(t, int64(0x14+0x90*3+0x18), FieldOffset(3, letter))
	assert.Equal(t, int64(0x14+0x90*2), RegionSize(2))

	_, ok = Entry.Field("card_pointer")
	assert.False(t, ok)
}

func TestResolveAndRelative(t *testing.T) {
	assert.Equal(t, int64(0x24), Resolve(0x14, 0x10))
	assert.Equal(t, int64(0x10), Relative(0x14, 0x24))
	assert.Equal(t, int64(0x4), Resolve(0x14, -0x10))
	for _, target := range []int64{0, 0x14, 0xA4, 0x10000} {
		assert.Equal(t, target, Resolve(0xB0, Relative(0xB0, target)))
	}
}
