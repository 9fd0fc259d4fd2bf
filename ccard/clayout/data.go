// Package clayout is the single description of the card table byte layout.
// Both decoding and encoding read offsets from here and nowhere else.
package clayout

type (
	Kind  string
	Field struct {
		Name   string
		Kind   Kind
		Offset int
		// Length is only set for padding; the other kinds have a fixed width.
		Length int
	}
	Layout struct {
		Name   string
		Size   int
		Fields []Field
	}
)

const (
	KindUint16  = Kind("uint16")
	KindUint32  = Kind("uint32")
	KindInt32   = Kind("int32")
	KindPointer = Kind("pointer")
	KindPadding = Kind("padding")
)

const (
	HeaderSize = 0x14
	RecordSize = 0x90
	// Alignment is measured from the first byte of each pooled string.
	Alignment = 8

	FieldNameEntryCount = "entry_count"
	FieldNameEntries    = "entries"
)

const (
	SlotCard       = "card"
	SlotLetter     = "letter"
	SlotSFX1       = "sfx1"
	SlotSFX2       = "sfx2"
	SlotSFX3       = "sfx3"
	SlotSFX4       = "sfx4"
	SlotCharacter  = "character"
	SlotCardDetail = "card_detail"
)

var Header = Layout{
	Name: "header",
	Size: HeaderSize,
	Fields: []Field{
		{Name: "unk1", Kind: KindUint16, Offset: 0x00},
		{Name: "unk2", Kind: KindUint16, Offset: 0x02},
		{Name: "version", Kind: KindUint16, Offset: 0x04},
		{Name: "unk3", Kind: KindUint16, Offset: 0x06},
		{Name: FieldNameEntryCount, Kind: KindUint16, Offset: 0x08},
		{Name: "unk4", Kind: KindUint16, Offset: 0x0A},
		{Name: "unk5", Kind: KindUint16, Offset: 0x0C},
		{Name: "unk6", Kind: KindUint16, Offset: 0x0E},
		{Name: "reserved", Kind: KindPadding, Offset: 0x10, Length: 4},
	},
}

// Entry lists the record fields in on-disk order. Pointer fields are named
// after the string slot they reference, and their order is the order in
// which strings are pooled on encode.
var Entry = Layout{
	Name: "entry",
	Size: RecordSize,
	Fields: []Field{
		{Name: SlotCard, Kind: KindPointer, Offset: 0x00},
		{Name: "part", Kind: KindUint32, Offset: 0x08},
		{Name: "unk1", Kind: KindUint32, Offset: 0x0C},
		{Name: "medal_type", Kind: KindUint32, Offset: 0x10},
		{Name: "reserved_1", Kind: KindPadding, Offset: 0x14, Length: 4},
		{Name: SlotLetter, Kind: KindPointer, Offset: 0x18},
		{Name: "unk2", Kind: KindInt32, Offset: 0x20},
		{Name: "unk3", Kind: KindInt32, Offset: 0x24},
		{Name: "unk4", Kind: KindInt32, Offset: 0x28},
		{Name: "unk5", Kind: KindInt32, Offset: 0x2C},
		{Name: SlotSFX1, Kind: KindPointer, Offset: 0x30},
		{Name: SlotSFX2, Kind: KindPointer, Offset: 0x38},
		{Name: SlotSFX3, Kind: KindPointer, Offset: 0x40},
		{Name: SlotSFX4, Kind: KindPointer, Offset: 0x48},
		{Name: "reserved_2", Kind: KindPadding, Offset: 0x50, Length: 8},
		{Name: SlotCharacter, Kind: KindPointer, Offset: 0x58},
		{Name: "reserved_3", Kind: KindPadding, Offset: 0x60, Length: 8},
		{Name: "unlock_condition", Kind: KindUint32, Offset: 0x68},
		{Name: "unk6", Kind: KindUint32, Offset: 0x6C},
		{Name: "cost", Kind: KindUint32, Offset: 0x70},
		{Name: "reserved_4", Kind: KindPadding, Offset: 0x74, Length: 12},
		{Name: SlotCardDetail, Kind: KindPointer, Offset: 0x80},
		{Name: "index", Kind: KindUint32, Offset: 0x88},
		{Name: "reserved_5", Kind: KindPadding, Offset: 0x8C, Length: 4},
	},
}
