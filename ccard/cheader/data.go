package cheader

type (
	Header struct {
		Unk1    uint16 `json:"unk1" yaml:"unk1"`
		Unk2    uint16 `json:"unk2" yaml:"unk2"`
		Version uint16 `json:"version" yaml:"version"`
		Unk3    uint16 `json:"unk3" yaml:"unk3"`
		// EntryCount is derived from the entries on encode.
		EntryCount uint16 `json:"entry_count" yaml:"entry_count"`
		Unk4       uint16 `json:"unk4" yaml:"unk4"`
		Unk5       uint16 `json:"unk5" yaml:"unk5"`
		Unk6       uint16 `json:"unk6" yaml:"unk6"`
	}
)
