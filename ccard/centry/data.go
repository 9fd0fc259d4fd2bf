package centry

import (
	"fmt"

	"github.com/maxcabd/custom-card-parser/ccard/clayout"
)

type (
	// Entry is one record with its pointers replaced by the strings they
	// reference. An empty string means the pointer is zero.
	Entry struct {
		Part            uint32 `json:"part" yaml:"part"`
		Unk1            uint32 `json:"unk1" yaml:"unk1"`
		MedalType       uint32 `json:"medal_type" yaml:"medal_type"`
		Unk2            int32  `json:"unk2" yaml:"unk2"`
		Unk3            int32  `json:"unk3" yaml:"unk3"`
		Unk4            int32  `json:"unk4" yaml:"unk4"`
		Unk5            int32  `json:"unk5" yaml:"unk5"`
		UnlockCondition uint32 `json:"unlock_condition" yaml:"unlock_condition"`
		Unk6            uint32 `json:"unk6" yaml:"unk6"`
		Cost            uint32 `json:"cost" yaml:"cost"`
		Index           uint32 `json:"index" yaml:"index"`

		Card       string `json:"card_id" yaml:"card_id"`
		Letter     string `json:"letter" yaml:"letter"`
		SFX1       string `json:"sfx1" yaml:"sfx1"`
		SFX2       string `json:"sfx2" yaml:"sfx2"`
		SFX3       string `json:"sfx3" yaml:"sfx3"`
		SFX4       string `json:"sfx4" yaml:"sfx4"`
		Character  string `json:"character" yaml:"character"`
		CardDetail string `json:"card_detail" yaml:"card_detail"`
	}
)

// SlotKeys maps a string slot to its key in the structured document. The
// card slot keeps the "card_id" key older documents were written with.
var SlotKeys = map[string]string{
	clayout.SlotCard:       "card_id",
	clayout.SlotLetter:     "letter",
	clayout.SlotSFX1:       "sfx1",
	clayout.SlotSFX2:       "sfx2",
	clayout.SlotSFX3:       "sfx3",
	clayout.SlotSFX4:       "sfx4",
	clayout.SlotCharacter:  "character",
	clayout.SlotCardDetail: "card_detail",
}

type ErrUnknownSlot struct {
	Caller string
	Slot   string
}

func (r ErrUnknownSlot) Error() string {
	return fmt.Sprintf(`%s: unknown string slot "%s"`, r.Caller, r.Slot)
}

// StringRef returns the string field backing slot.
func (r *Entry) StringRef(slot string) (*string, error) {
	switch slot {
	case clayout.SlotCard:
		return &r.Card, nil
	case clayout.SlotLetter:
		return &r.Letter, nil
	case clayout.SlotSFX1:
		return &r.SFX1, nil
	case clayout.SlotSFX2:
		return &r.SFX2, nil
	case clayout.SlotSFX3:
		return &r.SFX3, nil
	case clayout.SlotSFX4:
		return &r.SFX4, nil
	case clayout.SlotCharacter:
		return &r.Character, nil
	case clayout.SlotCardDetail:
		return &r.CardDetail, nil
	default:
		return nil, ErrUnknownSlot{Caller: "Entry.StringRef", Slot: slot}
	}
}
