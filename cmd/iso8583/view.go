package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	iso8583 "github.com/mkadit/iso8583hex"
)

// messageView is the JSON form used by pack --json and printed by unpack.
// Values of binary fields are hex, all others are the raw characters.
type messageView struct {
	MTI    string            `json:"mti"`
	Bitmap string            `json:"bitmap,omitempty"`
	Fields map[string]string `json:"fields"`
}

func isBinary(dict iso8583.FieldDictionary, fieldNum int) bool {
	meta, err := dict.Lookup(fieldNum)
	return err == nil && meta.Type == iso8583.TypeB
}

func toView(dict iso8583.FieldDictionary, msg *iso8583.Message) messageView {
	view := messageView{MTI: msg.MTI(), Fields: make(map[string]string)}
	if h, err := iso8583.BitmapHex(msg.Bitmap()); err == nil {
		view.Bitmap = h
	}
	for _, id := range msg.FieldIDs() {
		v, _ := msg.Field(id)
		if isBinary(dict, id) {
			view.Fields[strconv.Itoa(id)] = hex.EncodeToString(v)
		} else {
			view.Fields[strconv.Itoa(id)] = string(v)
		}
	}
	return view
}

func (mv messageView) apply(dict iso8583.FieldDictionary, msg *iso8583.Message) error {
	if mv.MTI != "" {
		if err := msg.SetMTI(mv.MTI); err != nil {
			return err
		}
	}
	for key, value := range mv.Fields {
		id, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("invalid field number %q", key)
		}
		data := []byte(value)
		if isBinary(dict, id) {
			if data, err = hex.DecodeString(value); err != nil {
				return fmt.Errorf("field %d: %w", id, err)
			}
		}
		if err := msg.SetField(id, data); err != nil {
			return err
		}
	}
	return nil
}
