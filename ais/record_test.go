package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAndMergeFieldsAndEnvelope(t *testing.T) {
	env := Envelope{
		Talker:   "AIVDM",
		Type:     1,
		Channel:  'B',
		FragCnt:  1,
		FragNum:  1,
		Payload:  "15M67FC000G?ufbE`FepT@3n00Sa",
		FillBits: 0,
		Checksum: "5C",
		Raw:      "!AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa,0*5C",
	}
	merged, err := DecodeAndMerge(env, EnumOpts{AsInt: true})
	assert.NoError(t, err)
	assert.Equal(t, uint8(1), merged["msg_type"])
	assert.Equal(t, "366053209", merged["mmsi"])
	assert.Equal(t, "AIVDM", merged["talker"])
	assert.Equal(t, nil, merged["seq_id"])
	assert.Nil(t, err)
}

func TestToMapPromotesMsgTypeAndRepeat(t *testing.T) {
	rec := &Record{MsgType: 5, Repeat: 2, MMSI: "123456789"}
	m := rec.ToMap(EnumOpts{AsInt: true})
	assert.Equal(t, uint8(5), m["msg_type"])
	assert.Equal(t, uint8(2), m["repeat"])
}
