package service

import (
	"encoding/base64"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURI(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(payload)

	data, contentType, err := decodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestDecodeDataURI_Rejects(t *testing.T) {
	cases := map[string]string{
		"plain base64":      base64.StdEncoding.EncodeToString([]byte("x")),
		"missing prefix":    "image/png;base64,aGk=",
		"unsupported type":  "data:image/gif;base64,aGk=",
		"not base64 marked": "data:image/png,aGk=",
		"bad base64":        "data:image/png;base64,!!!",
	}

	for name, uri := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := decodeDataURI(uri)
			assert.Error(t, err)
		})
	}
}

func TestOriginalKey(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, "recipes/"+id.String()+"/original.png", originalKey(id, "image/png"))
	assert.Equal(t, "recipes/"+id.String()+"/original.jpg", originalKey(id, "image/jpeg"))
}
