package qb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeJSON(t *testing.T) {
	in := `{"a":"<b>\"x\" & 'y'</b>","<k>":1}`
	tests := []struct {
		name string
		opts JSONOptions
		want string
	}{
		{"defaults", DefaultJSONOptions, `{"a":"\u003Cb\u003E\u0022x\u0022 \u0026 \u0027y\u0027\u003C/b\u003E","\u003Ck\u003E":1}`},
		{"tags only", JSONHexTag, `{"a":"\u003Cb\u003E\"x\" & 'y'\u003C/b\u003E","\u003Ck\u003E":1}`},
		{"amp and apos", JSONHexAmp | JSONHexApos, `{"a":"<b>\"x\" \u0026 \u0027y\u0027</b>","<k>":1}`},
		{"quotes only", JSONHexQuot, `{"a":"<b>\u0022x\u0022 & 'y'</b>","<k>":1}`},
		{"raw", JSONRaw, in},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeJSON([]byte(in), tt.opts))
		})
	}
}

func TestEncodeJSON(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		out, err := encodeJSON([]map[string]interface{}{
			{"id": int64(1), "name": "Tom & Jerry"},
			{"id": int64(2), "name": nil},
		}, DefaultJSONOptions)
		assert.NoError(t, err)
		assert.Equal(t, `[{"id":1,"name":"Tom \u0026 Jerry"},{"id":2,"name":null}]`, out)
	})

	t.Run("empty", func(t *testing.T) {
		out, err := encodeJSON([]map[string]interface{}{}, DefaultJSONOptions)
		assert.NoError(t, err)
		assert.Equal(t, "[]", out)
	})

	t.Run("no row", func(t *testing.T) {
		out, err := encodeJSON(map[string]interface{}(nil), DefaultJSONOptions)
		assert.NoError(t, err)
		assert.Equal(t, "null", out)
	})

	t.Run("escaped backslash before a tag", func(t *testing.T) {
		out, err := encodeJSON(map[string]interface{}{"p": `C:\<dir>`}, JSONHexTag)
		assert.NoError(t, err)
		assert.Equal(t, `{"p":"C:\\\u003Cdir\u003E"}`, out)
	})

	t.Run("unsupported value", func(t *testing.T) {
		_, err := encodeJSON(map[string]interface{}{"c": make(chan int)}, DefaultJSONOptions)
		assert.Error(t, err)
	})
}
