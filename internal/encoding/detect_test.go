package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/MrJamesThe3rd/ledger/internal/encoding"
)

func TestNewUTF8Reader(t *testing.T) {
	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte("sku;name\nCU-1;Café\n"))
	require.NoError(t, err)

	tests := []struct {
		name        string
		input       []byte
		want        string
		wantCharset encoding.Charset
	}{
		{
			name:        "UTF8Passthrough",
			input:       []byte("name,category\nCafé Grinder,Equipment\n"),
			want:        "name,category\nCafé Grinder,Equipment\n",
			wantCharset: encoding.CharsetUTF8,
		},
		{
			name:        "UTF8BOMStripped",
			input:       append([]byte{0xEF, 0xBB, 0xBF}, []byte("name;sku\n")...),
			want:        "name;sku\n",
			wantCharset: encoding.CharsetUTF8,
		},
		{
			name:        "UTF16LE",
			input:       utf16le,
			want:        "sku;name\nCU-1;Café\n",
			wantCharset: encoding.CharsetUTF16LE,
		},
		{
			// "Descrição;Preço\n" in Windows-1252: ç = 0xE7, ã = 0xE3
			name: "Windows1252",
			input: []byte{
				'D', 'e', 's', 'c', 'r', 'i', 0xE7, 0xE3, 'o', ';',
				'P', 'r', 'e', 0xE7, 'o', '\n',
			},
			want: "Descrição;Preço\n",
		},
		{
			name:        "Empty",
			input:       nil,
			want:        "",
			wantCharset: encoding.CharsetUTF8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, charset, err := encoding.NewUTF8Reader(bytes.NewReader(tt.input))
			require.NoError(t, err)

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
			if tt.wantCharset != "" {
				assert.Equal(t, tt.wantCharset, charset)
			}
		})
	}
}
