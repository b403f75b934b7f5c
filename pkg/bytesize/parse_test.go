package bytesize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "bytes", input: "512B", want: 512},
		{name: "bare number", input: "4096", want: 4096},
		{name: "kilobytes", input: "100KB", want: 100 * 1024},
		{name: "megabytes", input: "512MB", want: 512 * 1024 * 1024},
		{name: "docker style megabytes", input: "512m", want: 512 * 1024 * 1024},
		{name: "docker style gigabytes fractional", input: "1.5g", want: 1536 * 1024 * 1024},
		{name: "whitespace", input: "  2 GB ", want: 2 * 1024 * 1024 * 1024},
		{name: "empty", input: "", wantErr: true},
		{name: "unit only", input: "MB", wantErr: true},
		{name: "negative", input: "-1MB", wantErr: true},
		{name: "garbage", input: "lots", wantErr: true},
		{name: "overflow", input: "99999999999TB", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0B"},
		{512, "512B"},
		{1536, "1.5KB"},
		{512 * 1024 * 1024, "512MB"},
		{3 * 1024 * 1024 * 1024, "3GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}
