package platform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatRelease(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"6.8.0-45-generic", "6.8.0", false},
		{"6.18.44-fc-v139", "6.18.44", false},
		{"23.1.0", "23.1.0", false},
		{"14.1-RELEASE", "14.1.0", false},
		{"14.1-RELEASE-p5", "14.1.0", false},
		{"5", "5.0.0", false},
		{"6.", "6.0.0", false},
		{"10.0.19045.3803", "10.0.19045", false},
		{" 4.19.0\n", "4.19.0", false},
		{"", "", true},
		{"unknown", "", true},
		{"-6.1", "", true},
		{"99999999999.1", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := formatRelease("uname", tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, IsGeneric(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeHostName(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		want    string
		wantErr bool
	}{
		{"plain", []byte("build-01"), "build-01", false},
		{"nul terminated", []byte("build-01\x00garbage"), "build-01", false},
		{"invalid utf8", []byte{'h', 0xff, 'x', 0}, "h\uFFFDx", false},
		{"utf8", []byte("hôte"), "hôte", false},
		{"leading nul", []byte{0, 'a'}, "", true},
		{"empty", nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeHostName("gethostname", tt.raw)
			if tt.wantErr {
				require.True(t, IsGeneric(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeHostNameCapsBuffer(t *testing.T) {
	got, err := decodeHostName("gethostname", []byte(strings.Repeat("a", 300)))
	require.NoError(t, err)
	require.Len(t, got, hostNameMax)
}

func TestDecodeUTF16(t *testing.T) {
	tests := []struct {
		name    string
		in      []uint16
		want    string
		wantErr bool
	}{
		{"ascii", []uint16{'W', 'S', '1', 0, 'x'}, "WS1", false},
		{"no terminator", []uint16{'P', 'C'}, "PC", false},
		{"bmp", []uint16{'p', 0x00e9}, "pé", false},
		{"surrogate pair", []uint16{'a', 0xd83d, 0xde00}, "a\U0001F600", false},
		{"lone high", []uint16{'a', 0xd83d, 'b'}, "", true},
		{"high at end", []uint16{'a', 0xd83d}, "", true},
		{"lone low", []uint16{0xde00, 'a'}, "", true},
		{"empty", []uint16{0}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeUTF16("GetComputerNameW", tt.in)
			if tt.wantErr {
				require.True(t, IsGeneric(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestToKiB(t *testing.T) {
	require.Equal(t, uint64(0), toKiB(1023))
	require.Equal(t, uint64(1), toKiB(1024))
	require.Equal(t, uint64(16*1024*1024), toKiB(16<<30))
}

func TestDiskInfoUsed(t *testing.T) {
	require.Equal(t, uint64(60), DiskInfo{Total: 100, Free: 40}.Used())
	require.Equal(t, uint64(0), DiskInfo{Total: 10, Free: 40}.Used())
}
