package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	bCtx "github.com/zenith-market/goapi/base/ctx"
)

func Test_dataUriReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	r := NewDataUriReaderRepo()

	cases := []struct {
		name     string
		uri      string
		expected []byte
		wantErr  bool
	}{
		{
			name:     "base64 json",
			uri:      "data:application/json;base64,eyJuYW1lIjoiYSJ9",
			expected: []byte(`{"name":"a"}`),
		},
		{
			name:     "plain text",
			uri:      "data:,hello",
			expected: []byte("hello"),
		},
		{
			name:    "not a data uri",
			uri:     "https://example.com/x.json",
			wantErr: true,
		},
		{
			name:    "missing data part",
			uri:     "data:application/json;base64,",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		b, err := r.Get(c, tc.uri)
		if tc.wantErr {
			req.Error(err, tc.name)
			continue
		}
		req.NoError(err, tc.name)
		req.Equal(tc.expected, b, tc.name)
	}
}
