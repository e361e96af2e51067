package caida

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgpconverge/bgpconverge/relationship"
)

func TestParseRelationshipLine(t *testing.T) {
	cases := []struct {
		line    string
		source  int64
		sink    int64
		rel     relationship.Relationship
		wantErr bool
	}{
		{line: "174|1299|-1", source: 174, sink: 1299, rel: relationship.P2C},
		{line: "3356|3257|0", source: 3356, sink: 3257, rel: relationship.P2P},
		{line: "7018|701|1", source: 7018, sink: 701, rel: relationship.C2P},
		{line: "  7018|701|1  ", source: 7018, sink: 701, rel: relationship.C2P},
		{line: "not-a-number|701|1", wantErr: true},
		{line: "7018|701", wantErr: true},
		{line: "7018|701|7", wantErr: true},
	}

	for _, tc := range cases {
		source, sink, rel, err := parseRelationshipLine(tc.line)
		if tc.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.source, int64(source))
		assert.Equal(t, tc.sink, int64(sink))
		assert.Equal(t, tc.rel, rel)
	}
}
