/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package linkkey_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/transitnet/internal/logger"
	"bennypowers.dev/transitnet/linkkey"
	"bennypowers.dev/transitnet/network"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(zerolog.InfoLevel)
	})
	return &buf
}

func line(name string, nodes ...int) *network.TransitLine {
	l := network.NewTransitLine(name)
	for _, n := range nodes {
		l.Nodes = append(l.Nodes, network.NewNode(n))
	}
	return l
}

func TestKey_String(t *testing.T) {
	tests := []struct {
		key  linkkey.Key
		want string
	}{
		{linkkey.Key{A: 1, B: 2, Name: "L71", Seq: 3}, "1 2 L71 3"},
		{linkkey.Key{A: 1, B: 2, Name: "L71"}, "1 2 L71"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFromLines(t *testing.T) {
	ix := linkkey.FromLines([]*network.TransitLine{line("east", 10, -11, 12)})

	want := []linkkey.Key{
		{A: 10, B: 11, Name: "EAST", Seq: 1},
		{A: 11, B: 12, Name: "EAST", Seq: 2},
	}
	assert.Equal(t, want, ix.Keys())
}

func TestIndex_FakesSeqForDuplicates(t *testing.T) {
	logs := captureLogs(t)

	ix := linkkey.FromLines([]*network.TransitLine{
		line("l", 1, 2),
		line("L", 1, 2),
	})
	keys := ix.Keys()
	require.Len(t, keys, 2)
	assert.Equal(t, 1, keys[0].Seq)
	assert.Equal(t, 2, keys[1].Seq)
	assert.Contains(t, logs.String(), "faking SEQ")
	assert.Contains(t, logs.String(), "1 2 L 1")

	k := ix.Add(1, 2, "l", 1)
	assert.Equal(t, 3, k.Seq)
	assert.True(t, ix.Contains(linkkey.Key{A: 1, B: 2, Name: "L", Seq: 3}))
}

func TestIndex_NoSeqIsNotRenumbered(t *testing.T) {
	logs := captureLogs(t)
	ix := linkkey.NewIndex()
	ix.Add(1, 2, "x", 0)
	k := ix.Add(1, 2, "x", 0)
	assert.Equal(t, 0, k.Seq)
	assert.Equal(t, 2, ix.Len())
	assert.NotContains(t, logs.String(), "faking SEQ")
}

func TestIndex_CSV(t *testing.T) {
	ix := linkkey.FromLines([]*network.TransitLine{line("east", 10, 11, 12)})

	var buf bytes.Buffer
	require.NoError(t, ix.WriteCSV(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "A,B,NAME,SEQ,ABNAMESEQ\n"), out)
	assert.Contains(t, out, "10,11,EAST,1,10 11 EAST 1\n")

	back, err := linkkey.ReadCSV(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, ix.Keys(), back.Keys())
}
