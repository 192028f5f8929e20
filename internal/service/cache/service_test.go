package cache

import (
	"context"
	"errors"
	"net"
	"testing"

	rankingerrors "github.com/blackout-luminera/guild-xp-ranking/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewSnapshotMirrorUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	mirror, err := NewSnapshotMirror(context.Background(), MirrorConfig{
		Host: "127.0.0.1",
		Port: port,
		Key:  "guild:ranking:snapshot",
	}, zap.NewNop())

	assert.Nil(t, mirror)
	var mirrorErr *rankingerrors.MirrorError
	require.True(t, errors.As(err, &mirrorErr))
	assert.Equal(t, "ping", mirrorErr.Operation)
	assert.Equal(t, "guild:ranking:snapshot", mirrorErr.Key)
}
