package firestoredb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dikshant1602/wandwrite/core"
)

func Test_wrapErr(t *testing.T) {
	err := wrapErr(status.Error(codes.Unavailable, "try again"), "reading user document")
	assert.False(t, core.IsShutdown(err))
	assert.Contains(t, err.Error(), "reading user document")

	// rejected credentials bounce the process
	err = wrapErr(status.Error(codes.Unauthenticated, "token revoked"), "reading user document")
	assert.True(t, core.IsShutdown(err))
	assert.Contains(t, err.Error(), "store credentials rejected")
}
