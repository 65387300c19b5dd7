package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranchRefName(t *testing.T) {
	t.Run("Should qualify a short branch name", func(t *testing.T) {
		assert.Equal(t, "refs/heads/main", BranchRefName("main"))
	})

	t.Run("Should leave a qualified name unchanged", func(t *testing.T) {
		assert.Equal(t, "refs/heads/feature/x", BranchRefName("refs/heads/feature/x"))
	})

	t.Run("Should leave non-branch refs unchanged", func(t *testing.T) {
		assert.Equal(t, "refs/tags/v1.0.0", BranchRefName("refs/tags/v1.0.0"))
	})
}

func TestShortBranchName(t *testing.T) {
	t.Run("Should strip the branch prefix", func(t *testing.T) {
		assert.Equal(t, "release/2024", ShortBranchName("refs/heads/release/2024"))
	})

	t.Run("Should pass through an already short name", func(t *testing.T) {
		assert.Equal(t, "main", ShortBranchName("main"))
	})
}

func TestRefLookup(t *testing.T) {
	t.Run("Should carry the tip when found", func(t *testing.T) {
		lookup := FoundRef("aaa111")
		assert.True(t, lookup.Found())
		assert.Equal(t, "aaa111", lookup.ObjectID())
	})

	t.Run("Should report no tip when not found", func(t *testing.T) {
		lookup := NotFoundRef()
		assert.False(t, lookup.Found())
		assert.Empty(t, lookup.ObjectID())
	})
}
