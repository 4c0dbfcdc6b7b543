package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestProfileDelta_MergeFrom_FieldLevelLastWriteWins(t *testing.T) {
	envelope := &ProfileDelta{Fullname: ptr("First")}

	envelope.MergeFrom(&ProfileDelta{PfpURL: ptr("https://cdn.example.com/a.png")})
	envelope.MergeFrom(&ProfileDelta{Fullname: ptr("Second")})

	require.NotNil(t, envelope.Fullname)
	require.NotNil(t, envelope.PfpURL)
	assert.Equal(t, "Second", *envelope.Fullname)
	assert.Equal(t, "https://cdn.example.com/a.png", *envelope.PfpURL)
}

func TestProfileDelta_MergeFrom_NilLeavesFieldsAlone(t *testing.T) {
	envelope := &ProfileDelta{Fullname: ptr("Keep")}

	envelope.MergeFrom(nil)
	envelope.MergeFrom(&ProfileDelta{})

	require.NotNil(t, envelope.Fullname)
	assert.Equal(t, "Keep", *envelope.Fullname)
	assert.Nil(t, envelope.PfpURL)
}

func TestProfileDelta_ApplyTo(t *testing.T) {
	profile := &UserProfile{UID: "u1", Fullname: "Old", PfpURL: "old.png"}

	(&ProfileDelta{Fullname: ptr("New")}).ApplyTo(profile)

	assert.Equal(t, "New", profile.Fullname)
	assert.Equal(t, "old.png", profile.PfpURL)
}

func TestProfileDelta_Without(t *testing.T) {
	envelope := &ProfileDelta{Fullname: ptr("Stashed"), PfpURL: ptr("https://cdn.example.com/a.png")}

	remainder := envelope.Without(&ProfileDelta{Fullname: ptr("Flushed")})

	assert.Nil(t, remainder.Fullname)
	require.NotNil(t, remainder.PfpURL)
	assert.Equal(t, "https://cdn.example.com/a.png", *remainder.PfpURL)

	// The original envelope is untouched.
	require.NotNil(t, envelope.Fullname)
	assert.Equal(t, "Stashed", *envelope.Fullname)

	assert.True(t, envelope.Without(envelope).IsZero())
	assert.Nil(t, (*ProfileDelta)(nil).Without(&ProfileDelta{}))
}

func TestProfileDelta_IsZero(t *testing.T) {
	assert.True(t, (*ProfileDelta)(nil).IsZero())
	assert.True(t, (&ProfileDelta{}).IsZero())
	assert.False(t, (&ProfileDelta{Fullname: ptr("x")}).IsZero())
}

func TestProfileRefs_ApplyTo_UnionSemantics(t *testing.T) {
	profile := &UserProfile{UID: "u1", Products: []string{"p1"}}

	refs := ProfileRefs{
		Products:     []string{"p1", "p2"},
		Transactions: []string{"t1"},
	}
	refs.ApplyTo(profile)
	refs.ApplyTo(profile)

	assert.Equal(t, []string{"p1", "p2"}, profile.Products)
	assert.Equal(t, []string{"t1"}, profile.Transactions)
	assert.Empty(t, profile.Employees)
}

func TestUserProfile_Clone_NoAliasing(t *testing.T) {
	original := &UserProfile{UID: "u1", Products: []string{"p1"}}

	clone := original.Clone()
	clone.Fullname = "Changed"
	clone.Products = append(clone.Products, "p2")

	assert.Empty(t, original.Fullname)
	assert.Equal(t, []string{"p1"}, original.Products)
	assert.Nil(t, (*UserProfile)(nil).Clone())
}
