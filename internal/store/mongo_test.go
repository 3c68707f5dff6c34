package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestUserDocument_BSONLayout(t *testing.T) {
	user := testUser()

	raw, err := bson.Marshal(newUserDocument(user))
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))

	assert.Equal(t, user.UserID, m["_id"], "user id is the document key")
	assert.Equal(t, user.Email, m["email"])
	assert.Equal(t, user.PasswordDigest, m["password_digest"])
	assert.EqualValues(t, 30, m["age"])
	assert.NotContains(t, m, "user_id")
}

func TestUserDocument_OptionalFieldsOmitted(t *testing.T) {
	user := testUser()
	user.Age = nil
	user.Address = ""

	raw, err := bson.Marshal(newUserDocument(user))
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))

	assert.NotContains(t, m, "age")
	assert.NotContains(t, m, "address")

	var doc userDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	back := doc.toModel()
	assert.Nil(t, back.Age)
	assert.Equal(t, user.Email, back.Email)
	assert.True(t, back.CreatedAt.Equal(user.CreatedAt))
}
