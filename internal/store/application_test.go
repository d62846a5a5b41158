package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"donoru/internal/db"
	"donoru/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestApplicationCollection(t *testing.T) {
	assert.Equal(t, "application", applicationCollection)
}

func TestApplicationRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create targets application collection", func(mt *mtest.T) {
		repo := NewApplicationRepository(newTestStore(mt))
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := repo.CreateApplication(context.Background(), sampleApplication())
		require.NoError(mt, err)
		assert.NotEmpty(mt, id)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "application", started.Command.Lookup("insert").StringValue())
	})

	mt.Run("list returns records", func(mt *mtest.T) {
		repo := NewApplicationRepository(newTestStore(mt))
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, fmt.Sprintf("%s.application", mt.DB.Name()), mtest.FirstBatch,
			applicationDoc(id, "Grace Hopper"),
		))

		apps, err := repo.Applications(context.Background(), 100)
		require.NoError(mt, err)
		require.Len(mt, apps, 1)
		assert.Equal(mt, id, apps[0].ID)
		assert.Equal(mt, types.TierPremium, apps[0].Tier)
	})

	mt.Run("list empty collection", func(mt *mtest.T) {
		repo := NewApplicationRepository(newTestStore(mt))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, fmt.Sprintf("%s.application", mt.DB.Name()), mtest.FirstBatch))

		apps, err := repo.Applications(context.Background(), 100)
		require.NoError(mt, err)
		assert.NotNil(mt, apps)
		assert.Empty(mt, apps)
	})
}

func TestApplicationRepository_NotConnected(t *testing.T) {
	repo := NewApplicationRepository(NewDocumentStore(db.Absent(true, true)))

	_, err := repo.CreateApplication(context.Background(), sampleApplication())
	var storageErr *types.StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.ErrorIs(t, err, types.ErrNotConnected)

	apps, err := repo.Applications(context.Background(), 5)
	assert.Nil(t, apps)
	assert.ErrorIs(t, err, types.ErrNotConnected)

	report := repo.DescribeConnection(context.Background())
	assert.False(t, report.HandlePresent)
	assert.True(t, report.URLConfigured)
}
