package seed

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"donoru/internal/validation"
	"donoru/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	existing []*types.ApplicationRecord
	created  []*types.Application
	listErr  error
	failAt   int
}

func (f *fakeRepo) CreateApplication(_ context.Context, app *types.Application) (string, error) {
	if f.failAt > 0 && len(f.created)+1 == f.failAt {
		return "", errors.New("write rejected")
	}
	f.created = append(f.created, app)
	return fmt.Sprintf("id-%d", len(f.created)), nil
}

func (f *fakeRepo) Applications(_ context.Context, limit int64) ([]*types.ApplicationRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.existing, nil
}

func TestSampleApplicationsAreValid(t *testing.T) {
	for _, app := range SampleApplications() {
		assert.NoError(t, validation.Struct(&app), app.OrgName)
	}
}

func TestSeedApplications(t *testing.T) {
	repo := &fakeRepo{}

	n, err := SeedApplications(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, len(SampleApplications()), n)
	assert.Len(t, repo.created, n)
}

func TestSeedApplications_SkipsWhenPresent(t *testing.T) {
	repo := &fakeRepo{existing: []*types.ApplicationRecord{{}}}

	n, err := SeedApplications(context.Background(), repo)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, repo.created)
}

func TestSeedApplications_Errors(t *testing.T) {
	_, err := SeedApplications(context.Background(), &fakeRepo{listErr: errors.New("unreachable")})
	assert.ErrorContains(t, err, "unreachable")

	repo := &fakeRepo{failAt: 2}
	n, err := SeedApplications(context.Background(), repo)
	assert.ErrorContains(t, err, "write rejected")
	assert.Equal(t, 1, n)
}
