package store

import (
	"context"
	"fmt"

	"donoru/internal/utils"
	"donoru/pkg/types"
)

var applicationCollection = utils.CollectionName(types.Application{})

type ApplicationRepository struct {
	documents *DocumentStore
}

func NewApplicationRepository(documents *DocumentStore) *ApplicationRepository {
	return &ApplicationRepository{documents: documents}
}

// CreateApplication stores an already validated application and returns its id.
func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *types.Application) (string, error) {
	id, err := r.documents.CreateDocument(ctx, applicationCollection, app)
	if err != nil {
		return "", fmt.Errorf("failed to create application: %w", err)
	}

	return id, nil
}

func (r *ApplicationRepository) Applications(ctx context.Context, limit int64) ([]*types.ApplicationRecord, error) {
	var apps = make([]*types.ApplicationRecord, 0)
	if err := r.documents.Documents(ctx, applicationCollection, limit, &apps); err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	return apps, nil
}

func (r *ApplicationRepository) DescribeConnection(ctx context.Context) types.ConnectionReport {
	return r.documents.DescribeConnection(ctx)
}
