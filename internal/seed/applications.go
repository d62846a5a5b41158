package seed

import (
	"context"
	"fmt"

	"donoru/internal/utils"
	"donoru/internal/validation"
	"donoru/pkg/types"
)

// ApplicationWriter is the part of the application repository seeding needs.
type ApplicationWriter interface {
	CreateApplication(ctx context.Context, app *types.Application) (string, error)
	Applications(ctx context.Context, limit int64) ([]*types.ApplicationRecord, error)
}

// SampleApplications is the fixture set loaded into an empty development
// database so the landing page admin views have something to show.
func SampleApplications() []types.Application {
	return []types.Application{
		{
			Name:        "Maya Thompson",
			Email:       "maya@riversidefoodbank.org",
			OrgName:     "Riverside Food Bank",
			OrgSize:     utils.StringPtr(types.OrgSize6To20),
			BudgetRange: utils.StringPtr(types.Budget500kTo1m),
			TopGoal:     utils.StringPtr("Grow monthly donors from 40 to 100"),
			Tier:        types.TierCore,
			Billing:     types.BillingMonthly,
			Source:      utils.StringPtr("newsletter"),
		},
		{
			Name:        "Daniel Okafor",
			Email:       "daniel@brightpathmentors.org",
			OrgName:     "Bright Path Mentors",
			OrgSize:     utils.StringPtr(types.OrgSize1To5),
			BudgetRange: utils.StringPtr(types.BudgetUnder250k),
			TopGoal:     utils.StringPtr("Land our first major gift"),
			Tier:        types.TierCore,
			Billing:     types.BillingAnnual,
			Scholarship: true,
			Notes:       utils.StringPtr("All volunteer staff, applying for the scholarship seat"),
		},
		{
			Name:        "Priya Raman",
			Email:       "priya@harborhealthalliance.org",
			OrgName:     "Harbor Health Alliance",
			OrgSize:     utils.StringPtr(types.OrgSize51To200),
			BudgetRange: utils.StringPtr(types.Budget1mTo5m),
			Tier:        types.TierPremium,
			Billing:     types.BillingAnnual,
			Source:      utils.StringPtr("conference"),
		},
		{
			Name:    "Sam Castillo",
			Email:   "sam@solostudio.org",
			OrgName: "Castillo Arts Fund",
			OrgSize: utils.StringPtr(types.OrgSizeSolo),
			Tier:    types.TierCore,
			Billing: types.BillingMonthly,
		},
	}
}

// SeedApplications validates and inserts the sample applications. It does
// nothing when the collection already holds applications, so it can be
// rerun safely.
func SeedApplications(ctx context.Context, repo ApplicationWriter) (int, error) {
	applications := SampleApplications()

	for i := range applications {
		if err := validation.Struct(&applications[i]); err != nil {
			return 0, fmt.Errorf("sample application %d is invalid: %w", i, err)
		}
	}

	existing, err := repo.Applications(ctx, 1)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing applications: %w", err)
	}

	if len(existing) > 0 {
		fmt.Println("Applications already present, skipping seed")
		return 0, nil
	}

	fmt.Printf("Seeding %d applications...\n", len(applications))

	inserted := 0
	for i := range applications {
		app := &applications[i]
		id, err := repo.CreateApplication(ctx, app)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert application for %s: %w", app.OrgName, err)
		}
		fmt.Printf("  Inserted %s (id: %s)\n", app.OrgName, id)
		inserted++
	}

	fmt.Printf("\nSeed complete: %d inserted\n", inserted)
	return inserted, nil
}
