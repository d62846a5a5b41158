package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Org size ranges
const (
	OrgSizeSolo    = "solo"
	OrgSize1To5    = "1-5"
	OrgSize6To20   = "6-20"
	OrgSize21To50  = "21-50"
	OrgSize51To200 = "51-200"
	OrgSizeOver200 = "200+"
)

// Annual budget ranges
const (
	BudgetUnder250k  = "<250k"
	Budget250kTo500k = "250k-500k"
	Budget500kTo1m   = "500k-1m"
	Budget1mTo5m     = "1m-5m"
	BudgetOver5m     = "5m+"
)

const (
	TierCore    = "core"
	TierPremium = "premium"

	BillingMonthly = "monthly"
	BillingAnnual  = "annual"
)

// Application is submitted from the Donor U landing page and stored in the
// "application" collection.
type Application struct {
	Name        string  `json:"name" bson:"name" validate:"required"`
	Email       string  `json:"email" bson:"email" validate:"required,email"`
	OrgName     string  `json:"org_name" bson:"org_name" validate:"required"`
	OrgSize     *string `json:"org_size" bson:"org_size" validate:"omitempty,oneof=solo 1-5 6-20 21-50 51-200 200+"`
	BudgetRange *string `json:"budget_range" bson:"budget_range" validate:"omitempty,oneof=<250k 250k-500k 500k-1m 1m-5m 5m+"`
	TopGoal     *string `json:"top_goal" bson:"top_goal" validate:"omitempty,max=500"`
	Tier        string  `json:"tier" bson:"tier" validate:"required,oneof=core premium"`
	Billing     string  `json:"billing" bson:"billing" validate:"required,oneof=monthly annual"`
	Scholarship bool    `json:"scholarship" bson:"scholarship"`
	Notes       *string `json:"notes" bson:"notes" validate:"omitempty,max=1000"`
	Source      *string `json:"source" bson:"source"`
}

// ApplicationRecord is an Application as read back from the store.
type ApplicationRecord struct {
	Application `bson:",inline"`

	ID        primitive.ObjectID `bson:"_id"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}
