package validation

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"donoru/internal/utils"
	"donoru/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validApplication() types.Application {
	return types.Application{
		Name:    "Grace Hopper",
		Email:   "grace@example.org",
		OrgName: "Navy League",
		Tier:    types.TierCore,
		Billing: types.BillingMonthly,
	}
}

func requireErrors(t *testing.T, err error) Errors {
	t.Helper()

	var verrs Errors
	require.Error(t, err)
	require.True(t, errors.As(err, &verrs), "expected validation.Errors, got %T", err)
	return verrs
}

func TestStruct_Application(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(a *types.Application)
		wantFields []string
		wantCode   string
	}{
		{
			name:   "minimal valid",
			mutate: func(a *types.Application) {},
		},
		{
			name: "fully populated",
			mutate: func(a *types.Application) {
				a.OrgSize = utils.StringPtr(types.OrgSize51To200)
				a.BudgetRange = utils.StringPtr(types.BudgetUnder250k)
				a.TopGoal = utils.StringPtr(strings.Repeat("g", 500))
				a.Tier = types.TierPremium
				a.Billing = types.BillingAnnual
				a.Scholarship = true
				a.Notes = utils.StringPtr(strings.Repeat("n", 1000))
				a.Source = utils.StringPtr("newsletter")
			},
		},
		{
			name:       "missing tier",
			mutate:     func(a *types.Application) { a.Tier = "" },
			wantFields: []string{"tier"},
			wantCode:   CodeMissing,
		},
		{
			name:       "missing name",
			mutate:     func(a *types.Application) { a.Name = "" },
			wantFields: []string{"name"},
			wantCode:   CodeMissing,
		},
		{
			name:       "malformed email",
			mutate:     func(a *types.Application) { a.Email = "not-an-email" },
			wantFields: []string{"email"},
			wantCode:   CodeInvalidEmail,
		},
		{
			name:       "org size outside enumeration",
			mutate:     func(a *types.Application) { a.OrgSize = utils.StringPtr("huge") },
			wantFields: []string{"org_size"},
			wantCode:   CodeInvalidEnum,
		},
		{
			name:       "budget range outside enumeration",
			mutate:     func(a *types.Application) { a.BudgetRange = utils.StringPtr("10m+") },
			wantFields: []string{"budget_range"},
			wantCode:   CodeInvalidEnum,
		},
		{
			name:       "unknown billing",
			mutate:     func(a *types.Application) { a.Billing = "weekly" },
			wantFields: []string{"billing"},
			wantCode:   CodeInvalidEnum,
		},
		{
			name:       "top goal too long",
			mutate:     func(a *types.Application) { a.TopGoal = utils.StringPtr(strings.Repeat("g", 501)) },
			wantFields: []string{"top_goal"},
			wantCode:   CodeTooLong,
		},
		{
			name:       "notes too long",
			mutate:     func(a *types.Application) { a.Notes = utils.StringPtr(strings.Repeat("n", 1001)) },
			wantFields: []string{"notes"},
			wantCode:   CodeTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := validApplication()
			tt.mutate(&app)

			err := Struct(&app)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			verrs := requireErrors(t, err)
			assert.Equal(t, tt.wantFields, verrs.Fields())
			assert.Equal(t, tt.wantCode, verrs[0].Code)
			assert.NotEmpty(t, verrs[0].Message)
		})
	}
}

func TestStruct_ReportsEveryField(t *testing.T) {
	verrs := requireErrors(t, Struct(&types.Application{}))

	assert.ElementsMatch(t, []string{"name", "email", "org_name", "tier", "billing"}, verrs.Fields())
	for _, fe := range verrs {
		assert.Equal(t, CodeMissing, fe.Code)
	}
}

func TestStruct_Deterministic(t *testing.T) {
	app := validApplication()
	app.Email = "nope"
	app.OrgSize = utils.StringPtr("huge")

	first := requireErrors(t, Struct(&app))
	second := requireErrors(t, Struct(&app))
	assert.Equal(t, first, second)
}

func TestStruct_NotAStruct(t *testing.T) {
	err := Struct("application")
	require.Error(t, err)

	var verrs Errors
	assert.False(t, errors.As(err, &verrs))
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantCode  string
	}{
		{
			name: "valid with defaults",
			body: `{"name":"Ada","email":"ada@example.org","org_name":"Engines","tier":"premium","billing":"annual"}`,
		},
		{
			name: "unknown fields are ignored",
			body: `{"name":"Ada","email":"ada@example.org","org_name":"Engines","tier":"core","billing":"monthly","referrer":"x"}`,
		},
		{
			name:      "wrong type",
			body:      `{"name":"Ada","email":"ada@example.org","org_name":"Engines","tier":"core","billing":"monthly","scholarship":"yes"}`,
			wantField: "scholarship",
			wantCode:  CodeInvalidType,
		},
		{
			name:      "missing tier",
			body:      `{"name":"Ada","email":"ada@example.org","org_name":"Engines","billing":"monthly"}`,
			wantField: "tier",
			wantCode:  CodeMissing,
		},
		{
			name:      "malformed json",
			body:      `{"name":`,
			wantField: BodyField,
			wantCode:  CodeInvalidJSON,
		},
		{
			name:      "empty body",
			body:      ``,
			wantField: BodyField,
			wantCode:  CodeMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var app types.Application
			err := DecodeJSON(strings.NewReader(tt.body), &app)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, "Ada", app.Name)
				assert.False(t, app.Scholarship)
				return
			}

			verrs := requireErrors(t, err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field)
			assert.Equal(t, tt.wantCode, verrs[0].Code)
		})
	}
}

func TestDecodeJSON_BodyTooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("a", 64) + `"}`
	r := http.MaxBytesReader(httptest.NewRecorder(), io.NopCloser(strings.NewReader(body)), 16)

	var app types.Application
	verrs := requireErrors(t, DecodeJSON(r, &app))
	require.Len(t, verrs, 1)
	assert.Equal(t, BodyField, verrs[0].Field)
	assert.Equal(t, CodeTooLarge, verrs[0].Code)
}

type limitQuery struct {
	Limit *int64 `form:"limit" validate:"omitempty,min=0"`
}

func TestDecodeQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit *int64
		wantCode  string
	}{
		{name: "absent", query: ""},
		{name: "set", query: "limit=2", wantLimit: int64Ptr(2)},
		{name: "zero", query: "limit=0", wantLimit: int64Ptr(0)},
		{name: "negative", query: "limit=-1", wantCode: CodeTooSmall},
		{name: "not an integer", query: "limit=ten", wantCode: CodeInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			var q limitQuery
			err = DecodeQuery(values, &q)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantLimit, q.Limit)
				return
			}

			verrs := requireErrors(t, err)
			require.Len(t, verrs, 1)
			assert.Equal(t, "limit", verrs[0].Field)
			assert.Equal(t, tt.wantCode, verrs[0].Code)
		})
	}
}

func TestErrors_Error(t *testing.T) {
	err := Errors{
		{Field: "tier", Code: CodeMissing, Message: "field required"},
		{Field: "email", Code: CodeInvalidEmail, Message: "value is not a valid email address"},
	}

	assert.Equal(t, "validation failed: tier: field required; email: value is not a valid email address", err.Error())
}

func int64Ptr(i int64) *int64 {
	return &i
}
