package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restobill/restobill/pkg/apperr"
	"github.com/restobill/restobill/pkg/types"
)

func TestValidatePlanInput(t *testing.T) {
	tests := []struct {
		name    string
		in      CreatePlanInput
		wantErr bool
	}{
		{name: "valid", in: CreatePlanInput{Name: "Starter", MonthlyPrice: 999, YearlyPrice: 9999}},
		{name: "zero prices ok", in: CreatePlanInput{Name: "Free", MonthlyPrice: 0, YearlyPrice: 0}},
		{name: "negative monthly", in: CreatePlanInput{Name: "Starter", MonthlyPrice: -1, YearlyPrice: 0}, wantErr: true},
		{name: "negative yearly", in: CreatePlanInput{Name: "Starter", MonthlyPrice: 0, YearlyPrice: -1}, wantErr: true},
		{name: "empty name", in: CreatePlanInput{Name: "", MonthlyPrice: 100, YearlyPrice: 100}, wantErr: true},
		{name: "blank name", in: CreatePlanInput{Name: "   ", MonthlyPrice: 100, YearlyPrice: 100}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePlanInput(&tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.Is(err, apperr.KindValidation))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRenameTarget(t *testing.T) {
	name := func(s string) *string { return &s }

	tests := []struct {
		name    string
		current string
		in      UpdatePlanInput
		want    string
	}{
		{name: "no name in patch", current: "Starter", in: UpdatePlanInput{}},
		{name: "same name", current: "Starter", in: UpdatePlanInput{Name: name("Starter")}},
		{name: "same name with whitespace", current: "Starter", in: UpdatePlanInput{Name: name("  Starter ")}},
		{name: "actual rename", current: "Starter", in: UpdatePlanInput{Name: name("Growth")}, want: "Growth"},
		{name: "rename trims", current: "Starter", in: UpdatePlanInput{Name: name(" Growth ")}, want: "Growth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renameTarget(tt.current, &tt.in))
		})
	}
}

func TestInvalidModuleNames(t *testing.T) {
	toggles := []*ModuleToggle{
		{ModuleName: types.ModuleBilling, IsEnabled: true},
		{ModuleName: "bogus", IsEnabled: true},
		{ModuleName: types.ModuleInventory, IsEnabled: false},
		{ModuleName: "bogus", IsEnabled: false},
		{ModuleName: "also_bogus", IsEnabled: true},
	}

	bad := invalidModuleNames(toggles)
	assert.Equal(t, []string{"bogus", "also_bogus"}, bad)
}

func TestInvalidModuleNamesAllValid(t *testing.T) {
	toggles := []*ModuleToggle{
		{ModuleName: types.ModuleBilling, IsEnabled: true},
		{ModuleName: types.ModuleReports, IsEnabled: true},
	}
	assert.Empty(t, invalidModuleNames(toggles))
	assert.Empty(t, invalidModuleNames(nil))
}
