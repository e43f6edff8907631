package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/restobill/restobill/pkg/types"
)

func TestIsKnownModule(t *testing.T) {
	s := NewService(nil, nil)

	assert.True(t, s.IsKnownModule(types.ModuleBilling))
	assert.True(t, s.IsKnownModule(types.ModuleAnalyticsDashboard))
	assert.False(t, s.IsKnownModule("payments"))
	assert.False(t, s.IsKnownModule(""))
	assert.False(t, s.IsKnownModule("Billing"))
}

func TestKnownModuleNamesAreUnique(t *testing.T) {
	seen := map[types.ModuleName]bool{}
	for _, name := range types.KnownModuleNames {
		assert.False(t, seen[name], "duplicate module name %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, 14)
}
