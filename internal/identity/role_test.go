package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRoleMetadataCombinations(t *testing.T) {
	adminBag := map[string]interface{}{"role": "admin"}
	plainBag := map[string]interface{}{"theme": "dark"}

	tests := []struct {
		name string
		app  map[string]interface{}
		user map[string]interface{}
		want Role
	}{
		{"both bags carry admin", adminBag, adminBag, RoleAdmin},
		{"app metadata alone is sufficient", adminBag, nil, RoleAdmin},
		{"user metadata alone is sufficient", nil, adminBag, RoleAdmin},
		{"neither bag carries admin", nil, nil, RoleStandard},
		{"bags present without role marker", plainBag, plainBag, RoleStandard},
		{"non-admin role value", map[string]interface{}{"role": "editor"}, nil, RoleStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := &Identity{ID: "u-1", Email: "u@example.com", AppMetadata: tt.app, UserMetadata: tt.user}
			assert.Equal(t, tt.want, ResolveRole(id))
		})
	}
}

func TestResolveRoleNilIdentity(t *testing.T) {
	assert.Equal(t, RoleStandard, ResolveRole(nil))
}

func TestResolveRoleNonStringRoleValue(t *testing.T) {
	id := &Identity{AppMetadata: map[string]interface{}{"role": 42}}
	assert.Equal(t, RoleStandard, ResolveRole(id))
}
