package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRole(t *testing.T) {
	cases := []struct {
		name  string
		roles []string
		want  Role
	}{
		{"single driver", []string{"Driver"}, RoleDriver},
		{"single owner", []string{"Owner"}, RoleOwner},
		{"admin wins over superadmin", []string{"SuperAdmin", "Admin"}, RoleAdmin},
		{"superadmin over owner", []string{"Owner", "SuperAdmin"}, RoleSuperAdmin},
		{"owner over driver", []string{"Driver", "Owner"}, RoleOwner},
		{"empty defaults to driver", nil, RoleDriver},
		{"unknown roles default to driver", []string{"Accountant", "Support"}, RoleDriver},
		{"unknown mixed with known", []string{"Accountant", "Owner"}, RoleOwner},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveRole(tc.roles))
		})
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []Role{RoleSuperAdmin, RoleAdmin, RoleOwner, RoleDriver} {
		assert.True(t, ValidRole(role))
	}
	assert.False(t, ValidRole(Role("Accountant")))
	assert.False(t, ValidRole(Role("")))
}
