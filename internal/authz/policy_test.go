package authz_test

import (
	"testing"

	"hivedesk/internal/authz"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	hr := authz.Identity{ID: "h1", Name: "Root", Role: "hr"}
	jane := authz.Identity{ID: "e1", Name: "Jane", Role: "employee"}

	tests := []struct {
		name        string
		caller      authz.Identity
		claimedName string
		claimedRole string
		want        bool
	}{
		{"hr can enter any scope", hr, "anyone", "employee", true},
		{"hr can enter its own scope", hr, "Root", "hr", true},
		{"employee own scope case-insensitive", jane, "jane", "employee", true},
		{"employee own scope exact", jane, "Jane", "EMPLOYEE", true},
		{"employee cannot enter another scope", jane, "bob", "employee", false},
		{"employee cannot claim hr scope", jane, "jane", "hr", false},
		{"unknown role denied", authz.Identity{ID: "x", Name: "X", Role: "auditor"}, "X", "employee", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.Authorize(tt.caller, tt.claimedName, tt.claimedRole))
		})
	}
}
