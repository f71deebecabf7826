package infra

import "github.com/casbin/casbin/v2"

// NewEnforcer loads the static role policy. Roles are only "hr" and
// "employee"; the policy file maps each to the resource:action pairs it may
// perform.
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath, policyPath)
}
