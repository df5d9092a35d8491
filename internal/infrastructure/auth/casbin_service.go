package auth

import (
	"fmt"
	"log/slog"

	"github.com/Duggineniakhil/Vectra/internal/config"
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// rbacModel authorizes a role subject ("role_ADMIN") against a route pattern
// and an HTTP method regex.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch2(r.obj, p.obj) && regexMatch(r.act, p.act)
`

// RoleSubject maps a role to its casbin subject
func RoleSubject(role string) string {
	return "role_" + role
}

// CasbinService owns the enforcer backed by the casbin_rule table
type CasbinService struct{ E *casbin.Enforcer }

// NewCasbinService loads the model from modelPath, or the built-in RBAC
// model when modelPath is empty, and the policies stored in db.
func NewCasbinService(db *gorm.DB, modelPath string) (*CasbinService, error) {
	adp, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("casbin adapter: %w", err)
	}

	var m model.Model
	if modelPath != "" {
		m, err = model.NewModelFromFile(modelPath)
	} else {
		m, err = model.NewModelFromString(rbacModel)
	}
	if err != nil {
		return nil, fmt.Errorf("casbin model: %w", err)
	}

	e, err := casbin.NewEnforcer(m, adp)
	if err != nil {
		return nil, fmt.Errorf("casbin enforcer: %w", err)
	}
	if err := e.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("casbin load policy: %w", err)
	}
	return &CasbinService{E: e}, nil
}

// Seed installs seeds when the policy table is empty. It returns the number
// of rules added.
func (s *CasbinService) Seed(seeds []config.PolicySeed) (int, error) {
	existing, err := s.E.GetPolicy()
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	added := 0
	for _, p := range seeds {
		ok, err := s.E.AddPolicy(p.Subject, p.Object, p.Action)
		if err != nil {
			return added, fmt.Errorf("seed policy %s %s %s: %w", p.Subject, p.Object, p.Action, err)
		}
		if ok {
			added++
		}
	}
	slog.Info("casbin policies seeded", slog.Int("count", added))
	return added, nil
}
