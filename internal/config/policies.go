package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PolicySeed is one casbin (subject, object, action) rule
type PolicySeed struct {
	Subject string `yaml:"sub"`
	Object  string `yaml:"obj"`
	Action  string `yaml:"act"`
}

// DefaultPolicySeeds are installed when neither the database nor a seed file
// provides any policy.
func DefaultPolicySeeds() []PolicySeed {
	return []PolicySeed{
		{Subject: "role_ADMIN", Object: "/api/v1/admin/*", Action: "(GET|POST|PATCH|DELETE)"},
		{Subject: "role_ADMIN", Object: "/api/v1/auth/me", Action: "GET"},
		{Subject: "role_RIDER", Object: "/api/v1/auth/me", Action: "GET"},
		{Subject: "role_DRIVER", Object: "/api/v1/auth/me", Action: "GET"},
	}
}

// LoadPolicySeeds reads policy seeds from a YAML file of the form
//
//	policies:
//	  - {sub: role_ADMIN, obj: /api/v1/admin/*, act: "(GET|POST)"}
func LoadPolicySeeds(path string) ([]PolicySeed, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read policy seed file: %w", err)
	}

	var file struct {
		Policies []PolicySeed `yaml:"policies"`
	}
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("could not parse policy seed yaml: %w", err)
	}
	for i, p := range file.Policies {
		if p.Subject == "" || p.Object == "" || p.Action == "" {
			return nil, fmt.Errorf("policy seed %d is incomplete", i)
		}
	}
	return file.Policies, nil
}
