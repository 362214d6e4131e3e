package mocks

import "github.com/dawabag/portalsvc/domain"

// MockCasbinEnforcer implements domain.CasbinEnforcer for testing
type MockCasbinEnforcer struct {
	AddPolicyFunc    func(params ...interface{}) (bool, error)
	RemovePolicyFunc func(params ...interface{}) (bool, error)
	EnforceFunc      func(rvals ...interface{}) (bool, error)
	GetPolicyFunc    func() ([][]string, error)
	SavePolicyFunc   func() error

	SaveCalls int
	policies  [][]string
}

var _ domain.CasbinEnforcer = (*MockCasbinEnforcer)(nil)

// NewMockCasbinEnforcer creates a new MockCasbinEnforcer with default behaviors
func NewMockCasbinEnforcer() *MockCasbinEnforcer {
	return &MockCasbinEnforcer{}
}

// AddPolicy adds a policy rule
func (m *MockCasbinEnforcer) AddPolicy(params ...interface{}) (bool, error) {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(params...)
	}
	// Default behavior: record the rule
	rule := make([]string, 0, len(params))
	for _, p := range params {
		if s, ok := p.(string); ok {
			rule = append(rule, s)
		}
	}
	m.policies = append(m.policies, rule)
	return true, nil
}

// RemovePolicy removes a policy rule
func (m *MockCasbinEnforcer) RemovePolicy(params ...interface{}) (bool, error) {
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(params...)
	}

	target := make([]string, 0, len(params))
	for _, p := range params {
		if s, ok := p.(string); ok {
			target = append(target, s)
		}
	}
	for i, rule := range m.policies {
		if equalRule(rule, target) {
			m.policies = append(m.policies[:i], m.policies[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Enforce checks whether a request is allowed
func (m *MockCasbinEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(rvals...)
	}

	request := make([]string, 0, len(rvals))
	for _, v := range rvals {
		if s, ok := v.(string); ok {
			request = append(request, s)
		}
	}
	for _, rule := range m.policies {
		if equalRule(rule, request) {
			return true, nil
		}
	}
	return false, nil
}

// GetPolicy returns all recorded rules
func (m *MockCasbinEnforcer) GetPolicy() ([][]string, error) {
	if m.GetPolicyFunc != nil {
		return m.GetPolicyFunc()
	}
	result := make([][]string, len(m.policies))
	for i, rule := range m.policies {
		result[i] = append([]string(nil), rule...)
	}
	return result, nil
}

// SavePolicy persists the rules
func (m *MockCasbinEnforcer) SavePolicy() error {
	m.SaveCalls++
	if m.SavePolicyFunc != nil {
		return m.SavePolicyFunc()
	}
	// Default behavior: success
	return nil
}

// SetPolicies seeds the internal rules (test helper)
func (m *MockCasbinEnforcer) SetPolicies(policies [][]string) {
	m.policies = make([][]string, len(policies))
	for i, rule := range policies {
		m.policies[i] = append([]string(nil), rule...)
	}
}

func equalRule(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
