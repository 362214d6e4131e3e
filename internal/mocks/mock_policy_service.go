package mocks

// MockPolicyService implements domain.PolicyService for testing
type MockPolicyService struct {
	AddPolicyFunc       func(role, resource, action string) error
	RemovePolicyFunc    func(role, resource, action string) error
	CheckPermissionFunc func(role, resource, action string) (bool, error)
	GetPoliciesFunc     func() [][]string

	AddCalls    [][]string
	RemoveCalls [][]string
}

// NewMockPolicyService creates a new MockPolicyService with default behaviors
func NewMockPolicyService() *MockPolicyService {
	return &MockPolicyService{}
}

// AddPolicy adds a policy rule
func (m *MockPolicyService) AddPolicy(role, resource, action string) error {
	m.AddCalls = append(m.AddCalls, []string{role, resource, action})
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(role, resource, action)
	}
	// Default behavior: success
	return nil
}

// RemovePolicy removes a policy rule
func (m *MockPolicyService) RemovePolicy(role, resource, action string) error {
	m.RemoveCalls = append(m.RemoveCalls, []string{role, resource, action})
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(role, resource, action)
	}
	// Default behavior: success
	return nil
}

// CheckPermission checks a role against a resource and action
func (m *MockPolicyService) CheckPermission(role, resource, action string) (bool, error) {
	if m.CheckPermissionFunc != nil {
		return m.CheckPermissionFunc(role, resource, action)
	}
	// Default behavior: denied
	return false, nil
}

// GetPolicies returns all policies
func (m *MockPolicyService) GetPolicies() [][]string {
	if m.GetPoliciesFunc != nil {
		return m.GetPoliciesFunc()
	}
	// Default behavior: empty
	return [][]string{}
}
