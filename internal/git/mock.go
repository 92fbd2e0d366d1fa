package git

// Compile-time checks that the mocks implement their interfaces.
var (
	_ Repository   = (*MockRepository)(nil)
	_ ConfigSource = (*MockConfigSource)(nil)
)

// MockRepository is a configurable mock implementation of Repository for
// testing. Each method is backed by a function field. If the function field
// is nil, the method returns sensible zero values.
type MockRepository struct {
	PathFunc             func() string
	WorkingDirectoryFunc func() string
	IsBareFunc           func() bool
	HeadFunc             func() (string, error)
	OpenConfigFunc       func() (ConfigSource, error)
}

func (m *MockRepository) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return ""
}

func (m *MockRepository) WorkingDirectory() string {
	if m.WorkingDirectoryFunc != nil {
		return m.WorkingDirectoryFunc()
	}
	return ""
}

func (m *MockRepository) IsBare() bool {
	if m.IsBareFunc != nil {
		return m.IsBareFunc()
	}
	return false
}

func (m *MockRepository) Head() (string, error) {
	if m.HeadFunc != nil {
		return m.HeadFunc()
	}
	return "", nil
}

func (m *MockRepository) OpenConfig() (ConfigSource, error) {
	if m.OpenConfigFunc != nil {
		return m.OpenConfigFunc()
	}
	return &MockConfigSource{}, nil
}

// MockConfigSource is a configurable mock implementation of ConfigSource.
// With a nil LookupFunc every key resolves to ErrEntryNotFound, which models
// an empty configuration store.
type MockConfigSource struct {
	LookupFunc func(key string) (Entry, error)
}

func (m *MockConfigSource) Lookup(key string) (Entry, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(key)
	}
	return Entry{}, ErrEntryNotFound
}
