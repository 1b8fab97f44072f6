package model

// Repository is a repository hosted on the forge
type Repository struct {
	// Name is the repository full name ("owner/repo")
	Name string

	// URL is the clone URL handed to git
	URL string
}

// Key returns the identity used to deduplicate repositories
func (r Repository) Key() string {
	return r.Name + "\x00" + r.URL
}

// IsName reports whether name equals the repository name exactly
func (r Repository) IsName(name string) bool {
	return r.Name == name
}

func (r Repository) String() string {
	return r.Name
}

// RepositorySet is an insertion-ordered set of repositories keyed by name and URL
type RepositorySet struct {
	index map[string]int
	items []Repository
}

// NewRepositorySet creates an empty set
func NewRepositorySet() *RepositorySet {
	return &RepositorySet{index: make(map[string]int)}
}

// Add inserts repo unless an equal repository is already present.
// It reports whether the set changed.
func (s *RepositorySet) Add(repo Repository) bool {
	if s.index == nil {
		s.index = make(map[string]int)
	}

	if _, ok := s.index[repo.Key()]; ok {
		return false
	}

	s.index[repo.Key()] = len(s.items)
	s.items = append(s.items, repo)

	return true
}

// Len returns the number of repositories
func (s *RepositorySet) Len() int {
	return len(s.items)
}

// Items returns a copy of the repositories in insertion order
func (s *RepositorySet) Items() []Repository {
	out := make([]Repository, len(s.items))
	copy(out, s.items)

	return out
}
