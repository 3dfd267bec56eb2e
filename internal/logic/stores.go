package logic

import (
	"sort"
	"sync"

	"copticsocial/internal/domain"
)

// MemoryGroupStore is an in-memory implementation of GroupStore
type MemoryGroupStore struct {
	mu     sync.RWMutex
	groups map[string]*domain.Group
}

// NewMemoryGroupStore creates a new memory-based group store
func NewMemoryGroupStore() *MemoryGroupStore {
	return &MemoryGroupStore{
		groups: make(map[string]*domain.Group),
	}
}

func (s *MemoryGroupStore) GetGroup(id string) *domain.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.groups[id]
	if !ok {
		return nil
	}
	cp := *g
	return &cp
}

// GetAllGroups returns copies ordered featured first, then by name
func (s *MemoryGroupStore) GetAllGroups() []*domain.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Group, 0, len(s.groups))
	for _, g := range s.groups {
		cp := *g
		result = append(result, &cp)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].IsFeatured != result[j].IsFeatured {
			return result[i].IsFeatured
		}
		return result[i].Name < result[j].Name
	})
	return result
}

func (s *MemoryGroupStore) AddGroup(group *domain.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *group
	s.groups[group.ID] = &cp
}

func (s *MemoryGroupStore) UpdateGroup(group *domain.Group) {
	s.AddGroup(group)
}

func (s *MemoryGroupStore) DeleteGroup(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.groups, id)
}

// MemoryMembershipStore is an in-memory implementation of MembershipStore
type MemoryMembershipStore struct {
	mu       sync.RWMutex
	members  map[string]map[string]Member // group id -> user id -> member
	requests map[string]JoinRequest       // request id -> request
}

// NewMemoryMembershipStore creates a new memory-based membership store
func NewMemoryMembershipStore() *MemoryMembershipStore {
	return &MemoryMembershipStore{
		members:  make(map[string]map[string]Member),
		requests: make(map[string]JoinRequest),
	}
}

func (s *MemoryMembershipStore) GetMember(groupID, userID string) *Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.members[groupID][userID]
	if !ok {
		return nil
	}
	return &m
}

func (s *MemoryMembershipStore) ActiveMembers(groupID string) []Member {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []Member
	for _, m := range s.members[groupID] {
		if m.IsActive {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UserID < result[j].UserID })
	return result
}

func (s *MemoryMembershipStore) GroupsForUser(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for groupID, members := range s.members {
		if m, ok := members[userID]; ok && m.IsActive {
			ids = append(ids, groupID)
		}
	}
	sort.Strings(ids)
	return ids
}

func (s *MemoryMembershipStore) SaveMember(member Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.members[member.GroupID] == nil {
		s.members[member.GroupID] = make(map[string]Member)
	}
	s.members[member.GroupID][member.UserID] = member
}

func (s *MemoryMembershipStore) PendingRequest(groupID, userID string) *JoinRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.requests {
		if r.GroupID == groupID && r.UserID == userID && r.Status == JoinRequestPending {
			req := r
			return &req
		}
	}
	return nil
}

func (s *MemoryMembershipStore) SaveJoinRequest(req JoinRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[req.ID] = req
}
