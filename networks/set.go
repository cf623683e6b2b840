package networks

// Set is an immutable snapshot of registered network profiles.  Profiles are
// unique by equality and iterate in the order they were first registered.
// A nil *Set is a valid empty set.
type Set struct {
	profiles []Profile
}

// newSet returns a set holding the non-nil profiles, deduplicated.
func newSet(profiles ...Profile) *Set {
	return (&Set{}).with(profiles...)
}

// Len returns the number of profiles in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.profiles)
}

// Contains returns whether a profile equal to p is a member of the set.
func (s *Set) Contains(p Profile) bool {
	if s == nil || isNilProfile(p) {
		return false
	}
	for _, member := range s.profiles {
		if sameProfile(member, p) {
			return true
		}
	}
	return false
}

// Profiles returns the members of the set.  The returned slice is a copy
// and may be modified by the caller.
func (s *Set) Profiles() []Profile {
	if s == nil {
		return nil
	}
	profiles := make([]Profile, len(s.profiles))
	copy(profiles, s.profiles)
	return profiles
}

// ForEach calls fn for each member of the set until fn returns false.
func (s *Set) ForEach(fn func(Profile) bool) {
	if s == nil {
		return
	}
	for _, p := range s.profiles {
		if !fn(p) {
			return
		}
	}
}

// Equal returns whether both sets hold equal members, regardless of order.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	equal := true
	s.ForEach(func(p Profile) bool {
		equal = other.Contains(p)
		return equal
	})
	return equal
}

// with returns a set holding the members of s and the given profiles.  When
// every given profile is already a member s itself is returned.
func (s *Set) with(profiles ...Profile) *Set {
	var added []Profile
	for _, p := range profiles {
		if isNilProfile(p) || s.Contains(p) || containsProfile(added, p) {
			continue
		}
		added = append(added, p)
	}
	if len(added) == 0 && s != nil {
		return s
	}

	merged := make([]Profile, 0, s.Len()+len(added))
	if s != nil {
		merged = append(merged, s.profiles...)
	}
	merged = append(merged, added...)
	return &Set{profiles: merged}
}

// without returns a set holding the members of s except those equal to p.
// When p is not a member s itself is returned.
func (s *Set) without(p Profile) *Set {
	if !s.Contains(p) {
		return s
	}
	kept := make([]Profile, 0, s.Len()-1)
	for _, member := range s.profiles {
		if sameProfile(member, p) {
			continue
		}
		kept = append(kept, member)
	}
	return &Set{profiles: kept}
}

func containsProfile(profiles []Profile, p Profile) bool {
	for _, member := range profiles {
		if sameProfile(member, p) {
			return true
		}
	}
	return false
}
