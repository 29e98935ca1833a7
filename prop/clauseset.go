package prop

// clauseSet is a deduplicated collection of *CnfClause, keyed by each
// clause's canonical Key(). hashicorp/go-set's generic Set[T] requires a
// comparable element type with natural equality, which two pointers built
// from equal-but-distinct literal sets do not have; clauseSet supplies the
// by-value identity that ResolutionKB's set semantics need instead.
type clauseSet struct {
	byKey map[string]*CnfClause
}

func newClauseSet() *clauseSet {
	return &clauseSet{byKey: make(map[string]*CnfClause)}
}

// add inserts c, returning true if it was not already present.
func (s *clauseSet) add(c *CnfClause) bool {
	k := c.Key()
	if _, ok := s.byKey[k]; ok {
		return false
	}
	s.byKey[k] = c
	return true
}

func (s *clauseSet) contains(c *CnfClause) bool {
	_, ok := s.byKey[c.Key()]
	return ok
}

func (s *clauseSet) size() int { return len(s.byKey) }

// slice returns the clauses in unspecified order.
func (s *clauseSet) slice() []*CnfClause {
	out := make([]*CnfClause, 0, len(s.byKey))
	for _, c := range s.byKey {
		out = append(out, c)
	}
	return out
}
