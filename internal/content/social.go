package content

import "slices"

const commentDateLayout = "Jan 2, 2006"

// Like adds one like to the record id of the given kind. It reports whether
// a record was found; an unknown id or kind changes nothing.
func (s *Store) Like(id string, kind Kind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case KindArticle:
		return modifyRecord(s, &s.articles, "articles", "like", id, func(a *Article) { a.Likes++ })
	case KindMoment:
		return modifyRecord(s, &s.moments, "moments", "like", id, func(m *Moment) { m.Likes++ })
	case KindShare:
		return modifyRecord(s, &s.shares, "shares", "like", id, func(si *ShareItem) { si.Likes++ })
	}
	return false
}

// AddComment appends a comment by author to an article or moment. Shares
// carry no comments. Text is stored as given; rejecting blank text is the
// caller's job. It reports whether a record was found.
func (s *Store) AddComment(id string, kind Kind, text, author string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Comment{
		ID:       s.newID(),
		Username: author,
		Content:  text,
		Date:     s.now().Format(commentDateLayout),
	}

	switch kind {
	case KindArticle:
		return modifyRecord(s, &s.articles, "articles", "comment", id, func(a *Article) {
			a.Comments = append(slices.Clip(a.Comments), c)
		})
	case KindMoment:
		return modifyRecord(s, &s.moments, "moments", "comment", id, func(m *Moment) {
			m.Comments = append(slices.Clip(m.Comments), c)
		})
	}
	return false
}
