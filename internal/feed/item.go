// Package feed derives the home feed from the content store: filtering,
// ordering, slicing and the load-more pagination state machine.
package feed

import (
	"encoding/json"

	"lumina/internal/content"
)

// Item is one feed entry. Kind says which of the three pointers is set.
type Item struct {
	Kind    content.Kind
	Article *content.Article
	Moment  *content.Moment
	Share   *content.ShareItem
}

func ArticleItem(a content.Article) Item { return Item{Kind: content.KindArticle, Article: &a} }
func MomentItem(m content.Moment) Item   { return Item{Kind: content.KindMoment, Moment: &m} }
func ShareItem(s content.ShareItem) Item { return Item{Kind: content.KindShare, Share: &s} }

func (it Item) ID() string {
	switch it.Kind {
	case content.KindArticle:
		return it.Article.ID
	case content.KindMoment:
		return it.Moment.ID
	case content.KindShare:
		return it.Share.ID
	}
	return ""
}

// DateLabel is the record's display date, e.g. "Oct 12, 2023" or "Yesterday".
func (it Item) DateLabel() string {
	switch it.Kind {
	case content.KindArticle:
		return it.Article.Date
	case content.KindMoment:
		return it.Moment.Date
	case content.KindShare:
		return it.Share.Date
	}
	return ""
}

func (it Item) Likes() int {
	switch it.Kind {
	case content.KindArticle:
		return it.Article.Likes
	case content.KindMoment:
		return it.Moment.Likes
	case content.KindShare:
		return it.Share.Likes
	}
	return 0
}

// Title is a one-line headline: the title for articles and shares, the text
// for moments.
func (it Item) Title() string {
	switch it.Kind {
	case content.KindArticle:
		return it.Article.Title
	case content.KindMoment:
		return it.Moment.Content
	case content.KindShare:
		return it.Share.Title
	}
	return ""
}

func (it Item) MarshalJSON() ([]byte, error) {
	var rec any
	switch it.Kind {
	case content.KindArticle:
		rec = it.Article
	case content.KindMoment:
		rec = it.Moment
	case content.KindShare:
		rec = it.Share
	}
	return json.Marshal(struct {
		Kind   content.Kind `json:"kind"`
		Record any          `json:"record"`
	}{it.Kind, rec})
}
