package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"lumina/internal/content"

	"go.uber.org/zap"
)

// Defaults mirror what the admin forms fill in for blank fields.
const (
	defaultCategory = "Life"
	defaultReadTime = "5 min read"
	justNow         = "Just now"
	untitled        = "Untitled"

	articleDateLayout = "Jan 2, 2006"
	galleryDateLayout = "2006-01-02"
)

func Articles(s *content.Store, now func() time.Time, log *zap.Logger) *Collection[content.Article] {
	return &Collection[content.Article]{
		name: "articles", list: s.Articles, get: s.Article,
		add: s.AddArticle, update: s.UpdateArticle, remove: s.RemoveArticle,
		id:   func(a *content.Article) *string { return &a.ID },
		tags: func(a content.Article) []string { return a.Tags },
		prepare: func(a *content.Article) error {
			a.Title = strings.TrimSpace(a.Title)
			if a.Title == "" {
				return errors.New("title required")
			}
			if a.Category = strings.TrimSpace(a.Category); a.Category == "" {
				a.Category = defaultCategory
			}
			if a.ReadTime = strings.TrimSpace(a.ReadTime); a.ReadTime == "" {
				a.ReadTime = defaultReadTime
			}
			if a.Date = strings.TrimSpace(a.Date); a.Date == "" {
				a.Date = now().Format(articleDateLayout)
			}
			a.Tags = cleanList(a.Tags)
			if a.Comments == nil {
				a.Comments = []content.Comment{}
			}
			return nil
		},
		keep: func(dst *content.Article, old content.Article) {
			dst.Likes, dst.Comments = old.Likes, old.Comments
		},
		log: log,
	}
}

func Moments(s *content.Store, now func() time.Time, log *zap.Logger) *Collection[content.Moment] {
	return &Collection[content.Moment]{
		name: "moments", list: s.Moments, get: s.Moment,
		add: s.AddMoment, update: s.UpdateMoment, remove: s.RemoveMoment,
		id:   func(m *content.Moment) *string { return &m.ID },
		tags: func(m content.Moment) []string { return m.Tags },
		prepare: func(m *content.Moment) error {
			m.Content = strings.TrimSpace(m.Content)
			if m.Content == "" {
				return errors.New("content required")
			}
			if m.Date = strings.TrimSpace(m.Date); m.Date == "" {
				m.Date = justNow
			}
			m.Images = cleanList(m.Images)
			m.Tags = cleanList(m.Tags)
			if len(m.Tags) == 0 {
				if found := content.ExtractTags(m.Content); found != nil {
					m.Tags = found
				}
			}
			if m.Comments == nil {
				m.Comments = []content.Comment{}
			}
			return nil
		},
		keep: func(dst *content.Moment, old content.Moment) {
			dst.Likes, dst.Comments = old.Likes, old.Comments
		},
		log: log,
	}
}

func Shares(s *content.Store, log *zap.Logger) *Collection[content.ShareItem] {
	return &Collection[content.ShareItem]{
		name: "shares", list: s.Shares, get: s.Share,
		add: s.AddShare, update: s.UpdateShare, remove: s.RemoveShare,
		id:   func(si *content.ShareItem) *string { return &si.ID },
		tags: func(si content.ShareItem) []string { return si.Tags },
		prepare: func(si *content.ShareItem) error {
			si.Title = strings.TrimSpace(si.Title)
			si.URL = strings.TrimSpace(si.URL)
			if si.Title == "" || si.URL == "" {
				return errors.New("title and url required")
			}
			if si.Date = strings.TrimSpace(si.Date); si.Date == "" {
				si.Date = justNow
			}
			si.Tags = cleanList(si.Tags)
			return nil
		},
		keep: func(dst *content.ShareItem, old content.ShareItem) {
			dst.Likes = old.Likes
			dst.Domain = strings.TrimSpace(dst.Domain)
		},
		log: log,
	}
}

func Projects(s *content.Store, now func() time.Time, log *zap.Logger) *Collection[content.Project] {
	return &Collection[content.Project]{
		name: "projects", list: s.Projects, get: s.Project,
		add: s.AddProject, update: s.UpdateProject, remove: s.RemoveProject,
		id:   func(p *content.Project) *string { return &p.ID },
		tags: func(p content.Project) []string { return p.Technologies },
		prepare: func(p *content.Project) error {
			p.Title = strings.TrimSpace(p.Title)
			if p.Title == "" {
				return errors.New("title required")
			}
			if p.Year = strings.TrimSpace(p.Year); p.Year == "" {
				p.Year = strconv.Itoa(now().Year())
			}
			p.Technologies = cleanList(p.Technologies)
			p.Features = cleanList(p.Features)
			return nil
		},
		log: log,
	}
}

func Gallery(s *content.Store, now func() time.Time, log *zap.Logger) *Collection[content.GalleryItem] {
	return &Collection[content.GalleryItem]{
		name: "gallery", list: s.Gallery, get: s.GalleryItem,
		add: s.AddGalleryItem, update: s.UpdateGalleryItem, remove: s.RemoveGalleryItem,
		id: func(g *content.GalleryItem) *string { return &g.ID },
		prepare: func(g *content.GalleryItem) error {
			g.URL = strings.TrimSpace(g.URL)
			if g.URL == "" {
				return errors.New("url required")
			}
			switch g.Type {
			case "":
				g.Type = content.MediaImage
			case content.MediaImage, content.MediaVideo:
			default:
				return errors.New("type must be image or video")
			}
			if g.Type == content.MediaVideo && strings.TrimSpace(g.Thumbnail) == "" {
				return errors.New("thumbnail required for video")
			}
			if g.Title = strings.TrimSpace(g.Title); g.Title == "" {
				g.Title = untitled
			}
			if g.Date = strings.TrimSpace(g.Date); g.Date == "" {
				g.Date = now().Format(galleryDateLayout)
			}
			if g.Width < 0 || g.Height < 0 {
				return errors.New("invalid dimensions")
			}
			return nil
		},
		log: log,
	}
}
