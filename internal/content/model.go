package content

// Kind discriminates the three feed entity kinds.
type Kind string

const (
	KindArticle Kind = "article"
	KindMoment  Kind = "moment"
	KindShare   Kind = "share"
)

// Comment is owned by the Article or Moment that contains it.
type Comment struct {
	ID       string `json:"id" yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Content  string `json:"content" yaml:"content"`
	Date     string `json:"date" yaml:"date"`
}

type Article struct {
	ID       string    `json:"id" yaml:"id"`
	Title    string    `json:"title" yaml:"title"`
	Excerpt  string    `json:"excerpt" yaml:"excerpt"`
	Category string    `json:"category" yaml:"category"`
	Date     string    `json:"date" yaml:"date"`
	ReadTime string    `json:"readTime" yaml:"readTime"`
	ImageURL string    `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Tags     []string  `json:"tags" yaml:"tags"`
	Likes    int       `json:"likes" yaml:"likes"`
	Comments []Comment `json:"comments" yaml:"comments"`
}

func (Article) Kind() Kind { return KindArticle }

// Moment is a short free-text post with optional images.
type Moment struct {
	ID       string    `json:"id" yaml:"id"`
	Content  string    `json:"content" yaml:"content"`
	Images   []string  `json:"images,omitempty" yaml:"images,omitempty"`
	Date     string    `json:"date" yaml:"date"`
	Tags     []string  `json:"tags" yaml:"tags"`
	Likes    int       `json:"likes" yaml:"likes"`
	Comments []Comment `json:"comments" yaml:"comments"`
}

func (Moment) Kind() Kind { return KindMoment }

// ShareItem is a curated link. It has likes but no comments.
type ShareItem struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url" yaml:"url"`
	Domain      string   `json:"domain" yaml:"domain"`
	ImageURL    string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Date        string   `json:"date" yaml:"date"`
	Tags        []string `json:"tags" yaml:"tags"`
	Likes       int      `json:"likes" yaml:"likes"`
}

func (ShareItem) Kind() Kind { return KindShare }

type ProjectStat struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

type Project struct {
	ID           string        `json:"id" yaml:"id"`
	Title        string        `json:"title" yaml:"title"`
	Description  string        `json:"description" yaml:"description"`
	ImageURL     string        `json:"imageUrl" yaml:"imageUrl"`
	Technologies []string      `json:"technologies" yaml:"technologies"`
	DemoURL      string        `json:"demoUrl,omitempty" yaml:"demoUrl,omitempty"`
	RepoURL      string        `json:"repoUrl,omitempty" yaml:"repoUrl,omitempty"`
	Date         string        `json:"date" yaml:"date"`
	Featured     bool          `json:"featured,omitempty" yaml:"featured,omitempty"`
	Role         string        `json:"role,omitempty" yaml:"role,omitempty"`
	Year         string        `json:"year,omitempty" yaml:"year,omitempty"`
	Features     []string      `json:"features,omitempty" yaml:"features,omitempty"`
	Stats        []ProjectStat `json:"stats,omitempty" yaml:"stats,omitempty"`
}

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Exif holds free-text camera settings.
type Exif struct {
	Camera   string `json:"camera" yaml:"camera"`
	Lens     string `json:"lens" yaml:"lens"`
	Aperture string `json:"aperture" yaml:"aperture"`
	ISO      string `json:"iso" yaml:"iso"`
	Shutter  string `json:"shutter" yaml:"shutter"`
}

type GalleryItem struct {
	ID          string    `json:"id" yaml:"id"`
	Type        MediaType `json:"type" yaml:"type"`
	URL         string    `json:"url" yaml:"url"`
	Thumbnail   string    `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"` // videos
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Date        string    `json:"date,omitempty" yaml:"date,omitempty"`
	Location    string    `json:"location,omitempty" yaml:"location,omitempty"`
	Exif        *Exif     `json:"exif,omitempty" yaml:"exif,omitempty"`
	Width       int       `json:"width,omitempty" yaml:"width,omitempty"`
	Height      int       `json:"height,omitempty" yaml:"height,omitempty"`
}

// Life-log series. Each is a flat ordered list with no cross references.

type Skill struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"` // 0-100
}

type GameGenre struct {
	Subject  string `json:"subject" yaml:"subject"`
	Hours    int    `json:"hours" yaml:"hours"`
	FullMark int    `json:"fullMark" yaml:"fullMark"`
}

type RoutineSlot struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"` // hours or percentage
	Color string  `json:"color" yaml:"color"`
}

type StepCount struct {
	Day   string `json:"day" yaml:"day"`
	Steps int    `json:"steps" yaml:"steps"`
}

type PhotoCount struct {
	Day   string `json:"day" yaml:"day"`
	Count int    `json:"count" yaml:"count"`
}

type MovieCount struct {
	Month  string `json:"month" yaml:"month"`
	Movies int    `json:"movies" yaml:"movies"`
	Series int    `json:"series" yaml:"series"`
}
