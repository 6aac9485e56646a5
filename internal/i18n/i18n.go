// Package i18n is the key -> string lookup the presentation uses for labels.
// Missing keys fall back to the key itself.
package i18n

import "golang.org/x/text/language"

var tables = map[string]map[string]string{
	"en": {
		"Home":                       "Home",
		"All":                        "All",
		"Articles":                   "Articles",
		"Moments":                    "Moments",
		"Curated":                    "Curated",
		"Gallery":                    "Gallery",
		"Projects":                   "Projects",
		"Life Log":                   "Life Log",
		"Latest Updates":             "Latest Updates",
		"Mixed Feed":                 "Mixed Feed",
		"No content found here yet.": "No content found here yet.",
		"Login":                      "Login",
		"Logout":                     "Logout",
		"Admin":                      "Admin",
		"Just now":                   "Just now",
		"Invalid credentials":        "Invalid credentials",
		"Username already taken":     "Username already taken",
		"Sign in to like":            "Sign in to like",
	},
	"zh": {
		"Home":                       "首页",
		"All":                        "全部",
		"Articles":                   "文章",
		"Moments":                    "瞬间",
		"Curated":                    "精选",
		"Gallery":                    "影像馆",
		"Projects":                   "项目",
		"Life Log":                   "生活日志",
		"Latest Updates":             "最新动态",
		"Mixed Feed":                 "混合流",
		"No content found here yet.": "暂无内容",
		"Login":                      "登录",
		"Logout":                     "登出",
		"Admin":                      "管理",
		"Just now":                   "刚刚",
		"Invalid credentials":        "用户名或密码错误",
		"Username already taken":     "用户名已被占用",
		"Sign in to like":            "登录后才能点赞",
	},
}

// order matches the tags given to the matcher.
var order = []string{"en", "zh"}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Chinese,
})

type Translator struct {
	lang string
}

// For picks a translator for an Accept-Language header value. English is
// the fallback.
func For(acceptLanguage string) Translator {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Translator{lang: "en"}
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Translator{lang: "en"}
	}
	return Translator{lang: order[idx]}
}

func (t Translator) Lang() string {
	if t.lang == "" {
		return "en"
	}
	return t.lang
}

func (t Translator) T(key string) string {
	if v, ok := tables[t.Lang()][key]; ok {
		return v
	}
	return key
}
