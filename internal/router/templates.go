package router

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/gin-contrib/multitemplate"
)

// LoadTemplates assembles the multitemplate renderer: every view gets the
// layouts and includes plus its own file, keyed by the name handlers render.
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"deref": func(b *bool) bool {
			if b == nil {
				return false
			}
			return *b
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"timeAgo": func(t time.Time) string {
			seconds := int(time.Since(t).Seconds())
			switch {
			case seconds < 60:
				return fmt.Sprintf("%ds ago", seconds)
			case seconds < 3600:
				return fmt.Sprintf("%dm ago", seconds/60)
			case seconds < 86400:
				return fmt.Sprintf("%dh ago", seconds/3600)
			case seconds < 2592000:
				return fmt.Sprintf("%dd ago", seconds/86400)
			}
			return t.Format("2006-01-02")
		},
	}

	views := []string{
		"auth/login.html",
		"auth/signup.html",
		"posts/index.html",
		"posts/group_list.html",
		"posts/profile.html",
		"posts/post_detail.html",
		"posts/create_post.html",
		"posts/follow.html",
		"error.html",
	}
	for _, view := range views {
		r.AddFromFilesFuncs(view, funcMap, assemble(templatesDir+"/views/"+view)...)
	}

	return r
}
