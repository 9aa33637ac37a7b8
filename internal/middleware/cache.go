package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"time"
	"yatube/internal/cache"
	"yatube/internal/utils"

	"github.com/gin-gonic/gin"
)

// IndexCacheTTL is how long a rendered global-feed page stays valid.
// Within the window responses are served byte-for-byte from the cache,
// even when the underlying posts change.
const IndexCacheTTL = 20 * time.Second

// IndexCacheKey keys the global feed by page number only; the page is
// shared between all viewers.
func IndexCacheKey(c *gin.Context) string {
	page := utils.StringToInt(c.Query("page"))
	if page < 1 {
		page = 1
	}
	return fmt.Sprintf("index:page:%d", page)
}

// CachePage serves the stored response bytes when the key is live and
// otherwise records the handler's output into the store.
func CachePage(store cache.Store, ttl time.Duration, key func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		k := key(c)
		if body, ok := store.Get(k); ok {
			c.Data(http.StatusOK, "text/html; charset=utf-8", body)
			c.Abort()
			return
		}

		writer := &teeWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		if writer.Status() == http.StatusOK {
			store.Set(k, writer.body.Bytes(), ttl)
		}
	}
}

// teeWriter copies everything written to the response into a buffer.
type teeWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *teeWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *teeWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
