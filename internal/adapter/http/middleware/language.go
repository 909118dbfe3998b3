package middleware

import (
	"github.com/gin-gonic/gin"

	"taskplanner/pkg/translator"
)

const langKey = "lang"

// LanguageMiddleware resolves Accept-Language to one of the supported
// translation languages.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, translator.MatchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
