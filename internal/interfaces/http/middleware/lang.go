package middleware

import (
	"github.com/gin-gonic/gin"

	"obleafusion/internal/infrastructure/i18n"
	"obleafusion/internal/shared/constants"
)

// requestLang prefers the language a handler already resolved from the body,
// then the Accept-Language header.
func requestLang(c *gin.Context) i18n.Lang {
	if v, ok := c.Get(constants.ContextKeyLang); ok {
		if lang, ok := v.(i18n.Lang); ok {
			return lang
		}
	}
	return i18n.FromAcceptLanguage(c.GetHeader(constants.HeaderAcceptLanguage))
}
