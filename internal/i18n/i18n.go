// Package i18n provides internationalization support for the transfer service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (Arabic, the POS
	// frontend's working language).
	DefaultLocale = "ar"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "ar,en;q=0.9")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "ar" from "ar-EG")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"ar": {
			// Error messages
			"error.invalid_request":      "طلب غير صالح",
			"error.invalid_request_body": "محتوى الطلب غير صالح",
			"error.internal_error":       "حدث خطأ غير متوقع",
			"error.unauthorized":         "غير مصرح",
			"error.invalid_credentials":  "البريد الإلكتروني أو كلمة المرور غير صحيحة",
			"error.api_key_required":     "مفتاح API مطلوب",
			"error.invalid_api_key":      "مفتاح API غير صالح",
			"error.forbidden":            "ممنوع",
			"error.not_found":            "غير موجود",
			"error.rate_limit_exceeded":  "عدد كبير من الطلبات، حاول مرة أخرى لاحقًا",
			"error.conflict":             "تعارض",
			"error.invalid_token":        "رمز الدخول غير صالح أو منتهي الصلاحية",
			"error.token_required":       "رمز الدخول مطلوب",
			"error.timeout":              "انتهت مهلة الطلب",

			"error.transfer.empty_cart":           "السلة فارغة",
			"error.transfer.duplicate_product":    "المنتج مكرر في السلة",
			"error.transfer.invalid_quantity":     "الكمية يجب أن تكون أكبر من صفر",
			"error.transfer.preview_failed":       "فشل تحميل معاينة التحويل",
			"error.transfer.execute_failed":       "فشل تنفيذ التحويل",
			"error.transfer.not_previewed":        "يجب معاينة التحويل قبل التنفيذ",
			"error.transfer.already_executed":     "تم تنفيذ التحويل بالفعل",
			"error.transfer.execute_pending":      "جاري تنفيذ التحويل، يرجى الانتظار",
			"error.transfer.nothing_transferable": "لا توجد أصناف قابلة للتحويل",
			"error.transfer.upstream_unavailable": "خدمة المخزون غير متاحة حاليًا",

			// Success messages
			"success.transfer.preview_built": "تم تحميل معاينة التحويل بنجاح",
			"success.transfer.executed":      "تم تنفيذ التحويل بنجاح",
		},
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "Invalid email or password",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.conflict":             "Conflict",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.timeout":              "Request timed out",

			"error.transfer.empty_cart":           "Cart is empty",
			"error.transfer.duplicate_product":    "Duplicate product in cart",
			"error.transfer.invalid_quantity":     "Quantity must be greater than zero",
			"error.transfer.preview_failed":       "Failed to load transfer preview",
			"error.transfer.execute_failed":       "Failed to execute transfer",
			"error.transfer.not_previewed":        "Transfer must be previewed before execution",
			"error.transfer.already_executed":     "Transfer has already been executed",
			"error.transfer.execute_pending":      "Transfer execution is in progress, please wait",
			"error.transfer.nothing_transferable": "No transferable items in this cart",
			"error.transfer.upstream_unavailable": "Stock service is currently unavailable",

			// Success messages
			"success.transfer.preview_built": "Transfer preview loaded successfully",
			"success.transfer.executed":      "Transfer executed successfully",
		},
	}
}
