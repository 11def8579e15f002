// Package i18n provides internationalization support for the cart service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
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

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
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
		"en": {
			// Error messages
			"error.invalid_request":           "Invalid request",
			"error.invalid_request_body":      "Invalid request body",
			"error.internal_error":            "An unexpected error occurred",
			"error.not_found":                 "Not found",
			"error.rate_limit_exceeded":       "Too many requests, please try again later",
			"error.conflict":                  "Conflict",
			"error.timeout":                   "Request timed out",
			"error.validation.quantity":       "quantity: must be a positive integer",
			"error.offering_not_found":        "Offering not found",
			"error.line_not_found":            "Cart line not found",
			"error.empty_cart":                "Cart is empty",
			"error.checkout_failed":           "Order was rejected",
			"error.order_backend_unavailable": "Ordering is temporarily unavailable, please try again",

			// Success messages
			"success.item_added":   "Item added to cart",
			"success.order_placed": "Order placed successfully",
		},
		"pt": {
			// Error messages
			"error.invalid_request":           "Requisição inválida",
			"error.invalid_request_body":      "Corpo da requisição inválido",
			"error.internal_error":            "Ocorreu um erro inesperado",
			"error.not_found":                 "Não encontrado",
			"error.rate_limit_exceeded":       "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                  "Conflito",
			"error.timeout":                   "Tempo de requisição esgotado",
			"error.validation.quantity":       "quantity: deve ser um inteiro positivo",
			"error.offering_not_found":        "Prato não encontrado",
			"error.line_not_found":            "Item do carrinho não encontrado",
			"error.empty_cart":                "O carrinho está vazio",
			"error.checkout_failed":           "O pedido foi recusado",
			"error.order_backend_unavailable": "Pedidos temporariamente indisponíveis, tente novamente",

			// Success messages
			"success.item_added":   "Item adicionado ao carrinho",
			"success.order_placed": "Pedido realizado com sucesso",
		},
		"nl": {
			// Error messages
			"error.invalid_request":           "Ongeldig verzoek",
			"error.invalid_request_body":      "Ongeldige aanvraag body",
			"error.internal_error":            "Er is een onverwachte fout opgetreden",
			"error.not_found":                 "Niet gevonden",
			"error.rate_limit_exceeded":       "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":                  "Conflict",
			"error.timeout":                   "Verzoek verlopen",
			"error.validation.quantity":       "quantity: moet een positief geheel getal zijn",
			"error.offering_not_found":        "Gerecht niet gevonden",
			"error.line_not_found":            "Winkelwagenregel niet gevonden",
			"error.empty_cart":                "De winkelwagen is leeg",
			"error.checkout_failed":           "De bestelling is geweigerd",
			"error.order_backend_unavailable": "Bestellen is tijdelijk niet beschikbaar, probeer het opnieuw",

			// Success messages
			"success.item_added":   "Item toegevoegd aan winkelwagen",
			"success.order_placed": "Bestelling succesvol geplaatst",
		},
	}
}
