package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/splitkit/pkg/logger"
)

// DefaultLanguage is used when no default is configured.
const DefaultLanguage = "en"

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Translator resolves translation keys for a language.
type Translator struct {
	translations  map[string]map[string]any
	langs         []string
	matcher       language.Matcher
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
}

// NewTranslator loads translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Nop(),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}
	for lang, trans := range translations {
		if lang == "" || trans == nil {
			return nil, errors.Join(ErrInvalidCatalog, fmt.Errorf("language %q", lang))
		}
	}
	t.translations = translations

	// The matcher falls back to its first tag, so the default language goes first.
	t.langs = make([]string, 0, len(translations))
	for lang := range translations {
		if lang != t.defaultLang {
			t.langs = append(t.langs, lang)
		}
	}
	sort.Strings(t.langs)
	if _, ok := translations[t.defaultLang]; ok {
		t.langs = append([]string{t.defaultLang}, t.langs...)
	} else {
		t.defaultLang = t.langs[0]
	}

	tags := make([]language.Tag, 0, len(t.langs))
	for _, lang := range t.langs {
		tags = append(tags, language.Make(lang))
	}
	t.matcher = language.NewMatcher(tags)

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// SupportedLanguages returns the loaded language codes, default first.
func (t *Translator) SupportedLanguages() []string {
	return append([]string(nil), t.langs...)
}

func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// Match returns the best supported language for an Accept-Language header
// value, or the default language when nothing matches.
func (t *Translator) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// HasTranslation reports whether key exists for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(langMap, key)
	return ok
}

// T translates key with named arguments given as key, value pairs:
// T("en", "welcome", "name", "Ann") fills %{name}.
func (t *Translator) T(lang, key string, args ...string) string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return t.render(context.Background(), lang, key, params)
}

// Format translates key, formatting values for lang. Numbers are printed with
// the locale's separators; other values use their default format.
// ctx is only used for logging missing keys.
func (t *Translator) Format(ctx context.Context, lang, key string, values map[string]any) string {
	p := message.NewPrinter(language.Make(lang))
	params := make(map[string]string, len(values))
	for k, v := range values {
		switch v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			params[k] = p.Sprint(v)
		default:
			params[k] = fmt.Sprint(v)
		}
	}
	return t.render(ctx, lang, key, params)
}

func (t *Translator) render(ctx context.Context, lang, key string, params map[string]string) string {
	langMap, ok := t.translations[lang]
	if !ok {
		langMap = t.translations[t.defaultLang]
	}

	val, ok := lookup(langMap, key)
	if !ok && lang != t.defaultLang {
		val, ok = lookup(t.translations[t.defaultLang], key)
	}

	tmpl, isString := val.(string)
	if !ok || !isString {
		t.logger.WarnContext(ctx, "translation not found", slog.String("lang", lang), slog.String("key", key))
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return substitute(tmpl, params)
}

// lookup walks a nested map with a dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		current, ok = val.(map[string]any)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

func substitute(tmpl string, params map[string]string) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
