package entry

import (
	"context"

	"github.com/dmitrymomot/splitkit/pkg/i18n"
	"github.com/dmitrymomot/splitkit/pkg/validator"
)

// Message is a user-facing description of one failed rule.
type Message struct {
	Field  string `json:"field" yaml:"field"`
	Reason string `json:"reason" yaml:"reason"`
	Text   string `json:"message" yaml:"message"`
}

// Localize renders the validation failures in err for lang. With a nil
// translator the rules' default English messages are used. Errors that are
// not validation failures yield nil.
func Localize(ctx context.Context, tr *i18n.Translator, lang string, err error) []Message {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return nil
	}

	msgs := make([]Message, 0, len(verrs))
	for _, ve := range verrs {
		text := ve.Message
		if tr != nil && ve.TranslationKey != "" {
			text = tr.Format(ctx, lang, ve.TranslationKey, ve.TranslationValues)
		}
		msgs = append(msgs, Message{
			Field:  ve.Field,
			Reason: ve.Reason.String(),
			Text:   text,
		})
	}
	return msgs
}
