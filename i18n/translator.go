package i18n

import "sync"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "type" or "model").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "unsupported_type":
			return "未対応の型です"
		case "required":
			return "必須の値がありません"
		case "invalid_type":
			return "型が不正です"
		case "unknown_model":
			return "未登録のモデルです"
		case "model_mismatch":
			return "モデルの型が一致しません"
		case "invalid_format":
			return "フォーマットが不正です"
		case "duplicate_key":
			return "キーが重複しています"
		}
	default: // "en"
		switch code {
		case "unsupported_type":
			return "unsupported type"
		case "required":
			return "required value missing"
		case "invalid_type":
			return "invalid type"
		case "unknown_model":
			return "unknown model"
		case "model_mismatch":
			return "model type mismatch"
		case "invalid_format":
			return "invalid format"
		case "duplicate_key":
			return "duplicate key"
		}
	}
	return code
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
