package chatbot

import (
	"agriassist/agriassist/config"
	"agriassist/agriassist/services/search"
	"agriassist/agriassist/services/translate"
	"agriassist/agriassist/utils/logging"

	"go.uber.org/zap"
)

// NewResponderFromConfig builds the search and translate clients named in
// cfg. A misconfigured search provider is logged and leaves the responder
// answering search fallbacks with the "trouble searching" apology.
func NewResponderFromConfig(cfg config.Config, store KnowledgeStore) *Responder {
	searcher, err := search.New(cfg.Search)
	if err != nil {
		logging.ErrorLogger.Error("Web search disabled", zap.Error(err))
		searcher = nil
	}

	var translator Translator
	if cfg.Translate.APIKey != "" {
		translator = translate.NewGoogleTranslator(cfg.Translate)
	} else {
		logging.AppLogger.Warn("GOOGLE_TRANSLATE_API_KEY not set, search answers stay in English")
	}

	policy := LoadPolicy(cfg.Chatbot.PolicyFile)
	logging.AppLogger.Info("Chatbot ready",
		zap.String("search_provider", cfg.Search.Provider),
		zap.Int("min_score", policy.MinScore),
		zap.Float64("secondary_ratio", policy.SecondaryRatio),
	)
	return NewResponder(store, searcher, translator, policy)
}
