// Package chatbot answers farming questions from the curated knowledge base,
// falling back to web search and remembering what it found.
package chatbot

import (
	"agriassist/agriassist/services/search"
	"agriassist/agriassist/sources/psql/models"
	"agriassist/agriassist/utils/logging"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

type KnowledgeStore interface {
	List(ctx context.Context) ([]models.KnowledgeRecord, error)
	Insert(ctx context.Context, record *models.KnowledgeRecord) error
}

type Translator interface {
	Translate(ctx context.Context, texts []string, target string) ([]string, error)
}

type Reply struct {
	Summary         string   `json:"summary"`
	Response        string   `json:"response"`
	Source          *string  `json:"source"`
	MatchedKeywords []string `json:"matchedKeywords"`
}

const (
	maxDerivedKeywords = 5
	persistTimeout     = 10 * time.Second
)

type Responder struct {
	store      KnowledgeStore
	searcher   search.Searcher
	translator Translator
	policy     Policy

	mu      sync.Mutex
	closed  bool
	pending sync.WaitGroup
}

// NewResponder wires the collaborators. translator may be nil, in which case
// search answers are always returned in English.
func NewResponder(store KnowledgeStore, searcher search.Searcher, translator Translator, policy Policy) *Responder {
	return &Responder{
		store:      store,
		searcher:   searcher,
		translator: translator,
		policy:     policy,
	}
}

// Respond always produces a reply. Collaborator failures degrade to an
// apology or to untranslated text and are only logged.
func (r *Responder) Respond(ctx context.Context, query, language string) Reply {
	defer logging.LogDuration(ctx, "chatbot_respond")()
	lang := NormalizeLanguage(language)

	records, err := r.store.List(ctx)
	if err != nil {
		logging.ErrorLogger.Error("Failed to load knowledge base", zap.Error(err))
		records = nil
	}

	matches := r.policy.Score(query, records)
	if len(matches) > 0 && matches[0].Score >= r.policy.MinScore {
		return r.fromKnowledge(matches, lang)
	}
	return r.fromSearch(ctx, query, lang)
}

func (r *Responder) fromKnowledge(matches []MatchResult, lang Language) Reply {
	primary := matches[0]
	response := ResponseFor(primary.Record, lang)
	summary := Summarize(response, r.policy.SummaryLimit)

	if len(matches) > 1 && float64(matches[1].Score) >= r.policy.secondaryThreshold(primary.Score) {
		response += lang.Pick(relatedConnective) + ResponseFor(matches[1].Record, lang)
	}

	return Reply{
		Summary:         summary,
		Response:        response,
		Source:          primary.Record.Source,
		MatchedKeywords: primary.MatchedTerms,
	}
}

func (r *Responder) fromSearch(ctx context.Context, query string, lang Language) Reply {
	if r.searcher == nil {
		return apology(searchFailedMessage, lang)
	}
	results, err := r.searcher.Search(ctx, searchQuery(query))
	if err != nil {
		logging.ErrorLogger.Error("Web search failed", zap.String("query", query), zap.Error(err))
		return apology(searchFailedMessage, lang)
	}
	if len(results) == 0 {
		return apology(noResultsMessage, lang)
	}
	if len(results) > 2 {
		results = results[:2]
	}

	var b strings.Builder
	b.WriteString(results[0].Snippet + "\n\n")
	if len(results) > 1 {
		b.WriteString("Additionally:\n" + results[1].Snippet + "\n\n")
	}
	for i, res := range results {
		fmt.Fprintf(&b, "Source %d: %s\n", i+1, res.Link)
	}

	source := results[0].Link
	reply := Reply{
		Summary:         truncate(results[0].Snippet, r.policy.SummaryLimit),
		Response:        b.String(),
		Source:          &source,
		MatchedKeywords: derivedKeywords(query),
	}
	english := reply.Response

	if lang != English {
		reply.Summary, reply.Response = r.translate(ctx, lang, reply.Summary, reply.Response)
	}

	r.remember(ctx, query, lang, english, reply)
	return reply
}

// translate returns the inputs unchanged when translation is unavailable.
func (r *Responder) translate(ctx context.Context, lang Language, summary, response string) (string, string) {
	if r.translator == nil {
		return summary, response
	}
	out, err := r.translator.Translate(ctx, []string{summary, response}, string(lang))
	if err != nil || len(out) != 2 {
		logging.ErrorLogger.Warn("Translation failed, replying in English",
			zap.String("language", string(lang)), zap.Error(err))
		return summary, response
	}
	return out[0], out[1]
}

// remember stores the synthesized answer in the background. The English text
// goes to response_en; a successful translation also fills the language column.
func (r *Responder) remember(ctx context.Context, query string, lang Language, english string, reply Reply) {
	if len(reply.MatchedKeywords) == 0 {
		logging.AppLogger.Info("Search answer not stored, query has no usable keywords", zap.String("query", query))
		return
	}

	content := query
	record := &models.KnowledgeRecord{
		Keywords:   strings.Join(reply.MatchedKeywords, ", "),
		ResponseEN: english,
		Source:     reply.Source,
		Content:    &content,
	}
	if reply.Response != english {
		translated := reply.Response
		switch lang {
		case Hindi:
			record.ResponseHI = &translated
		case Telugu:
			record.ResponseTE = &translated
		case Kannada:
			record.ResponseKN = &translated
		case Malayalam:
			record.ResponseML = &translated
		}
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		logging.AppLogger.Info("Responder closed, search answer not stored", zap.String("query", query))
		return
	}
	r.pending.Add(1)
	r.mu.Unlock()
	go func() {
		defer r.pending.Done()
		storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
		defer cancel()
		if err := r.store.Insert(storeCtx, record); err != nil {
			logging.ErrorLogger.Error("Failed to store new knowledge", zap.String("query", query), zap.Error(err))
			return
		}
		logging.AppLogger.Info("Stored new knowledge from web search", zap.String("id", record.ID.String()))
	}()
}

// Wait blocks until background knowledge inserts have finished.
func (r *Responder) Wait() {
	r.pending.Wait()
}

// Close stops scheduling new inserts and waits for the running ones. Replies
// are still produced after Close; they are just not remembered.
func (r *Responder) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.pending.Wait()
}

func apology(table map[Language]string, lang Language) Reply {
	msg := lang.Pick(table)
	return Reply{Summary: msg, Response: msg, MatchedKeywords: []string{}}
}

// searchQuery nudges generic questions towards farming results.
func searchQuery(query string) string {
	q := strings.ToLower(query)
	for _, hint := range []string{"agriculture", "farming", "crop"} {
		if strings.Contains(q, hint) {
			return query
		}
	}
	return query + " agriculture farming"
}

func derivedKeywords(query string) []string {
	out := []string{}
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		if utf8.RuneCountInString(tok) > 3 {
			out = append(out, tok)
			if len(out) == maxDerivedKeywords {
				break
			}
		}
	}
	return out
}
