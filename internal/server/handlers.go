package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"pokereval/internal/game"
	"pokereval/internal/store"
)

// Cache is consulted before evaluating and populated after. Optional; the
// handlers work without one.
var Cache store.EvalCache

// Session-based evaluation history
var (
	history = map[string][]EvalRecord{}
	mu      sync.Mutex
)

type EvalRequest struct {
	Cards []string `json:"cards"`
}

type EvalResponse struct {
	Cards    []string `json:"cards"`
	Best     []string `json:"best"`
	Category string   `json:"category"`
}

type EvalRecord struct {
	EvalResponse
	Wild bool `json:"wild"`
}

// cacheKey canonicalizes a token list so equivalent hands share one entry.
func cacheKey(tokens []string, wild bool) string {
	sorted := append([]string(nil), tokens...)
	sort.Strings(sorted)
	key := strings.Join(sorted, " ")
	if wild {
		key = "wild " + key
	}
	return key
}

func BestHandHandler(w http.ResponseWriter, r *http.Request) {
	evalHandler(w, r, false)
}

func BestWildHandHandler(w http.ResponseWriter, r *http.Request) {
	evalHandler(w, r, true)
}

func evalHandler(w http.ResponseWriter, r *http.Request, wild bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	var payload EvalRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if len(payload.Cards) != 7 {
		http.Error(w, "exactly 7 card tokens required", http.StatusBadRequest)
		return
	}

	resp, err := evaluate(payload.Cards, wild)
	if err != nil {
		httpError(w, err)
		return
	}

	sid := getSessionID(w, r)
	mu.Lock()
	history[sid] = append(history[sid], EvalRecord{EvalResponse: *resp, Wild: wild})
	mu.Unlock()

	writeJSON(w, resp)
}

// evaluate runs the engine, going through the cache when one is configured.
func evaluate(cards []string, wild bool) (*EvalResponse, error) {
	key := cacheKey(cards, wild)
	if Cache != nil {
		cached, err := Cache.Load(key)
		if err != nil {
			log.Printf("cache load failed for %q: %v", key, err)
		} else if cached != nil {
			return &EvalResponse{Cards: cards, Best: cached.Best, Category: cached.Category}, nil
		}
	}

	stem, jokers, err := game.ParseHand(cards)
	if err != nil {
		return nil, err
	}
	if !wild && len(jokers) > 0 {
		return nil, game.ErrMalformedCard
	}
	best, ranked, err := game.BestWildHand(stem, jokers)
	if err != nil {
		return nil, err
	}

	resp := &EvalResponse{
		Cards:    cards,
		Best:     best.Tokens(),
		Category: ranked.Rank.String(),
	}

	if Cache != nil {
		res := &store.Result{Cards: cards, Best: resp.Best, Category: resp.Category}
		if err := Cache.Save(key, res); err != nil {
			log.Printf("cache save failed for %q: %v", key, err)
		}
	}
	return resp, nil
}

func HistoryHandler(w http.ResponseWriter, r *http.Request) {
	sid := getSessionID(w, r)

	mu.Lock()
	records := append([]EvalRecord(nil), history[sid]...)
	mu.Unlock()

	writeJSON(w, map[string]interface{}{
		"evaluations": records,
	})
}

// httpError maps engine errors to statuses: anything from parsing or hand
// validation is the caller's fault.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrMalformedCard),
		errors.Is(err, game.ErrDuplicateCard),
		errors.Is(err, game.ErrInvalidJoker),
		errors.Is(err, game.ErrEmptyHand):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Println("evaluation error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("JSON encode error:", err)
	}
}

// getSessionID will return an existing session_id cookie,
// or create a new one and hand it back.
func getSessionID(w http.ResponseWriter, r *http.Request) string {
	// First, try to read the "session_id" cookie
	if cookie, err := r.Cookie("session_id"); err == nil {
		return cookie.Value
	}
	// If missing, make a new UUID, set a cookie, and return it
	sessionID := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
	})
	return sessionID
}

func ClearSessionHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("session_id")
	if err != nil {
		http.Error(w, "No session cookie found", http.StatusBadRequest)
		return
	}
	mu.Lock()
	defer mu.Unlock()
	delete(history, cookie.Value)
	log.Printf("Cleared session history for ID: %s", cookie.Value)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Session cleared"))
}
